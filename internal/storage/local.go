// Copyright 2026 The TripDesk Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/tripdesk/tripdesk/internal/id"
)

// LocalStore keeps files on the local disk under basePath and serves them
// under baseURL. The thumbnail variant is a stored copy; transcoding happens
// outside this service.
type LocalStore struct {
	basePath string
	baseURL  string
}

// NewLocalStore creates a disk-backed file store.
func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Store writes data under folder and returns the public URLs of the full
// image and its thumbnail copy.
func (s *LocalStore) Store(ctx context.Context, data []byte, name, folder string) (StoredFile, error) {
	ext := filepath.Ext(name)
	base := id.New() + ext

	fullRel := path.Join(folder, base)
	thumbRel := path.Join(folder, "thumbs", base)

	for _, rel := range []string{fullRel, thumbRel} {
		dst := filepath.Join(s.basePath, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return StoredFile{}, fmt.Errorf("failed to create folder: %w", err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return StoredFile{}, fmt.Errorf("failed to write file: %w", err)
		}
	}

	return StoredFile{
		URL:          s.baseURL + "/" + fullRel,
		ThumbnailURL: s.baseURL + "/" + thumbRel,
	}, nil
}

// Delete removes the file a public URL points at.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return fmt.Errorf("url %q is not served by this store", url)
	}

	dst := filepath.Join(s.basePath, filepath.FromSlash(rel))
	if !strings.HasPrefix(dst, filepath.Clean(s.basePath)+string(os.PathSeparator)) {
		return fmt.Errorf("url %q escapes the storage root", url)
	}

	if err := os.Remove(dst); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
