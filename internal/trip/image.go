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

package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/audit"
	"github.com/tripdesk/tripdesk/internal/id"
	"github.com/tripdesk/tripdesk/internal/observability/logger"
	"github.com/tripdesk/tripdesk/internal/storage"
)

// Upload is a file received with an image mutation.
type Upload struct {
	Data     []byte
	Filename string
}

// ImagePatch holds the mutable image fields; nil means keep.
type ImagePatch struct {
	IsMain       *bool
	DisplayOrder *int
}

// ImageService maintains the single-main-image invariant of a trip: at most
// one image has IsMain set, and the owning trip mirrors that image's URLs.
// Mutations are ordered sequences of repository and file-store steps, not a
// transaction; a failure mid-sequence surfaces as-is.
type ImageService struct {
	images      ImageRepository
	trips       Repository
	files       storage.FileStore
	auditLogger audit.Logger
}

// NewImageService creates a new trip image service
func NewImageService(images ImageRepository, trips Repository, files storage.FileStore, auditLogger audit.Logger) *ImageService {
	return &ImageService{
		images:      images,
		trips:       trips,
		files:       files,
		auditLogger: auditLogger,
	}
}

// imageFolder is where a trip's files live in the file store.
func imageFolder(tripID string) string {
	return "trips/" + tripID
}

// Add stores the uploaded file and inserts the image record. When the new
// image is main, every other image of the trip is demoted before the insert
// and the trip mirror is written after it.
func (s *ImageService) Add(ctx context.Context, t *Trip, up Upload, isMain bool, displayOrder int, actorID string) (*Image, error) {
	if len(up.Data) == 0 {
		return nil, apperr.InvalidInput("image file is required")
	}

	stored, err := s.files.Store(ctx, up.Data, up.Filename, imageFolder(t.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to store image file: %w", err)
	}

	if isMain {
		if err := s.images.ClearMainExcept(ctx, t.ID, ""); err != nil {
			return nil, fmt.Errorf("failed to demote existing main image: %w", err)
		}
	}

	img := &Image{
		ID:           id.New(),
		TripID:       t.ID,
		ImageURL:     stored.URL,
		ThumbnailURL: stored.ThumbnailURL,
		IsMain:       isMain,
		DisplayOrder: displayOrder,
		CreatedAt:    time.Now(),
	}

	if err := s.images.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to create image record: %w", err)
	}

	if isMain {
		if err := s.trips.SetMainImage(ctx, t.ID, img.ImageURL, img.ThumbnailURL); err != nil {
			return nil, fmt.Errorf("failed to mirror main image onto trip: %w", err)
		}
		s.auditMainChanged(ctx, t, img.ID, actorID)
	}

	return img, nil
}

// Update applies a patch and an optional replacement file to an image. A
// replacement deletes the old stored files before uploading the new one; a
// failure in between is surfaced, not compensated. The trip mirror is
// refreshed whenever the image ends up main, and cleared when the current
// main image is demoted.
func (s *ImageService) Update(ctx context.Context, t *Trip, imageID string, patch ImagePatch, up *Upload, actorID string) (*Image, error) {
	img, err := s.get(ctx, t.ID, imageID)
	if err != nil {
		return nil, err
	}

	if up != nil {
		if len(up.Data) == 0 {
			return nil, apperr.InvalidInput("replacement image file is empty")
		}
		for _, url := range []string{img.ImageURL, img.ThumbnailURL} {
			if err := s.files.Delete(ctx, url); err != nil {
				return nil, fmt.Errorf("failed to delete replaced file: %w", err)
			}
		}
		stored, err := s.files.Store(ctx, up.Data, up.Filename, imageFolder(t.ID))
		if err != nil {
			return nil, fmt.Errorf("failed to store replacement file: %w", err)
		}
		img.ImageURL = stored.URL
		img.ThumbnailURL = stored.ThumbnailURL
	}

	wasMain := img.IsMain
	isMain := wasMain
	if patch.IsMain != nil {
		isMain = *patch.IsMain
	}

	if isMain && !wasMain {
		if err := s.images.ClearMainExcept(ctx, t.ID, img.ID); err != nil {
			return nil, fmt.Errorf("failed to demote existing main image: %w", err)
		}
	}

	img.IsMain = isMain
	if patch.DisplayOrder != nil {
		img.DisplayOrder = *patch.DisplayOrder
	}

	if err := s.images.Update(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to update image record: %w", err)
	}

	switch {
	case isMain:
		if err := s.trips.SetMainImage(ctx, t.ID, img.ImageURL, img.ThumbnailURL); err != nil {
			return nil, fmt.Errorf("failed to mirror main image onto trip: %w", err)
		}
		if !wasMain {
			s.auditMainChanged(ctx, t, img.ID, actorID)
		}
	case wasMain:
		// demoted without a successor; the trip holds no main image now
		if err := s.trips.SetMainImage(ctx, t.ID, "", ""); err != nil {
			return nil, fmt.Errorf("failed to clear trip main image: %w", err)
		}
		s.auditMainChanged(ctx, t, "", actorID)
	}

	return img, nil
}

// Remove deletes the stored files, then the record. File cleanup is
// best-effort: a failed physical delete is logged and the removal proceeds.
// Removing the main image clears the trip mirror; no other image is promoted.
func (s *ImageService) Remove(ctx context.Context, t *Trip, imageID string, actorID string) error {
	img, err := s.get(ctx, t.ID, imageID)
	if err != nil {
		return err
	}

	for _, url := range []string{img.ImageURL, img.ThumbnailURL} {
		if err := s.files.Delete(ctx, url); err != nil {
			slog.WarnContext(ctx, "failed to delete stored image file",
				logger.Error(err),
				logger.TripID(t.ID),
				logger.ImageID(img.ID),
				logger.FileURL(url),
			)
		}
	}

	if err := s.images.Delete(ctx, img.ID); err != nil {
		return fmt.Errorf("failed to delete image record: %w", err)
	}

	if img.IsMain {
		if err := s.trips.SetMainImage(ctx, t.ID, "", ""); err != nil {
			return fmt.Errorf("failed to clear trip main image: %w", err)
		}
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeImageRemoved,
		ActorID:  actorID,
		AgencyID: t.AgencyID,
		Resource: "trip_image",
		Metadata: map[string]any{"trip_id": t.ID, "image_id": img.ID, "was_main": img.IsMain},
	})

	return nil
}

// Get retrieves an image scoped to a trip.
func (s *ImageService) Get(ctx context.Context, tripID, imageID string) (*Image, error) {
	return s.get(ctx, tripID, imageID)
}

// List returns the images of a trip.
func (s *ImageService) List(ctx context.Context, tripID string) ([]*Image, error) {
	return s.images.ListByTrip(ctx, tripID)
}

func (s *ImageService) get(ctx context.Context, tripID, imageID string) (*Image, error) {
	img, err := s.images.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			return nil, apperr.NotFound("trip image not found")
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	if img.TripID != tripID {
		return nil, apperr.NotFound("trip image not found")
	}
	return img, nil
}

func (s *ImageService) auditMainChanged(ctx context.Context, t *Trip, imageID, actorID string) {
	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeMainImageChanged,
		ActorID:  actorID,
		AgencyID: t.AgencyID,
		Resource: "trip_image",
		Metadata: map[string]any{"trip_id": t.ID, "image_id": imageID},
	})
}
