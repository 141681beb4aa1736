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

package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// SlugHeader carries an explicit tenant slug and takes priority over the Host
// header during resolution.
const SlugHeader = "X-Tenant-ID"

// exemptPrefixes are request paths that may be served without a tenant
// attached: the platform admin surface, authentication, and the back-office
// API whose tenancy is derived from the authenticated principal.
var exemptPrefixes = []string{"/admin/", "/auth/", "/api"}

// reservedLabels never name a tenant when they appear as the first host label.
var reservedLabels = map[string]bool{
	"www": true,
	"api": true,
}

// Resolver derives the tenant a request belongs to. It runs once per request,
// before any handler.
type Resolver struct {
	repo Repository
}

// NewResolver creates a resolver backed by a slug lookup.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve resolves a tenant from competing signals, in priority order: the
// explicit slug header, then a subdomain-derived slug from the host. When
// neither yields a candidate, exempt paths succeed with no tenant attached
// and all other paths fail with a not-found outcome. Both signals are
// folded to lowercase; stored slugs are lowercase DNS labels.
func (r *Resolver) Resolve(ctx context.Context, headerSlug, host, path string) (*Context, error) {
	slug := strings.ToLower(strings.TrimSpace(headerSlug))
	if slug == "" {
		slug = CandidateSlug(host)
	}

	if slug == "" {
		if pathExempt(path) {
			return nil, nil
		}
		return nil, ErrNoTenantCandidate
	}

	t, err := r.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to look up tenant slug %q: %w", slug, err)
	}

	return &Context{TenantID: t.ID, TenantSlug: t.Slug}, nil
}

// ErrNoTenantCandidate marks a request whose host yields no tenant slug and
// whose path is not exempt. Distinguished from ErrTenantNotFound by message
// only; both are client-visible not-found outcomes.
var ErrNoTenantCandidate = errors.New("unable to identify tenant from request")

// CandidateSlug derives a tenant slug candidate from a Host header value.
// Rules: strip the port; a two-label host whose second label is "localhost"
// uses the first label; any other host of two or fewer labels has no
// candidate; hosts of three or more labels use the first label. The reserved
// labels "www" and "api" never name a tenant.
func CandidateSlug(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}

	labels := strings.Split(host, ".")
	switch {
	case len(labels) == 2 && labels[1] == "localhost":
		// dev setup: <slug>.localhost
	case len(labels) <= 2:
		// bare domain or bare localhost
		return ""
	}

	first := strings.ToLower(labels[0])
	if first == "" || reservedLabels[first] {
		return ""
	}
	return first
}

func pathExempt(path string) bool {
	for _, p := range exemptPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
