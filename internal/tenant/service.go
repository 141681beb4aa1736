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
	"regexp"
	"time"

	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/audit"
	"github.com/tripdesk/tripdesk/internal/id"
)

// slugPattern constrains slugs to what the host-based resolver can carry in a
// single DNS label.
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Service provides tenant management business logic
type Service struct {
	repo        Repository
	auditLogger audit.Logger
}

// NewService creates a new tenant service
func NewService(repo Repository, auditLogger audit.Logger) *Service {
	return &Service{
		repo:        repo,
		auditLogger: auditLogger,
	}
}

// CreateTenant creates a new tenant. The slug is the immutable business key
// used for host and header based resolution and must be unique.
func (s *Service) CreateTenant(ctx context.Context, slug, name, plan string, actorID string) (*Tenant, error) {
	if !slugPattern.MatchString(slug) {
		return nil, apperr.InvalidInput("tenant slug %q is not a valid DNS label", slug)
	}
	if slug == "www" || slug == "api" {
		return nil, apperr.InvalidInput("tenant slug %q is reserved", slug)
	}
	if name == "" {
		return nil, apperr.InvalidInput("tenant name is required")
	}
	if plan == "" {
		plan = PlanFree
	}

	if _, err := s.repo.GetBySlug(ctx, slug); err == nil {
		return nil, apperr.Conflict("tenant slug %q already in use", slug)
	} else if !errors.Is(err, ErrTenantNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	now := time.Now()
	t := &Tenant{
		ID:        id.New(),
		Slug:      slug,
		Name:      name,
		Plan:      plan,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return nil, apperr.Conflict("tenant slug %q already in use", slug)
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTenantCreated,
		TenantID: t.ID,
		ActorID:  actorID,
		Resource: "tenant",
		Metadata: map[string]any{"slug": t.Slug, "plan": t.Plan},
	})

	return t, nil
}

// GetTenant retrieves a tenant by ID
func (s *Service) GetTenant(ctx context.Context, tenantID string) (*Tenant, error) {
	t, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return nil, apperr.NotFound("tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return t, nil
}

// ListTenants lists tenants with pagination
func (s *Service) ListTenants(ctx context.Context, limit, offset int) ([]*Tenant, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// DeleteTenant removes a tenant. Deletion is hard; there is no soft-delete.
func (s *Service) DeleteTenant(ctx context.Context, tenantID string, actorID string) error {
	t, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return apperr.NotFound("tenant not found")
		}
		return fmt.Errorf("failed to get tenant: %w", err)
	}

	if err := s.repo.Delete(ctx, tenantID); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTenantDeleted,
		TenantID: tenantID,
		ActorID:  actorID,
		Resource: "tenant",
		Metadata: map[string]any{"slug": t.Slug},
	})

	return nil
}
