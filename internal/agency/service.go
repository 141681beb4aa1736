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

package agency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/audit"
	"github.com/tripdesk/tripdesk/internal/id"
)

// Service provides agency management business logic
type Service struct {
	repo        Repository
	auditLogger audit.Logger
}

// NewService creates a new agency service
func NewService(repo Repository, auditLogger audit.Logger) *Service {
	return &Service{
		repo:        repo,
		auditLogger: auditLogger,
	}
}

// NewAgency holds the fields accepted on agency creation.
type NewAgency struct {
	TenantID    string
	Cadastur    string
	CNPJ        string
	Name        string
	Description string
}

// UpdateAgency holds the mutable agency fields; nil means keep.
type UpdateAgency struct {
	Cadastur    *string
	CNPJ        *string
	Name        *string
	Description *string
}

// Create registers a new agency under a tenant.
func (s *Service) Create(ctx context.Context, na NewAgency, actorID string) (*Agency, error) {
	if na.TenantID == "" {
		return nil, apperr.InvalidInput("tenant id is required")
	}
	if na.Name == "" {
		return nil, apperr.InvalidInput("agency name is required")
	}

	now := time.Now()
	a := &Agency{
		ID:          id.New(),
		TenantID:    na.TenantID,
		Cadastur:    na.Cadastur,
		CNPJ:        na.CNPJ,
		Name:        na.Name,
		Description: na.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create agency: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeAgencyCreated,
		TenantID: a.TenantID,
		ActorID:  actorID,
		AgencyID: a.ID,
		Resource: "agency",
		Metadata: map[string]any{"name": a.Name},
	})

	return a, nil
}

// Get retrieves an agency by id.
func (s *Service) Get(ctx context.Context, agencyID string) (*Agency, error) {
	a, err := s.repo.GetByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, ErrAgencyNotFound) {
			return nil, apperr.NotFound("agency not found")
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}
	return a, nil
}

// ListByTenant lists the agencies of a tenant.
func (s *Service) ListByTenant(ctx context.Context, tenantID string) ([]*Agency, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

// Update applies a partial update to an agency.
func (s *Service) Update(ctx context.Context, agencyID string, up UpdateAgency, actorID string) (*Agency, error) {
	a, err := s.Get(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	if up.Cadastur != nil {
		a.Cadastur = *up.Cadastur
	}
	if up.CNPJ != nil {
		a.CNPJ = *up.CNPJ
	}
	if up.Name != nil {
		if *up.Name == "" {
			return nil, apperr.InvalidInput("agency name cannot be empty")
		}
		a.Name = *up.Name
	}
	if up.Description != nil {
		a.Description = *up.Description
	}
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update agency: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeAgencyUpdated,
		TenantID: a.TenantID,
		ActorID:  actorID,
		AgencyID: a.ID,
		Resource: "agency",
	})

	return a, nil
}

// Delete removes an agency.
func (s *Service) Delete(ctx context.Context, agencyID string, actorID string) error {
	a, err := s.Get(ctx, agencyID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, agencyID); err != nil {
		return fmt.Errorf("failed to delete agency: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeAgencyDeleted,
		TenantID: a.TenantID,
		ActorID:  actorID,
		AgencyID: a.ID,
		Resource: "agency",
	})

	return nil
}
