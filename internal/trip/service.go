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
	"time"

	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/audit"
	"github.com/tripdesk/tripdesk/internal/id"
)

// Service provides trip management business logic
type Service struct {
	repo        Repository
	auditLogger audit.Logger
}

// NewService creates a new trip service
func NewService(repo Repository, auditLogger audit.Logger) *Service {
	return &Service{
		repo:        repo,
		auditLogger: auditLogger,
	}
}

// NewTrip holds the fields accepted on trip creation.
type NewTrip struct {
	Name        string
	Description string
	Destination string
	Published   bool
}

// UpdateTrip holds the mutable trip fields; nil means keep.
type UpdateTrip struct {
	Name        *string
	Description *string
	Destination *string
	Published   *bool
}

// Create catalogues a new trip under an agency.
func (s *Service) Create(ctx context.Context, agencyID string, nt NewTrip, actorID string) (*Trip, error) {
	if nt.Name == "" {
		return nil, apperr.InvalidInput("trip name is required")
	}

	now := time.Now()
	t := &Trip{
		ID:          id.New(),
		AgencyID:    agencyID,
		Name:        nt.Name,
		Description: nt.Description,
		Destination: nt.Destination,
		Published:   nt.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTripCreated,
		ActorID:  actorID,
		AgencyID: agencyID,
		Resource: "trip",
		Metadata: map[string]any{"trip_id": t.ID, "name": t.Name},
	})

	return t, nil
}

// Get retrieves a trip scoped to an agency. A trip owned by another agency is
// reported as absent, never as foreign.
func (s *Service) Get(ctx context.Context, agencyID, tripID string) (*Trip, error) {
	t, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			return nil, apperr.NotFound("trip not found")
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	if t.AgencyID != agencyID {
		return nil, apperr.NotFound("trip not found")
	}
	return t, nil
}

// ListByAgency lists the trips of an agency.
func (s *Service) ListByAgency(ctx context.Context, agencyID string) ([]*Trip, error) {
	return s.repo.ListByAgency(ctx, agencyID)
}

// ListPublishedByTenant lists the published trips across all agencies of a
// tenant. Serves the public storefront.
func (s *Service) ListPublishedByTenant(ctx context.Context, tenantID string) ([]*Trip, error) {
	return s.repo.ListPublishedByTenant(ctx, tenantID)
}

// Update applies a partial update to a trip.
func (s *Service) Update(ctx context.Context, agencyID, tripID string, ut UpdateTrip, actorID string) (*Trip, error) {
	t, err := s.Get(ctx, agencyID, tripID)
	if err != nil {
		return nil, err
	}

	if ut.Name != nil {
		if *ut.Name == "" {
			return nil, apperr.InvalidInput("trip name cannot be empty")
		}
		t.Name = *ut.Name
	}
	if ut.Description != nil {
		t.Description = *ut.Description
	}
	if ut.Destination != nil {
		t.Destination = *ut.Destination
	}
	if ut.Published != nil {
		t.Published = *ut.Published
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTripUpdated,
		ActorID:  actorID,
		AgencyID: agencyID,
		Resource: "trip",
		Metadata: map[string]any{"trip_id": t.ID},
	})

	return t, nil
}

// Delete removes a trip.
func (s *Service) Delete(ctx context.Context, agencyID, tripID string, actorID string) error {
	t, err := s.Get(ctx, agencyID, tripID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, t.ID); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTripDeleted,
		ActorID:  actorID,
		AgencyID: agencyID,
		Resource: "trip",
		Metadata: map[string]any{"trip_id": t.ID},
	})

	return nil
}
