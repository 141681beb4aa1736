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

// AgeRangeService maintains the non-overlapping age intervals of an agency.
// Checks run in a fixed order on every mutation: bound ordering, name
// uniqueness, then the overlap scan against the current full set.
type AgeRangeService struct {
	repo        AgeRangeRepository
	auditLogger audit.Logger
}

// NewAgeRangeService creates a new age range service
func NewAgeRangeService(repo AgeRangeRepository, auditLogger audit.Logger) *AgeRangeService {
	return &AgeRangeService{
		repo:        repo,
		auditLogger: auditLogger,
	}
}

// NewAgeRange holds the fields accepted on age range creation.
type NewAgeRange struct {
	Name         string
	MinAge       int
	MaxAge       int
	OccupiesSeat bool
}

// overlaps reports whether the candidate interval [candMin, candMax] collides
// with an existing [exMin, exMax]. Touching at a single endpoint on one side
// is permitted; sharing any interior point, or containment either way, is not.
func overlaps(candMin, candMax, exMin, exMax int) bool {
	if candMin >= exMin && candMin < exMax {
		return true
	}
	if candMax > exMin && candMax <= exMax {
		return true
	}
	if candMin <= exMin && candMax >= exMax {
		return true
	}
	return false
}

// validate runs the full check sequence for a candidate interval against the
// agency's current ranges, skipping excludeID (the update-in-place case).
// The first conflicting range in creation order is reported.
func (s *AgeRangeService) validate(ctx context.Context, agencyID, name string, minAge, maxAge int, excludeID string) error {
	if minAge >= maxAge {
		return apperr.InvalidInput("min age (%d) must be lower than max age (%d)", minAge, maxAge)
	}
	if minAge < 0 {
		return apperr.InvalidInput("min age cannot be negative")
	}
	if name == "" {
		return apperr.InvalidInput("age range name is required")
	}

	existing, err := s.repo.ListByAgency(ctx, agencyID)
	if err != nil {
		return fmt.Errorf("failed to list age ranges: %w", err)
	}

	for _, r := range existing {
		if r.ID == excludeID {
			continue
		}
		if r.Name == name {
			return apperr.Conflict("age range name %q already exists for this agency", name)
		}
	}

	for _, r := range existing {
		if r.ID == excludeID {
			continue
		}
		if overlaps(minAge, maxAge, r.MinAge, r.MaxAge) {
			return apperr.Conflict("age range [%d, %d] overlaps existing range %q [%d, %d]",
				minAge, maxAge, r.Name, r.MinAge, r.MaxAge)
		}
	}

	return nil
}

// Create adds an age range after the full validation sequence.
func (s *AgeRangeService) Create(ctx context.Context, agencyID string, nr NewAgeRange, actorID string) (*AgeRange, error) {
	if err := s.validate(ctx, agencyID, nr.Name, nr.MinAge, nr.MaxAge, ""); err != nil {
		return nil, err
	}

	r := &AgeRange{
		ID:           id.New(),
		AgencyID:     agencyID,
		Name:         nr.Name,
		MinAge:       nr.MinAge,
		MaxAge:       nr.MaxAge,
		OccupiesSeat: nr.OccupiesSeat,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create age range: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeAgeRangeCreated,
		ActorID:  actorID,
		AgencyID: agencyID,
		Resource: "age_range",
		Metadata: map[string]any{"name": r.Name, "min_age": r.MinAge, "max_age": r.MaxAge},
	})

	return r, nil
}

// Get retrieves an age range scoped to an agency.
func (s *AgeRangeService) Get(ctx context.Context, agencyID, rangeID string) (*AgeRange, error) {
	r, err := s.repo.GetByID(ctx, rangeID)
	if err != nil {
		if errors.Is(err, ErrAgeRangeNotFound) {
			return nil, apperr.NotFound("age range not found")
		}
		return nil, fmt.Errorf("failed to get age range: %w", err)
	}
	if r.AgencyID != agencyID {
		return nil, apperr.NotFound("age range not found")
	}
	return r, nil
}

// List returns all age ranges of an agency in creation order.
func (s *AgeRangeService) List(ctx context.Context, agencyID string) ([]*AgeRange, error) {
	return s.repo.ListByAgency(ctx, agencyID)
}

// Update rewrites an age range. The overlap scan always runs against the
// current full set, with the updated range itself excluded.
func (s *AgeRangeService) Update(ctx context.Context, agencyID, rangeID string, nr NewAgeRange, actorID string) (*AgeRange, error) {
	r, err := s.Get(ctx, agencyID, rangeID)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, agencyID, nr.Name, nr.MinAge, nr.MaxAge, r.ID); err != nil {
		return nil, err
	}

	r.Name = nr.Name
	r.MinAge = nr.MinAge
	r.MaxAge = nr.MaxAge
	r.OccupiesSeat = nr.OccupiesSeat

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to update age range: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeAgeRangeUpdated,
		ActorID:  actorID,
		AgencyID: agencyID,
		Resource: "age_range",
		Metadata: map[string]any{"name": r.Name, "min_age": r.MinAge, "max_age": r.MaxAge},
	})

	return r, nil
}

// Delete removes an age range.
func (s *AgeRangeService) Delete(ctx context.Context, agencyID, rangeID string, actorID string) error {
	r, err := s.Get(ctx, agencyID, rangeID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, r.ID); err != nil {
		return fmt.Errorf("failed to delete age range: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeAgeRangeDeleted,
		ActorID:  actorID,
		AgencyID: agencyID,
		Resource: "age_range",
		Metadata: map[string]any{"name": r.Name},
	})

	return nil
}
