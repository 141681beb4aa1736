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

// PhoneService manages agency contact numbers. A number is unique across all
// agencies of all tenants, not scoped to the owning agency.
type PhoneService struct {
	repo        PhoneRepository
	auditLogger audit.Logger
}

// NewPhoneService creates a new phone service
func NewPhoneService(repo PhoneRepository, auditLogger audit.Logger) *PhoneService {
	return &PhoneService{
		repo:        repo,
		auditLogger: auditLogger,
	}
}

// Add registers a phone number for an agency.
func (s *PhoneService) Add(ctx context.Context, agencyID, phoneType, number string, actorID string) (*Phone, error) {
	if !ValidPhoneType(phoneType) {
		return nil, apperr.InvalidInput("unknown phone type %q", phoneType)
	}
	if number == "" {
		return nil, apperr.InvalidInput("phone number is required")
	}

	existing, err := s.repo.GetByNumber(ctx, number)
	if err != nil && !errors.Is(err, ErrPhoneNotFound) {
		return nil, fmt.Errorf("failed to check phone number: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("phone number %s is already registered", number)
	}

	p := &Phone{
		ID:        id.New(),
		AgencyID:  agencyID,
		Type:      phoneType,
		Number:    number,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create phone: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypePhoneAdded,
		ActorID:  actorID,
		AgencyID: agencyID,
		Resource: "phone",
		Metadata: map[string]any{"type": p.Type},
	})

	return p, nil
}

// List returns the phones of an agency.
func (s *PhoneService) List(ctx context.Context, agencyID string) ([]*Phone, error) {
	return s.repo.ListByAgency(ctx, agencyID)
}

// Remove deletes a phone scoped to an agency.
func (s *PhoneService) Remove(ctx context.Context, agencyID, phoneID string, actorID string) error {
	p, err := s.repo.GetByID(ctx, phoneID)
	if err != nil {
		if errors.Is(err, ErrPhoneNotFound) {
			return apperr.NotFound("phone not found")
		}
		return fmt.Errorf("failed to get phone: %w", err)
	}
	if p.AgencyID != agencyID {
		return apperr.NotFound("phone not found")
	}

	if err := s.repo.Delete(ctx, phoneID); err != nil {
		return fmt.Errorf("failed to delete phone: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypePhoneRemoved,
		ActorID:  actorID,
		AgencyID: agencyID,
		Resource: "phone",
	})

	return nil
}
