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

// Package authz verifies the ownership chain of nested resource routes:
// Tenant -> Agency -> Trip -> sub-resource. Role checks happen before the
// guard runs; the guard decides the ownership axis only.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripdesk/tripdesk/internal/agency"
	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/auth"
	"github.com/tripdesk/tripdesk/internal/tenant"
	"github.com/tripdesk/tripdesk/internal/trip"
)

// AgencyReader looks up agencies by id.
type AgencyReader interface {
	GetByID(ctx context.Context, id string) (*agency.Agency, error)
}

// TripReader looks up trips by id.
type TripReader interface {
	GetByID(ctx context.Context, id string) (*trip.Trip, error)
}

// Guard verifies that a requested agency/trip id chain is owned by the
// resolved tenant and bound to the calling principal. Denial categories:
// a principal reaching outside its bound agency is Forbidden; a broken
// nested chain is NotFound, so callers never learn whether a foreign
// resource exists.
type Guard struct {
	agencies AgencyReader
	trips    TripReader
}

// NewGuard creates an ownership guard.
func NewGuard(agencies AgencyReader, trips TripReader) *Guard {
	return &Guard{agencies: agencies, trips: trips}
}

// AuthorizeAgency checks that the principal may act on the agency and that
// the agency belongs to the resolved tenant (when one is attached). A
// superadmin bypasses the principal binding but not chain consistency.
func (g *Guard) AuthorizeAgency(ctx context.Context, p auth.Principal, tc *tenant.Context, agencyID string) (*agency.Agency, error) {
	if agencyID == "" {
		return nil, apperr.InvalidInput("agency id is required")
	}

	if !p.IsSuperAdmin() && p.AgencyID != agencyID {
		return nil, apperr.Forbidden("access to this agency is not allowed")
	}

	a, err := g.agencies.GetByID(ctx, agencyID)
	if err != nil {
		if errors.Is(err, agency.ErrAgencyNotFound) {
			return nil, apperr.NotFound("agency not found")
		}
		return nil, fmt.Errorf("failed to verify agency ownership: %w", err)
	}

	if tc != nil && a.TenantID != tc.TenantID {
		return nil, apperr.NotFound("agency not found")
	}

	return a, nil
}

// AuthorizeTrip runs the agency check and then verifies that the trip exists
// and belongs to that agency. A trip of another agency is reported absent,
// never foreign.
func (g *Guard) AuthorizeTrip(ctx context.Context, p auth.Principal, tc *tenant.Context, agencyID, tripID string) (*trip.Trip, error) {
	if _, err := g.AuthorizeAgency(ctx, p, tc, agencyID); err != nil {
		return nil, err
	}

	if tripID == "" {
		return nil, apperr.InvalidInput("trip id is required")
	}

	t, err := g.trips.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			return nil, apperr.NotFound("trip not found")
		}
		return nil, fmt.Errorf("failed to verify trip ownership: %w", err)
	}

	if t.AgencyID != agencyID {
		return nil, apperr.NotFound("trip not found")
	}

	return t, nil
}
