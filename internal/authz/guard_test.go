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

package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tripdesk/tripdesk/internal/agency"
	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/auth"
	"github.com/tripdesk/tripdesk/internal/tenant"
	"github.com/tripdesk/tripdesk/internal/trip"
)

type mockAgencyReader struct {
	mock.Mock
}

func (m *mockAgencyReader) GetByID(ctx context.Context, id string) (*agency.Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agency.Agency), args.Error(1)
}

type mockTripReader struct {
	mock.Mock
}

func (m *mockTripReader) GetByID(ctx context.Context, id string) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func TestGuard_AuthorizeAgency_ForeignAgencyIsForbidden(t *testing.T) {
	agencies := new(mockAgencyReader)
	guard := NewGuard(agencies, new(mockTripReader))

	p := auth.Principal{UserID: "u1", Role: auth.RoleAdmin, AgencyID: "agency-a"}
	tc := &tenant.Context{TenantID: "tenant-1"}

	_, err := guard.AuthorizeAgency(context.Background(), p, tc, "agency-b")

	require.Error(t, err)
	assert.Equal(t, apperr.CategoryForbidden, apperr.CategoryOf(err))
	agencies.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGuard_AuthorizeAgency_SuperadminBypassesBinding(t *testing.T) {
	agencies := new(mockAgencyReader)
	agencies.On("GetByID", mock.Anything, "agency-b").Return(&agency.Agency{
		ID:       "agency-b",
		TenantID: "tenant-1",
	}, nil)
	guard := NewGuard(agencies, new(mockTripReader))

	p := auth.Principal{UserID: "root", Role: auth.RoleSuperAdmin, AgencyID: ""}
	tc := &tenant.Context{TenantID: "tenant-1"}

	a, err := guard.AuthorizeAgency(context.Background(), p, tc, "agency-b")

	require.NoError(t, err)
	assert.Equal(t, "agency-b", a.ID)
}

func TestGuard_AuthorizeAgency_OtherTenantIsNotFound(t *testing.T) {
	agencies := new(mockAgencyReader)
	agencies.On("GetByID", mock.Anything, "agency-a").Return(&agency.Agency{
		ID:       "agency-a",
		TenantID: "tenant-2",
	}, nil)
	guard := NewGuard(agencies, new(mockTripReader))

	p := auth.Principal{UserID: "u1", Role: auth.RoleAdmin, AgencyID: "agency-a"}
	tc := &tenant.Context{TenantID: "tenant-1"}

	_, err := guard.AuthorizeAgency(context.Background(), p, tc, "agency-a")

	require.Error(t, err)
	assert.Equal(t, apperr.CategoryNotFound, apperr.CategoryOf(err))
}

func TestGuard_AuthorizeAgency_MissingAgencyIsNotFound(t *testing.T) {
	agencies := new(mockAgencyReader)
	agencies.On("GetByID", mock.Anything, "agency-a").Return(nil, agency.ErrAgencyNotFound)
	guard := NewGuard(agencies, new(mockTripReader))

	p := auth.Principal{UserID: "u1", Role: auth.RoleAdmin, AgencyID: "agency-a"}

	_, err := guard.AuthorizeAgency(context.Background(), p, nil, "agency-a")

	require.Error(t, err)
	assert.Equal(t, apperr.CategoryNotFound, apperr.CategoryOf(err))
}

func TestGuard_AuthorizeTrip_ForeignTripIsNotFound(t *testing.T) {
	agencies := new(mockAgencyReader)
	agencies.On("GetByID", mock.Anything, "agency-a").Return(&agency.Agency{
		ID:       "agency-a",
		TenantID: "tenant-1",
	}, nil)
	trips := new(mockTripReader)
	trips.On("GetByID", mock.Anything, "trip-9").Return(&trip.Trip{
		ID:       "trip-9",
		AgencyID: "agency-z",
	}, nil)
	guard := NewGuard(agencies, trips)

	p := auth.Principal{UserID: "u1", Role: auth.RoleAdmin, AgencyID: "agency-a"}
	tc := &tenant.Context{TenantID: "tenant-1"}

	_, err := guard.AuthorizeTrip(context.Background(), p, tc, "agency-a", "trip-9")

	require.Error(t, err)
	assert.Equal(t, apperr.CategoryNotFound, apperr.CategoryOf(err))
}

func TestGuard_AuthorizeTrip_SuperadminStillNeedsConsistentChain(t *testing.T) {
	agencies := new(mockAgencyReader)
	agencies.On("GetByID", mock.Anything, "agency-a").Return(&agency.Agency{
		ID:       "agency-a",
		TenantID: "tenant-1",
	}, nil)
	trips := new(mockTripReader)
	trips.On("GetByID", mock.Anything, "trip-9").Return(nil, trip.ErrTripNotFound)
	guard := NewGuard(agencies, trips)

	p := auth.Principal{UserID: "root", Role: auth.RoleSuperAdmin}

	_, err := guard.AuthorizeTrip(context.Background(), p, nil, "agency-a", "trip-9")

	require.Error(t, err)
	assert.Equal(t, apperr.CategoryNotFound, apperr.CategoryOf(err))
}

func TestGuard_AuthorizeTrip_OwnTripSucceeds(t *testing.T) {
	agencies := new(mockAgencyReader)
	agencies.On("GetByID", mock.Anything, "agency-a").Return(&agency.Agency{
		ID:       "agency-a",
		TenantID: "tenant-1",
	}, nil)
	trips := new(mockTripReader)
	trips.On("GetByID", mock.Anything, "trip-1").Return(&trip.Trip{
		ID:       "trip-1",
		AgencyID: "agency-a",
	}, nil)
	guard := NewGuard(agencies, trips)

	p := auth.Principal{UserID: "u1", Role: auth.RoleAgent, AgencyID: "agency-a"}
	tc := &tenant.Context{TenantID: "tenant-1"}

	tr, err := guard.AuthorizeTrip(context.Background(), p, tc, "agency-a", "trip-1")

	require.NoError(t, err)
	assert.Equal(t, "trip-1", tr.ID)
}
