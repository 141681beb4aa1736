package agency

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tripdesk/tripdesk/internal/audit"
)

type mockAgencyRepo struct {
	mock.Mock
}

func (m *mockAgencyRepo) Create(ctx context.Context, a *Agency) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAgencyRepo) GetByID(ctx context.Context, id string) (*Agency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Agency), args.Error(1)
}

func (m *mockAgencyRepo) ListByTenant(ctx context.Context, tenantID string) ([]*Agency, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Agency), args.Error(1)
}

func (m *mockAgencyRepo) Update(ctx context.Context, a *Agency) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAgencyRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAgeRangeRepo struct {
	mock.Mock
}

func (m *mockAgeRangeRepo) Create(ctx context.Context, r *AgeRange) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockAgeRangeRepo) GetByID(ctx context.Context, id string) (*AgeRange, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AgeRange), args.Error(1)
}

func (m *mockAgeRangeRepo) ListByAgency(ctx context.Context, agencyID string) ([]*AgeRange, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*AgeRange), args.Error(1)
}

func (m *mockAgeRangeRepo) Update(ctx context.Context, r *AgeRange) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockAgeRangeRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPhoneRepo struct {
	mock.Mock
}

func (m *mockPhoneRepo) Create(ctx context.Context, p *Phone) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPhoneRepo) GetByID(ctx context.Context, id string) (*Phone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Phone), args.Error(1)
}

func (m *mockPhoneRepo) GetByNumber(ctx context.Context, number string) (*Phone, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Phone), args.Error(1)
}

func (m *mockPhoneRepo) ListByAgency(ctx context.Context, agencyID string) ([]*Phone, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Phone), args.Error(1)
}

func (m *mockPhoneRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAudit struct {
	mock.Mock
}

func (m *mockAudit) Log(ctx context.Context, event audit.Event) {
	m.Called(ctx, event)
}

func newMockAudit() *mockAudit {
	a := new(mockAudit)
	a.On("Log", mock.Anything, mock.Anything).Return().Maybe()
	return a
}
