package trip

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tripdesk/tripdesk/internal/audit"
	"github.com/tripdesk/tripdesk/internal/storage"
)

type mockTripRepo struct {
	mock.Mock
}

func (m *mockTripRepo) Create(ctx context.Context, t *Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id string) (*Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trip), args.Error(1)
}

func (m *mockTripRepo) ListByAgency(ctx context.Context, agencyID string) ([]*Trip, error) {
	args := m.Called(ctx, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Trip), args.Error(1)
}

func (m *mockTripRepo) ListPublishedByTenant(ctx context.Context, tenantID string) ([]*Trip, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Trip), args.Error(1)
}

func (m *mockTripRepo) Update(ctx context.Context, t *Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTripRepo) SetMainImage(ctx context.Context, tripID, imageURL, thumbnailURL string) error {
	args := m.Called(ctx, tripID, imageURL, thumbnailURL)
	return args.Error(0)
}

func (m *mockTripRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockImageRepo struct {
	mock.Mock
}

func (m *mockImageRepo) Create(ctx context.Context, img *Image) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *mockImageRepo) GetByID(ctx context.Context, id string) (*Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Image), args.Error(1)
}

func (m *mockImageRepo) ListByTrip(ctx context.Context, tripID string) ([]*Image, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Image), args.Error(1)
}

func (m *mockImageRepo) Update(ctx context.Context, img *Image) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *mockImageRepo) ClearMainExcept(ctx context.Context, tripID, exceptID string) error {
	args := m.Called(ctx, tripID, exceptID)
	return args.Error(0)
}

func (m *mockImageRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, it *Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *mockItemRepo) ListByTrip(ctx context.Context, tripID string) ([]*Item, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Item), args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, it *Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *mockItemRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockFileStore struct {
	mock.Mock
}

func (m *mockFileStore) Store(ctx context.Context, data []byte, name, folder string) (storage.StoredFile, error) {
	args := m.Called(ctx, data, name, folder)
	return args.Get(0).(storage.StoredFile), args.Error(1)
}

func (m *mockFileStore) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
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
