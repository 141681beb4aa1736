package trip

import (
	"context"
	"errors"
)

var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrImageNotFound = errors.New("trip image not found")
	ErrItemNotFound  = errors.New("trip item not found")
)

// Repository defines the interface for trip storage
type Repository interface {
	Create(ctx context.Context, trip *Trip) error
	GetByID(ctx context.Context, id string) (*Trip, error)
	ListByAgency(ctx context.Context, agencyID string) ([]*Trip, error)
	ListPublishedByTenant(ctx context.Context, tenantID string) ([]*Trip, error)
	Update(ctx context.Context, trip *Trip) error
	// SetMainImage rewrites the trip's denormalized main-image mirror;
	// empty URLs clear it.
	SetMainImage(ctx context.Context, tripID, imageURL, thumbnailURL string) error
	Delete(ctx context.Context, id string) error
}

// ImageRepository defines the interface for trip image storage
type ImageRepository interface {
	Create(ctx context.Context, image *Image) error
	GetByID(ctx context.Context, id string) (*Image, error)
	ListByTrip(ctx context.Context, tripID string) ([]*Image, error)
	Update(ctx context.Context, image *Image) error
	// ClearMainExcept unsets IsMain on every image of the trip except the
	// given one; an empty exceptID clears all.
	ClearMainExcept(ctx context.Context, tripID, exceptID string) error
	Delete(ctx context.Context, id string) error
}

// ItemRepository defines the interface for trip item storage
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	ListByTrip(ctx context.Context, tripID string) ([]*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id string) error
}
