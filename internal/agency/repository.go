package agency

import (
	"context"
	"errors"
)

var (
	ErrAgencyNotFound   = errors.New("agency not found")
	ErrAgeRangeNotFound = errors.New("age range not found")
	ErrPhoneNotFound    = errors.New("phone not found")
)

// Repository defines the interface for agency storage
type Repository interface {
	Create(ctx context.Context, agency *Agency) error
	GetByID(ctx context.Context, id string) (*Agency, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*Agency, error)
	Update(ctx context.Context, agency *Agency) error
	Delete(ctx context.Context, id string) error
}

// AgeRangeRepository defines the interface for age range storage.
// ListByAgency must return ranges in creation order; the overlap validator's
// "first conflict" result depends on it.
type AgeRangeRepository interface {
	Create(ctx context.Context, ageRange *AgeRange) error
	GetByID(ctx context.Context, id string) (*AgeRange, error)
	ListByAgency(ctx context.Context, agencyID string) ([]*AgeRange, error)
	Update(ctx context.Context, ageRange *AgeRange) error
	Delete(ctx context.Context, id string) error
}

// PhoneRepository defines the interface for agency phone storage.
// GetByNumber searches across all agencies; number uniqueness is global.
type PhoneRepository interface {
	Create(ctx context.Context, phone *Phone) error
	GetByID(ctx context.Context, id string) (*Phone, error)
	GetByNumber(ctx context.Context, number string) (*Phone, error)
	ListByAgency(ctx context.Context, agencyID string) ([]*Phone, error)
	Delete(ctx context.Context, id string) error
}
