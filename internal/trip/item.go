package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripdesk/tripdesk/internal/apperr"
	"github.com/tripdesk/tripdesk/internal/id"
)

// ItemService manages the included/excluded entries of a trip. Items carry no
// cross-item invariants.
type ItemService struct {
	repo ItemRepository
}

// NewItemService creates a new trip item service
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create adds an item to a trip.
func (s *ItemService) Create(ctx context.Context, tripID, name string, isIncluded bool) (*Item, error) {
	if name == "" {
		return nil, apperr.InvalidInput("item name is required")
	}

	it := &Item{
		ID:         id.New(),
		TripID:     tripID,
		Name:       name,
		IsIncluded: isIncluded,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to create trip item: %w", err)
	}
	return it, nil
}

// List returns the items of a trip.
func (s *ItemService) List(ctx context.Context, tripID string) ([]*Item, error) {
	return s.repo.ListByTrip(ctx, tripID)
}

// Update rewrites an item scoped to a trip.
func (s *ItemService) Update(ctx context.Context, tripID, itemID, name string, isIncluded bool) (*Item, error) {
	it, err := s.get(ctx, tripID, itemID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, apperr.InvalidInput("item name is required")
	}

	it.Name = name
	it.IsIncluded = isIncluded

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to update trip item: %w", err)
	}
	return it, nil
}

// Delete removes an item scoped to a trip.
func (s *ItemService) Delete(ctx context.Context, tripID, itemID string) error {
	it, err := s.get(ctx, tripID, itemID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, it.ID); err != nil {
		return fmt.Errorf("failed to delete trip item: %w", err)
	}
	return nil
}

func (s *ItemService) get(ctx context.Context, tripID, itemID string) (*Item, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, apperr.NotFound("trip item not found")
		}
		return nil, fmt.Errorf("failed to get trip item: %w", err)
	}
	if it.TripID != tripID {
		return nil, apperr.NotFound("trip item not found")
	}
	return it, nil
}
