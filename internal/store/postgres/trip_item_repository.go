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

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tripdesk/tripdesk/internal/trip"
)

// TripItemRepository implements trip.ItemRepository
type TripItemRepository struct {
	db *DB
}

// NewTripItemRepository creates a new trip item repository
func NewTripItemRepository(db *DB) *TripItemRepository {
	return &TripItemRepository{db: db}
}

// Create creates a new trip item
func (r *TripItemRepository) Create(ctx context.Context, item *trip.Item) error {
	now := time.Now()
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO trip_items (id, trip_id, name, is_included, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, item.ID, item.TripID, item.Name, item.IsIncluded, now)
	if err != nil {
		return fmt.Errorf("failed to insert trip item: %w", err)
	}

	item.CreatedAt = now

	return nil
}

// GetByID retrieves a trip item by ID
func (r *TripItemRepository) GetByID(ctx context.Context, id string) (*trip.Item, error) {
	var item trip.Item

	err := r.db.pool.QueryRow(ctx, `
		SELECT id, trip_id, name, is_included, created_at
		FROM trip_items
		WHERE id = $1
	`, id).Scan(&item.ID, &item.TripID, &item.Name, &item.IsIncluded, &item.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, trip.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get trip item: %w", err)
	}

	return &item, nil
}

// ListByTrip retrieves all items of a trip
func (r *TripItemRepository) ListByTrip(ctx context.Context, tripID string) ([]*trip.Item, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, trip_id, name, is_included, created_at
		FROM trip_items
		WHERE trip_id = $1
		ORDER BY id
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip items: %w", err)
	}
	defer rows.Close()

	var items []*trip.Item
	for rows.Next() {
		var item trip.Item
		if err := rows.Scan(&item.ID, &item.TripID, &item.Name, &item.IsIncluded, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip item: %w", err)
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

// Update updates a trip item
func (r *TripItemRepository) Update(ctx context.Context, item *trip.Item) error {
	result, err := r.db.pool.Exec(ctx, `
		UPDATE trip_items SET
			name = $2,
			is_included = $3
		WHERE id = $1
	`, item.ID, item.Name, item.IsIncluded)

	if err != nil {
		return fmt.Errorf("failed to update trip item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrItemNotFound
	}

	return nil
}

// Delete removes a trip item
func (r *TripItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.pool.Exec(ctx, `
		DELETE FROM trip_items WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("failed to delete trip item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrItemNotFound
	}

	return nil
}
