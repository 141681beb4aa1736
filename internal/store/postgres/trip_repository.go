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

// TripRepository implements trip.Repository
type TripRepository struct {
	db *DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create creates a new trip
func (r *TripRepository) Create(ctx context.Context, t *trip.Trip) error {
	now := time.Now()
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO trips (
			id, agency_id, name, description, destination, published,
			main_image_url, main_thumbnail_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		t.ID, t.AgencyID, t.Name, t.Description, t.Destination, t.Published,
		t.MainImageURL, t.MainThumbnailURL, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	t.CreatedAt = now
	t.UpdatedAt = now

	return nil
}

// GetByID retrieves a trip by ID
func (r *TripRepository) GetByID(ctx context.Context, id string) (*trip.Trip, error) {
	var t trip.Trip

	err := r.db.pool.QueryRow(ctx, `
		SELECT id, agency_id, name, description, destination, published,
			main_image_url, main_thumbnail_url, created_at, updated_at
		FROM trips
		WHERE id = $1
	`, id).Scan(
		&t.ID, &t.AgencyID, &t.Name, &t.Description, &t.Destination, &t.Published,
		&t.MainImageURL, &t.MainThumbnailURL, &t.CreatedAt, &t.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, trip.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &t, nil
}

// ListByAgency retrieves all trips of an agency
func (r *TripRepository) ListByAgency(ctx context.Context, agencyID string) ([]*trip.Trip, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, agency_id, name, description, destination, published,
			main_image_url, main_thumbnail_url, created_at, updated_at
		FROM trips
		WHERE agency_id = $1
		ORDER BY created_at
	`, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	return scanTrips(rows)
}

// ListPublishedByTenant retrieves published trips across every agency of a
// tenant. Backs the public storefront listing.
func (r *TripRepository) ListPublishedByTenant(ctx context.Context, tenantID string) ([]*trip.Trip, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT t.id, t.agency_id, t.name, t.description, t.destination, t.published,
			t.main_image_url, t.main_thumbnail_url, t.created_at, t.updated_at
		FROM trips t
		JOIN agencies a ON a.id = t.agency_id
		WHERE a.tenant_id = $1 AND t.published = TRUE
		ORDER BY t.created_at
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list published trips: %w", err)
	}
	defer rows.Close()

	return scanTrips(rows)
}

func scanTrips(rows pgx.Rows) ([]*trip.Trip, error) {
	var trips []*trip.Trip
	for rows.Next() {
		var t trip.Trip
		if err := rows.Scan(
			&t.ID, &t.AgencyID, &t.Name, &t.Description, &t.Destination, &t.Published,
			&t.MainImageURL, &t.MainThumbnailURL, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, &t)
	}
	return trips, rows.Err()
}

// Update updates trip information. The main-image mirror is managed through
// SetMainImage, not here.
func (r *TripRepository) Update(ctx context.Context, t *trip.Trip) error {
	result, err := r.db.pool.Exec(ctx, `
		UPDATE trips SET
			name = $2,
			description = $3,
			destination = $4,
			published = $5,
			updated_at = NOW()
		WHERE id = $1
	`, t.ID, t.Name, t.Description, t.Destination, t.Published)

	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

// SetMainImage rewrites the trip's denormalized main-image URLs. Empty
// strings clear the mirror.
func (r *TripRepository) SetMainImage(ctx context.Context, tripID, imageURL, thumbnailURL string) error {
	result, err := r.db.pool.Exec(ctx, `
		UPDATE trips SET
			main_image_url = $2,
			main_thumbnail_url = $3,
			updated_at = NOW()
		WHERE id = $1
	`, tripID, imageURL, thumbnailURL)

	if err != nil {
		return fmt.Errorf("failed to set trip main image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

// Delete removes a trip
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.pool.Exec(ctx, `
		DELETE FROM trips WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}
