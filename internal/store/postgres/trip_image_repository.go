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

// TripImageRepository implements trip.ImageRepository
type TripImageRepository struct {
	db *DB
}

// NewTripImageRepository creates a new trip image repository
func NewTripImageRepository(db *DB) *TripImageRepository {
	return &TripImageRepository{db: db}
}

// Create creates a new trip image
func (r *TripImageRepository) Create(ctx context.Context, img *trip.Image) error {
	now := time.Now()
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO trip_images (id, trip_id, image_url, thumbnail_url, is_main, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, img.ID, img.TripID, img.ImageURL, img.ThumbnailURL, img.IsMain, img.DisplayOrder, now)
	if err != nil {
		return fmt.Errorf("failed to insert trip image: %w", err)
	}

	img.CreatedAt = now

	return nil
}

// GetByID retrieves a trip image by ID
func (r *TripImageRepository) GetByID(ctx context.Context, id string) (*trip.Image, error) {
	var img trip.Image

	err := r.db.pool.QueryRow(ctx, `
		SELECT id, trip_id, image_url, thumbnail_url, is_main, display_order, created_at
		FROM trip_images
		WHERE id = $1
	`, id).Scan(&img.ID, &img.TripID, &img.ImageURL, &img.ThumbnailURL, &img.IsMain, &img.DisplayOrder, &img.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, trip.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get trip image: %w", err)
	}

	return &img, nil
}

// ListByTrip retrieves all images of a trip ordered for display
func (r *TripImageRepository) ListByTrip(ctx context.Context, tripID string) ([]*trip.Image, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, trip_id, image_url, thumbnail_url, is_main, display_order, created_at
		FROM trip_images
		WHERE trip_id = $1
		ORDER BY display_order, id
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip images: %w", err)
	}
	defer rows.Close()

	var images []*trip.Image
	for rows.Next() {
		var img trip.Image
		if err := rows.Scan(&img.ID, &img.TripID, &img.ImageURL, &img.ThumbnailURL, &img.IsMain, &img.DisplayOrder, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip image: %w", err)
		}
		images = append(images, &img)
	}

	return images, rows.Err()
}

// Update updates a trip image
func (r *TripImageRepository) Update(ctx context.Context, img *trip.Image) error {
	result, err := r.db.pool.Exec(ctx, `
		UPDATE trip_images SET
			image_url = $2,
			thumbnail_url = $3,
			is_main = $4,
			display_order = $5
		WHERE id = $1
	`, img.ID, img.ImageURL, img.ThumbnailURL, img.IsMain, img.DisplayOrder)

	if err != nil {
		return fmt.Errorf("failed to update trip image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrImageNotFound
	}

	return nil
}

// ClearMainExcept unsets the main flag on every image of a trip except the
// given one. An empty exceptID clears the flag on all of them.
func (r *TripImageRepository) ClearMainExcept(ctx context.Context, tripID, exceptID string) error {
	var err error
	if exceptID == "" {
		_, err = r.db.pool.Exec(ctx, `
			UPDATE trip_images SET is_main = FALSE
			WHERE trip_id = $1 AND is_main = TRUE
		`, tripID)
	} else {
		_, err = r.db.pool.Exec(ctx, `
			UPDATE trip_images SET is_main = FALSE
			WHERE trip_id = $1 AND id <> $2 AND is_main = TRUE
		`, tripID, exceptID)
	}
	if err != nil {
		return fmt.Errorf("failed to clear main images: %w", err)
	}
	return nil
}

// Delete removes a trip image record
func (r *TripImageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.pool.Exec(ctx, `
		DELETE FROM trip_images WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("failed to delete trip image: %w", err)
	}

	if result.RowsAffected() == 0 {
		return trip.ErrImageNotFound
	}

	return nil
}
