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
	"github.com/tripdesk/tripdesk/internal/agency"
)

// AgeRangeRepository implements agency.AgeRangeRepository
type AgeRangeRepository struct {
	db *DB
}

// NewAgeRangeRepository creates a new age range repository
func NewAgeRangeRepository(db *DB) *AgeRangeRepository {
	return &AgeRangeRepository{db: db}
}

// Create creates a new age range
func (r *AgeRangeRepository) Create(ctx context.Context, ar *agency.AgeRange) error {
	now := time.Now()
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO age_ranges (id, agency_id, name, min_age, max_age, occupies_seat, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ar.ID, ar.AgencyID, ar.Name, ar.MinAge, ar.MaxAge, ar.OccupiesSeat, now)
	if err != nil {
		return fmt.Errorf("failed to insert age range: %w", err)
	}

	ar.CreatedAt = now

	return nil
}

// GetByID retrieves an age range by ID
func (r *AgeRangeRepository) GetByID(ctx context.Context, id string) (*agency.AgeRange, error) {
	var ar agency.AgeRange

	err := r.db.pool.QueryRow(ctx, `
		SELECT id, agency_id, name, min_age, max_age, occupies_seat, created_at
		FROM age_ranges
		WHERE id = $1
	`, id).Scan(&ar.ID, &ar.AgencyID, &ar.Name, &ar.MinAge, &ar.MaxAge, &ar.OccupiesSeat, &ar.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, agency.ErrAgeRangeNotFound
		}
		return nil, fmt.Errorf("failed to get age range: %w", err)
	}

	return &ar, nil
}

// ListByAgency retrieves the age ranges of an agency in creation order.
// Ids are time-ordered UUIDv7, so ordering by id matches creation order
// even when rows share a created_at timestamp.
func (r *AgeRangeRepository) ListByAgency(ctx context.Context, agencyID string) ([]*agency.AgeRange, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, agency_id, name, min_age, max_age, occupies_seat, created_at
		FROM age_ranges
		WHERE agency_id = $1
		ORDER BY id
	`, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list age ranges: %w", err)
	}
	defer rows.Close()

	var ranges []*agency.AgeRange
	for rows.Next() {
		var ar agency.AgeRange
		if err := rows.Scan(&ar.ID, &ar.AgencyID, &ar.Name, &ar.MinAge, &ar.MaxAge, &ar.OccupiesSeat, &ar.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan age range: %w", err)
		}
		ranges = append(ranges, &ar)
	}

	return ranges, rows.Err()
}

// Update updates an age range
func (r *AgeRangeRepository) Update(ctx context.Context, ar *agency.AgeRange) error {
	result, err := r.db.pool.Exec(ctx, `
		UPDATE age_ranges SET
			name = $2,
			min_age = $3,
			max_age = $4,
			occupies_seat = $5
		WHERE id = $1
	`, ar.ID, ar.Name, ar.MinAge, ar.MaxAge, ar.OccupiesSeat)

	if err != nil {
		return fmt.Errorf("failed to update age range: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agency.ErrAgeRangeNotFound
	}

	return nil
}

// Delete removes an age range
func (r *AgeRangeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.pool.Exec(ctx, `
		DELETE FROM age_ranges WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("failed to delete age range: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agency.ErrAgeRangeNotFound
	}

	return nil
}
