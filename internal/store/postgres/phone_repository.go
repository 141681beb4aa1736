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

// PhoneRepository implements agency.PhoneRepository
type PhoneRepository struct {
	db *DB
}

// NewPhoneRepository creates a new phone repository
func NewPhoneRepository(db *DB) *PhoneRepository {
	return &PhoneRepository{db: db}
}

// Create creates a new phone
func (r *PhoneRepository) Create(ctx context.Context, p *agency.Phone) error {
	now := time.Now()
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO agency_phones (id, agency_id, type, number, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.AgencyID, p.Type, p.Number, now)
	if err != nil {
		return fmt.Errorf("failed to insert phone: %w", err)
	}

	p.CreatedAt = now

	return nil
}

// GetByID retrieves a phone by ID
func (r *PhoneRepository) GetByID(ctx context.Context, id string) (*agency.Phone, error) {
	var p agency.Phone

	err := r.db.pool.QueryRow(ctx, `
		SELECT id, agency_id, type, number, created_at
		FROM agency_phones
		WHERE id = $1
	`, id).Scan(&p.ID, &p.AgencyID, &p.Type, &p.Number, &p.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, agency.ErrPhoneNotFound
		}
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}

	return &p, nil
}

// GetByNumber retrieves a phone by number across all agencies
func (r *PhoneRepository) GetByNumber(ctx context.Context, number string) (*agency.Phone, error) {
	var p agency.Phone

	err := r.db.pool.QueryRow(ctx, `
		SELECT id, agency_id, type, number, created_at
		FROM agency_phones
		WHERE number = $1
	`, number).Scan(&p.ID, &p.AgencyID, &p.Type, &p.Number, &p.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, agency.ErrPhoneNotFound
		}
		return nil, fmt.Errorf("failed to get phone by number: %w", err)
	}

	return &p, nil
}

// ListByAgency retrieves all phones of an agency
func (r *PhoneRepository) ListByAgency(ctx context.Context, agencyID string) ([]*agency.Phone, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, agency_id, type, number, created_at
		FROM agency_phones
		WHERE agency_id = $1
		ORDER BY id
	`, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	defer rows.Close()

	var phones []*agency.Phone
	for rows.Next() {
		var p agency.Phone
		if err := rows.Scan(&p.ID, &p.AgencyID, &p.Type, &p.Number, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		phones = append(phones, &p)
	}

	return phones, rows.Err()
}

// Delete removes a phone
func (r *PhoneRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.pool.Exec(ctx, `
		DELETE FROM agency_phones WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("failed to delete phone: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agency.ErrPhoneNotFound
	}

	return nil
}
