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

// AgencyRepository implements agency.Repository
type AgencyRepository struct {
	db *DB
}

// NewAgencyRepository creates a new agency repository
func NewAgencyRepository(db *DB) *AgencyRepository {
	return &AgencyRepository{db: db}
}

// Create creates a new agency
func (r *AgencyRepository) Create(ctx context.Context, a *agency.Agency) error {
	now := time.Now()
	_, err := r.db.pool.Exec(ctx, `
		INSERT INTO agencies (id, tenant_id, cadastur, cnpj, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.TenantID, a.Cadastur, a.CNPJ, a.Name, a.Description, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert agency: %w", err)
	}

	a.CreatedAt = now
	a.UpdatedAt = now

	return nil
}

// GetByID retrieves an agency by ID
func (r *AgencyRepository) GetByID(ctx context.Context, id string) (*agency.Agency, error) {
	var a agency.Agency

	err := r.db.pool.QueryRow(ctx, `
		SELECT id, tenant_id, cadastur, cnpj, name, description, created_at, updated_at
		FROM agencies
		WHERE id = $1
	`, id).Scan(&a.ID, &a.TenantID, &a.Cadastur, &a.CNPJ, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, agency.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return &a, nil
}

// ListByTenant retrieves all agencies of a tenant
func (r *AgencyRepository) ListByTenant(ctx context.Context, tenantID string) ([]*agency.Agency, error) {
	rows, err := r.db.pool.Query(ctx, `
		SELECT id, tenant_id, cadastur, cnpj, name, description, created_at, updated_at
		FROM agencies
		WHERE tenant_id = $1
		ORDER BY created_at
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agencies: %w", err)
	}
	defer rows.Close()

	var agencies []*agency.Agency
	for rows.Next() {
		var a agency.Agency
		if err := rows.Scan(&a.ID, &a.TenantID, &a.Cadastur, &a.CNPJ, &a.Name, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan agency: %w", err)
		}
		agencies = append(agencies, &a)
	}

	return agencies, rows.Err()
}

// Update updates agency information
func (r *AgencyRepository) Update(ctx context.Context, a *agency.Agency) error {
	result, err := r.db.pool.Exec(ctx, `
		UPDATE agencies SET
			cadastur = $2,
			cnpj = $3,
			name = $4,
			description = $5,
			updated_at = NOW()
		WHERE id = $1
	`, a.ID, a.Cadastur, a.CNPJ, a.Name, a.Description)

	if err != nil {
		return fmt.Errorf("failed to update agency: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agency.ErrAgencyNotFound
	}

	return nil
}

// Delete removes an agency
func (r *AgencyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.pool.Exec(ctx, `
		DELETE FROM agencies WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("failed to delete agency: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agency.ErrAgencyNotFound
	}

	return nil
}
