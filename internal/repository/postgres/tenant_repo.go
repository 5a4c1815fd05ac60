// internal/repository/postgres/tenant_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"skadeportal-service/internal/domain/tenant"
	xerrors "skadeportal-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantRepository struct {
	db *pgxpool.Pool
}

func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{db: db}
}

// FindByID retrieves a company by id.
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*tenant.Company, error) {
	query := `
		SELECT id, name, orgnumber, logo, services, created_at
		FROM companies
		WHERE id = $1
	`

	var c tenant.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.OrgNumber, &c.Logo, &c.Services, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &c, nil
}

// FindByUserID retrieves the company a staff user belongs to.
func (r *TenantRepository) FindByUserID(ctx context.Context, userID string) (*tenant.Company, error) {
	query := `
		SELECT c.id, c.name, c.orgnumber, c.logo, c.services, c.created_at
		FROM companies c
		JOIN profiles p ON p.company_id = c.id
		WHERE p.id = $1
	`

	var c tenant.Company
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&c.ID, &c.Name, &c.OrgNumber, &c.Logo, &c.Services, &c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company for user: %w", err)
	}
	return &c, nil
}
