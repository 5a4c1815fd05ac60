// internal/repository/postgres/claim_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"skadeportal-service/internal/domain/claim"
	xerrors "skadeportal-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClaimRepository serves both claim tables; the category picks the table.
// Both tables share the same column set.
type ClaimRepository struct {
	db *pgxpool.Pool
}

func NewClaimRepository(db *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{db: db}
}

const claimColumns = `
	id, companyid, firstname, lastname, personalnumber, phone, email,
	registrationnumber, insurancecompany, vatliable,
	incidentdate, odometer, description,
	damagetype, damagecause, damagewindow,
	status, signedbyname, created_at
`

func scanClaim(row pgx.Row) (*claim.Claim, error) {
	var c claim.Claim
	err := row.Scan(
		&c.ID, &c.TenantID, &c.FirstName, &c.LastName, &c.PersonalNumber, &c.Phone, &c.Email,
		&c.RegistrationNumber, &c.InsuranceCompany, &c.VATLiable,
		&c.IncidentDate, &c.Odometer, &c.Description,
		&c.DamageType, &c.DamageCause, &c.DamageWindow,
		&c.Status, &c.SignedByName, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByTenant retrieves every claim for the tenant, newest first.
func (r *ClaimRepository) ListByTenant(ctx context.Context, category claim.Category, tenantID string) ([]*claim.Claim, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE companyid = $1
		ORDER BY created_at DESC
	`, claimColumns, category.Table())

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	defer rows.Close()

	claims := make([]*claim.Claim, 0)
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read claims: %w", err)
	}
	return claims, nil
}

// FindByID retrieves one claim, scoped to the tenant.
func (r *ClaimRepository) FindByID(ctx context.Context, category claim.Category, tenantID, id string) (*claim.Claim, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND companyid = $2
	`, claimColumns, category.Table())

	c, err := scanClaim(r.db.QueryRow(ctx, query, id, tenantID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find claim: %w", err)
	}
	return c, nil
}

// UpdateStatus writes the single status field.
func (r *ClaimRepository) UpdateStatus(ctx context.Context, category claim.Category, tenantID, id string, status claim.Status) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1
		WHERE id = $2 AND companyid = $3
	`, category.Table())

	tag, err := r.db.Exec(ctx, query, status, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes the claim record itself. Artifact deletion is the claim
// service's job and happens before this call.
func (r *ClaimRepository) Delete(ctx context.Context, category claim.Category, tenantID, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND companyid = $2
	`, category.Table())

	tag, err := r.db.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete claim: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
