package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

var (
	_ repository.VendorRepository = (*VendorRepo)(nil)
	_ repository.VendorWriter     = (*VendorRepo)(nil)
)

// VendorRepo perfil del vendedor sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un vendedor nuevo.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, email, phone, address, commission, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Name, v.Email, v.Phone, v.Address, v.Commission, v.Status, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// UpdateCommission cambia el porcentaje de comisión del vendedor.
func (r *VendorRepo) UpdateCommission(ctx context.Context, id string, commission *float64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE vendors SET commission = $2, updated_at = NOW() WHERE id = $1`, id, commission)
	if err != nil {
		return fmt.Errorf("update vendor commission: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene el perfil. ErrNotFound si no existe.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `
		SELECT id, name, email, phone, address, commission, status, created_at, updated_at
		FROM vendors WHERE id = $1`
	var v entity.Vendor
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Address, &v.Commission, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}
