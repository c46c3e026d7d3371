package repository

import (
	"context"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// VendorRepository puerto del perfil del vendedor.
// GetByID devuelve domain.ErrNotFound si el vendedor no existe.
type VendorRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
}

// VendorWriter escritura del perfil (solo Postgres; el backend remoto es de solo lectura).
// UpdateCommission con commission nil vuelve a la comisión por defecto; ErrNotFound si no existe.
type VendorWriter interface {
	Create(ctx context.Context, v *entity.Vendor) error
	UpdateCommission(ctx context.Context, id string, commission *float64) error
}
