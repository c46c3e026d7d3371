package repository

import (
	"context"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// OrderRepository puerto de lectura de órdenes del backend (read-only).
// ListByVendor devuelve todas las órdenes del vendedor en cualquier estado y sin paginar;
// el filtrado por estado, fecha y texto se hace en memoria en el motor de ganancias.
type OrderRepository interface {
	ListByVendor(ctx context.Context, vendorID string) ([]entity.RawOrder, error)
}
