package repository

import (
	"context"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para los productos del menú (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ListByVendor(ctx context.Context, vendorID string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
