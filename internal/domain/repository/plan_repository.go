package repository

import (
	"context"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// PlanRepository puerto de suscripciones.
// GetActiveSubscription devuelve (nil, nil) si el vendedor no tiene plan activo.
type PlanRepository interface {
	GetActiveSubscription(ctx context.Context, vendorID string) (*entity.Subscription, error)
}
