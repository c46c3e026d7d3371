package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo suscripciones sobre PostgreSQL.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// GetActiveSubscription devuelve la suscripción activa más reciente o (nil, nil).
// El vencimiento lo evalúa entity.Subscription.Allows.
func (r *PlanRepo) GetActiveSubscription(ctx context.Context, vendorID string) (*entity.Subscription, error) {
	query := `
		SELECT id, vendor_id, plan_name, features, is_active, expires_at, created_at
		FROM subscriptions
		WHERE vendor_id = $1 AND is_active
		ORDER BY created_at DESC
		LIMIT 1`
	var s entity.Subscription
	err := r.q.QueryRow(ctx, query, vendorID).Scan(
		&s.ID, &s.VendorID, &s.PlanName, &s.Features, &s.IsActive, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}
