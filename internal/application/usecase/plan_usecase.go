package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

// PlanService verifica qué funcionalidades del plan tiene activas un vendedor.
// Es el único punto de la aplicación que conoce la lógica de activación de planes.
type PlanService struct {
	planRepo repository.PlanRepository
	now      func() time.Time
}

// NewPlanService construye el servicio de planes.
func NewPlanService(planRepo repository.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo, now: time.Now}
}

// HasActiveFeature informa si el vendedor tiene la funcionalidad activa y sin vencer.
// Devuelve false (sin error) si el plan no la incluye o no hay plan.
// Devuelve error solo ante fallos de infraestructura.
func (s *PlanService) HasActiveFeature(ctx context.Context, vendorID, feature string) (bool, error) {
	if vendorID == "" || feature == "" {
		return false, fmt.Errorf("plan: vendorID y feature son obligatorios")
	}
	sub, err := s.planRepo.GetActiveSubscription(ctx, vendorID)
	if err != nil {
		return false, fmt.Errorf("plan: %w", err)
	}
	return sub.Allows(feature, s.now()), nil
}

// Current devuelve el plan vigente o nil.
func (s *PlanService) Current(ctx context.Context, vendorID string) (*entity.Subscription, error) {
	sub, err := s.planRepo.GetActiveSubscription(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	if sub == nil || !sub.IsActive || (sub.ExpiresAt != nil && !sub.ExpiresAt.After(s.now())) {
		return nil, nil
	}
	return sub, nil
}
