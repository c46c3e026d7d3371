package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	appearnings "github.com/jhoicas/vendor-earnings-api/internal/application/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

// VendorUseCase perfil del vendedor autenticado.
type VendorUseCase struct {
	repo              repository.VendorRepository
	plans             *PlanService
	defaultCommission decimal.Decimal
}

// NewVendorUseCase construye el caso de uso. plans puede ser nil (perfil sin plan).
func NewVendorUseCase(repo repository.VendorRepository, plans *PlanService, defaultCommission decimal.Decimal) *VendorUseCase {
	return &VendorUseCase{repo: repo, plans: plans, defaultCommission: defaultCommission}
}

// GetProfile devuelve el perfil con la comisión efectiva que usará el reporte.
func (uc *VendorUseCase) GetProfile(ctx context.Context, vendorID string) (*dto.VendorProfileResponse, error) {
	v, err := uc.repo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	pct, defaulted := appearnings.EffectiveCommission(v, uc.defaultCommission)
	out := &dto.VendorProfileResponse{
		ID:                  v.ID,
		Name:                v.Name,
		Email:               v.Email,
		Phone:               v.Phone,
		Address:             v.Address,
		Status:              v.Status,
		CommissionPercent:   pct,
		CommissionDefaulted: defaulted,
	}
	if uc.plans != nil {
		sub, err := uc.plans.Current(ctx, vendorID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("vendor: %w", err)
		}
		if sub != nil {
			out.Plan = &dto.PlanDTO{Name: sub.PlanName, Features: sub.Features, ExpiresAt: sub.ExpiresAt}
		}
	}
	return out, nil
}
