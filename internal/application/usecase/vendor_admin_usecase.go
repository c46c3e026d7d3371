package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
	"github.com/jhoicas/vendor-earnings-api/pkg/logger"
)

// VendorInvalidator lo implementa la caché de perfiles (*cache.VendorCache).
type VendorInvalidator interface {
	Invalidate(ctx context.Context, id string) error
}

// VendorAdminUseCase alta de vendedores y cambio de comisión, reservado a admin.
type VendorAdminUseCase struct {
	writer repository.VendorWriter
	cache  VendorInvalidator
	log    *logger.Logger
	now    func() time.Time
}

// NewVendorAdminUseCase construye el caso de uso. cache puede ser nil (sin Redis).
func NewVendorAdminUseCase(writer repository.VendorWriter, cache VendorInvalidator, log *logger.Logger) *VendorAdminUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &VendorAdminUseCase{writer: writer, cache: cache, log: log, now: time.Now}
}

// Create registra un vendedor activo.
func (uc *VendorAdminUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorProfileResponse, error) {
	if err := checkCommission(in.CommissionPercent); err != nil {
		return nil, err
	}
	now := uc.now()
	v := &entity.Vendor{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		Commission: in.CommissionPercent,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.writer.Create(ctx, v); err != nil {
		return nil, err
	}
	return &dto.VendorProfileResponse{
		ID:      v.ID,
		Name:    v.Name,
		Email:   v.Email,
		Phone:   v.Phone,
		Address: v.Address,
		Status:  v.Status,
	}, nil
}

// SetCommission cambia la comisión y descarta el perfil cacheado para que el próximo
// reporte la use. Un fallo al invalidar solo se registra: la entrada expira con el TTL.
func (uc *VendorAdminUseCase) SetCommission(ctx context.Context, vendorID string, in dto.SetCommissionRequest) error {
	if err := checkCommission(in.CommissionPercent); err != nil {
		return err
	}
	if err := uc.writer.UpdateCommission(ctx, vendorID, in.CommissionPercent); err != nil {
		return err
	}
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, vendorID); err != nil {
			uc.log.WithVendor(vendorID).Warn().Err(err).Msg("vendor: no se pudo invalidar la caché")
		}
	}
	return nil
}

func checkCommission(p *float64) error {
	if p == nil {
		return nil
	}
	if math.IsNaN(*p) || math.IsInf(*p, 0) || *p < 0 || *p > 100 {
		return fmt.Errorf("%w: commission_percent debe estar en [0,100]", domain.ErrInvalidInput)
	}
	return nil
}
