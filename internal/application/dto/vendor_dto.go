package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanDTO plan vigente del vendedor.
type PlanDTO struct {
	Name      string     `json:"name"`
	Features  []string   `json:"features"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// VendorProfileResponse perfil con la comisión efectiva que usa el reporte.
type VendorProfileResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Address             string          `json:"address"`
	Status              string          `json:"status"`
	CommissionPercent   decimal.Decimal `json:"commission_percent"`
	CommissionDefaulted bool            `json:"commission_defaulted"`
	Plan                *PlanDTO        `json:"plan,omitempty"`
}

// CreateVendorRequest alta de un vendedor (admin). Sin commission_percent el reporte usa
// la comisión por defecto.
type CreateVendorRequest struct {
	Name              string   `json:"name" validate:"required,min=1,max=200"`
	Email             string   `json:"email" validate:"omitempty,email"`
	Phone             string   `json:"phone" validate:"omitempty,max=30"`
	Address           string   `json:"address" validate:"omitempty,max=500"`
	CommissionPercent *float64 `json:"commission_percent" validate:"omitempty,min=0,max=100"`
}

// SetCommissionRequest cambio de comisión (admin). null = volver a la comisión por defecto.
type SetCommissionRequest struct {
	CommissionPercent *float64 `json:"commission_percent" validate:"omitempty,min=0,max=100"`
}
