package entity

import "time"

// Vendor perfil del restaurante/vendedor.
type Vendor struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Address    string
	Commission *float64 // % de comisión de la plataforma; nil = no configurada
	Status     string   // active, suspended, inactive
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Funcionalidades del plan de suscripción.
const (
	FeatureReports = "reports"
	FeatureMenu    = "menu"
	FeatureOrders  = "orders"
)

// Subscription plan contratado por un vendedor.
type Subscription struct {
	ID        string
	VendorID  string
	PlanName  string
	Features  []string
	IsActive  bool
	ExpiresAt *time.Time // nil = sin vencimiento
	CreatedAt time.Time
}

// Allows informa si el plan está activo en now e incluye la funcionalidad.
func (s *Subscription) Allows(feature string, now time.Time) bool {
	if s == nil || !s.IsActive {
		return false
	}
	if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
		return false
	}
	for _, f := range s.Features {
		if f == feature {
			return true
		}
	}
	return false
}
