package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

// User usuario del panel; pertenece a un Vendor.
type User struct {
	ID           string
	VendorID     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, vendor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
