package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product plato o producto del menú de un vendedor.
type Product struct {
	ID          string
	VendorID    string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	IsAvailable bool
	IsVeg       bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
