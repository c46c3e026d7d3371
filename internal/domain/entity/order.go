package entity

import (
	"strings"
	"time"
)

// Estados de orden conocidos. El backend maneja una enumeración abierta: cualquier
// otro valor se conserva tal cual y solo cuenta para el listado "all".
const (
	OrderStatusPlaced         = "placed"
	OrderStatusAccepted       = "accepted"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
	OrderStatusRejected       = "rejected"
)

// PartyRef referencia desnormalizada a cliente o restaurante (solo display/búsqueda).
type PartyRef struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// OrderItem línea de la orden tal como la devuelve el backend.
type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     float64
}

// RawOrder orden cruda del backend (solo lectura en este servicio).
// Los montos llegan como float64 porque así los expone el backend; se convierten a
// decimal en el normalizador, que es quien valida que sean finitos.
type RawOrder struct {
	ID             string
	VendorID       string
	CreatedAt      time.Time
	SubTotal       float64
	DeliveryCharge *float64 // nil = 0
	CouponDiscount *float64 // nil = 0
	OrderStatus    string
	Customer       *PartyRef // nil si el backend no lo pobló
	Restaurant     *PartyRef
	Items          []OrderItem
	PaymentMethod  string
	PaymentStatus  string

	// DecodeErr no nil si el registro llegó malformado; el normalizador lo rechaza
	// sin afectar al resto del lote.
	DecodeErr error
}

// DeliveryChargeOrZero aplica el default documentado (0) cuando el campo no viene.
func (o RawOrder) DeliveryChargeOrZero() float64 {
	if o.DeliveryCharge == nil {
		return 0
	}
	return *o.DeliveryCharge
}

// CouponDiscountOrZero aplica el default documentado (0) cuando el campo no viene.
func (o RawOrder) CouponDiscountOrZero() float64 {
	if o.CouponDiscount == nil {
		return 0
	}
	return *o.CouponDiscount
}

// IsDelivered informa si la orden es elegible para el reporte financiero.
func (o RawOrder) IsDelivered() bool {
	return strings.EqualFold(strings.TrimSpace(o.OrderStatus), OrderStatusDelivered)
}
