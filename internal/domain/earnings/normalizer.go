package earnings

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// NotAvailable centinela para campos de display ausentes.
const NotAvailable = "N/A"

// DateLayout formato de la fecha de orden en el reporte.
const DateLayout = "02-01-2006"

// NormalizedOrder orden lista para cálculo y display. Los campos de texto nunca
// quedan vacíos: lo que falta en el backend se reemplaza por NotAvailable.
type NormalizedOrder struct {
	ID             string
	CreatedAt      time.Time
	OrderDate      string
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	RestaurantName string
	Products       string
	SubTotal       decimal.Decimal
	DeliveryCharge decimal.Decimal
	CouponDiscount decimal.Decimal
	OrderStatus    string
	PaymentMethod  string
	PaymentStatus  string
}

// Rejection orden descartada por datos numéricos inválidos.
type Rejection struct {
	OrderID string
	Err     error
}

// NormalizeResult órdenes normalizadas en el orden de entrada más las rechazadas.
type NormalizeResult struct {
	Orders   []NormalizedOrder
	Rejected []Rejection
}

// Normalize conserva solo las órdenes entregadas (case-insensitive) y las normaliza.
// Una orden con montos no finitos se rechaza sin abortar el lote.
func Normalize(orders []entity.RawOrder, loc *time.Location) NormalizeResult {
	return normalize(orders, loc, func(o entity.RawOrder) bool { return o.IsDelivered() })
}

// NormalizeGroup normaliza las órdenes del grupo de estado indicado (listados del panel).
func NormalizeGroup(orders []entity.RawOrder, group StatusGroup, loc *time.Location) NormalizeResult {
	return normalize(orders, loc, func(o entity.RawOrder) bool { return group.Matches(o.OrderStatus) })
}

func normalize(orders []entity.RawOrder, loc *time.Location, keep func(entity.RawOrder) bool) NormalizeResult {
	if loc == nil {
		loc = time.UTC
	}
	res := NormalizeResult{Orders: make([]NormalizedOrder, 0, len(orders))}
	for _, o := range orders {
		if o.DecodeErr != nil {
			// Sin estado legible no se sabe si era elegible: se reporta como rechazada.
			if o.OrderStatus != "" && !keep(o) {
				continue
			}
			res.Rejected = append(res.Rejected, Rejection{OrderID: o.ID, Err: o.DecodeErr})
			continue
		}
		if !keep(o) {
			continue
		}
		n, err := normalizeOne(o, loc)
		if err != nil {
			res.Rejected = append(res.Rejected, Rejection{OrderID: o.ID, Err: err})
			continue
		}
		res.Orders = append(res.Orders, n)
	}
	return res
}

func normalizeOne(o entity.RawOrder, loc *time.Location) (NormalizedOrder, error) {
	subTotal, err := DecimalFromFloat(o.SubTotal)
	if err != nil {
		return NormalizedOrder{}, fmt.Errorf("orden %s subTotal: %w", o.ID, err)
	}
	delivery, err := DecimalFromFloat(o.DeliveryChargeOrZero())
	if err != nil {
		return NormalizedOrder{}, fmt.Errorf("orden %s deliveryCharge: %w", o.ID, err)
	}
	coupon, err := DecimalFromFloat(o.CouponDiscountOrZero())
	if err != nil {
		return NormalizedOrder{}, fmt.Errorf("orden %s couponDiscount: %w", o.ID, err)
	}

	n := NormalizedOrder{
		ID:             orNA(o.ID),
		CreatedAt:      o.CreatedAt,
		OrderDate:      NotAvailable,
		CustomerName:   NotAvailable,
		CustomerPhone:  NotAvailable,
		CustomerEmail:  NotAvailable,
		RestaurantName: NotAvailable,
		Products:       describeItems(o.Items),
		SubTotal:       subTotal,
		DeliveryCharge: delivery,
		CouponDiscount: coupon,
		OrderStatus:    orNA(o.OrderStatus),
		PaymentMethod:  orNA(o.PaymentMethod),
		PaymentStatus:  orNA(o.PaymentStatus),
	}
	if !o.CreatedAt.IsZero() {
		n.OrderDate = o.CreatedAt.In(loc).Format(DateLayout)
	}
	if c := o.Customer; c != nil {
		n.CustomerName = orNA(c.Name)
		n.CustomerPhone = orNA(c.Phone)
		n.CustomerEmail = orNA(c.Email)
	}
	if r := o.Restaurant; r != nil {
		n.RestaurantName = orNA(r.Name)
	}
	return n, nil
}

// describeItems concatena las líneas: "2 x Paneer Tikka, 1 x Naan".
func describeItems(items []entity.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			continue
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		parts = append(parts, strconv.Itoa(qty)+" x "+name)
	}
	if len(parts) == 0 {
		return NotAvailable
	}
	return strings.Join(parts, ", ")
}

func orNA(s string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return NotAvailable
}
