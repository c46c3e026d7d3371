package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// Amount monto del backend. Acepta número JSON o número en string ("1000.50").
type Amount float64

// UnmarshalJSON delega el parseo en decimal, que admite ambas formas.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = Amount(d.InexactFloat64())
	return nil
}

func (a *Amount) float() *float64 {
	if a == nil {
		return nil
	}
	f := float64(*a)
	return &f
}

// RawOrderDTO orden tal como la serializa el backend de la plataforma (camelCase).
// Se usa en el cliente remoto, en POST /api/earnings/preview y en el CLI.
type RawOrderDTO struct {
	ID             string         `json:"id"`
	VendorID       string         `json:"vendorId"`
	CreatedAt      time.Time      `json:"createdAt"`
	SubTotal       Amount         `json:"subTotal"`
	DeliveryCharge *Amount        `json:"deliveryCharge,omitempty"`
	CouponDiscount *Amount        `json:"couponDiscount,omitempty"`
	OrderStatus    string         `json:"orderStatus"`
	Customer       *PartyDTO      `json:"customer,omitempty"`
	Restaurant     *PartyDTO      `json:"restaurant,omitempty"`
	Items          []OrderItemDTO `json:"items,omitempty"`
	PaymentMethod  string         `json:"paymentMethod,omitempty"`
	PaymentStatus  string         `json:"paymentStatus,omitempty"`

	decodeErr error
}

// PartyDTO cliente o restaurante embebido en la orden.
type PartyDTO struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// OrderItemDTO línea de la orden.
type OrderItemDTO struct {
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     Amount `json:"price"`
}

// ToEntity convierte al modelo de dominio.
func (o RawOrderDTO) ToEntity() entity.RawOrder {
	out := entity.RawOrder{
		ID:             o.ID,
		VendorID:       o.VendorID,
		CreatedAt:      o.CreatedAt,
		SubTotal:       float64(o.SubTotal),
		DeliveryCharge: o.DeliveryCharge.float(),
		CouponDiscount: o.CouponDiscount.float(),
		OrderStatus:    o.OrderStatus,
		Customer:       o.Customer.toEntity(),
		Restaurant:     o.Restaurant.toEntity(),
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  o.PaymentStatus,
		DecodeErr:      o.decodeErr,
	}
	if len(o.Items) > 0 {
		out.Items = make([]entity.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			out.Items = append(out.Items, entity.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				Price:     float64(it.Price),
			})
		}
	}
	return out
}

func (p *PartyDTO) toEntity() *entity.PartyRef {
	if p == nil {
		return nil
	}
	return &entity.PartyRef{ID: p.ID, Name: p.Name, Phone: p.Phone, Email: p.Email}
}

// RawOrderList lote de órdenes decodificado registro por registro: un registro
// malformado queda marcado con su error y no invalida a los demás.
type RawOrderList []RawOrderDTO

// UnmarshalJSON solo falla si el lote no es un arreglo JSON.
func (l *RawOrderList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	out := make(RawOrderList, 0, len(items))
	for i, item := range items {
		var o RawOrderDTO
		if err := json.Unmarshal(item, &o); err != nil {
			o = salvageOrder(item)
			o.decodeErr = fmt.Errorf("%w: registro %d: %v", domain.ErrInvalidInput, i, err)
		}
		out = append(out, o)
	}
	*l = out
	return nil
}

// salvageOrder recupera id y estado de un registro malformado para poder reportarlo.
func salvageOrder(item json.RawMessage) RawOrderDTO {
	var head struct {
		ID          json.RawMessage `json:"id"`
		OrderStatus json.RawMessage `json:"orderStatus"`
	}
	var o RawOrderDTO
	if json.Unmarshal(item, &head) != nil {
		return o
	}
	_ = json.Unmarshal(head.ID, &o.ID)
	_ = json.Unmarshal(head.OrderStatus, &o.OrderStatus)
	return o
}

// RawOrdersToEntities convierte un lote completo.
func RawOrdersToEntities(in []RawOrderDTO) []entity.RawOrder {
	out := make([]entity.RawOrder, 0, len(in))
	for _, o := range in {
		out = append(out, o.ToEntity())
	}
	return out
}

// OrderListRequest query de GET /api/orders.
type OrderListRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending completed all PENDING COMPLETED ALL"`
}

// OrderResponse fila del listado de órdenes del panel.
type OrderResponse struct {
	ID             string          `json:"id"`
	OrderDate      string          `json:"order_date"`
	CreatedAt      time.Time       `json:"created_at"`
	CustomerName   string          `json:"customer_name"`
	CustomerPhone  string          `json:"customer_phone"`
	RestaurantName string          `json:"restaurant_name"`
	Products       string          `json:"products"`
	SubTotal       decimal.Decimal `json:"sub_total"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	CouponDiscount decimal.Decimal `json:"coupon_discount"`
	Status         string          `json:"status"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentStatus  string          `json:"payment_status"`
}

// OrderListResponse listado por grupo de estado.
type OrderListResponse struct {
	Status   string          `json:"status"`
	Total    int             `json:"total"`
	Orders   []OrderResponse `json:"orders"`
	Rejected []RejectedDTO   `json:"rejected,omitempty"`
}
