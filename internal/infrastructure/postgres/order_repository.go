package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo lectura de órdenes sobre PostgreSQL. El restaurante de la orden es el propio
// vendedor; el cliente puede faltar (LEFT JOIN).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// ListByVendor devuelve todas las órdenes del vendedor, más recientes primero, con sus líneas.
// Los montos se leen como float8 para que un NUMERIC 'NaN' llegue al normalizador.
func (r *OrderRepo) ListByVendor(ctx context.Context, vendorID string) ([]entity.RawOrder, error) {
	query := `
		SELECT o.id, o.vendor_id, o.created_at, o.sub_total::float8, o.delivery_charge::float8,
		       o.coupon_discount::float8, o.order_status, o.payment_method, o.payment_status,
		       c.id, c.name, c.phone, c.email,
		       v.id, v.name, v.phone, v.email
		FROM orders o
		JOIN vendors v ON v.id = o.vendor_id
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.vendor_id = $1
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var (
		orders []entity.RawOrder
		ids    []string
		index  = map[string]int{}
	)
	for rows.Next() {
		var (
			o                           entity.RawOrder
			payMethod, payStatus        *string
			custID, custName, custPhone *string
			custEmail                   *string
			rest                        entity.PartyRef
		)
		if err := rows.Scan(
			&o.ID, &o.VendorID, &o.CreatedAt, &o.SubTotal, &o.DeliveryCharge,
			&o.CouponDiscount, &o.OrderStatus, &payMethod, &payStatus,
			&custID, &custName, &custPhone, &custEmail,
			&rest.ID, &rest.Name, &rest.Phone, &rest.Email,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.PaymentMethod = derefString(payMethod)
		o.PaymentStatus = derefString(payStatus)
		if custID != nil {
			o.Customer = &entity.PartyRef{
				ID:    *custID,
				Name:  derefString(custName),
				Phone: derefString(custPhone),
				Email: derefString(custEmail),
			}
		}
		o.Restaurant = &rest

		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(ids) == 0 {
		return orders, nil
	}

	if err := r.attachItems(ctx, ids, index, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) attachItems(ctx context.Context, ids []string, index map[string]int, orders []entity.RawOrder) error {
	rows, err := r.q.Query(ctx, `
		SELECT order_id, product_id, name, quantity, price::float8
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, line_no`, ids)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			orderID   string
			productID *string
			it        entity.OrderItem
		)
		if err := rows.Scan(&orderID, &productID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		it.ProductID = derefString(productID)
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return rows.Err()
}
