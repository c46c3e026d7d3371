package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	appearnings "github.com/jhoicas/vendor-earnings-api/internal/application/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

// OrderUseCase listados de órdenes del panel por grupo de estado.
type OrderUseCase struct {
	repo repository.OrderRepository
	loc  *time.Location
}

// NewOrderUseCase construye el caso de uso; loc es la zona en que se muestran las fechas.
func NewOrderUseCase(repo repository.OrderRepository, loc *time.Location) *OrderUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &OrderUseCase{repo: repo, loc: loc}
}

// List devuelve las órdenes del grupo (pending|completed|all), más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, vendorID string, in dto.OrderListRequest) (*dto.OrderListResponse, error) {
	group, err := earnings.ParseStatusGroup(in.Status)
	if err != nil {
		return nil, err
	}
	raw, err := uc.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}
	res := earnings.NormalizeGroup(raw, group, uc.loc)
	sort.SliceStable(res.Orders, func(i, j int) bool {
		return res.Orders[i].CreatedAt.After(res.Orders[j].CreatedAt)
	})

	items := make([]dto.OrderResponse, 0, len(res.Orders))
	for _, o := range res.Orders {
		items = append(items, dto.OrderResponse{
			ID:             o.ID,
			OrderDate:      o.OrderDate,
			CreatedAt:      o.CreatedAt,
			CustomerName:   o.CustomerName,
			CustomerPhone:  o.CustomerPhone,
			RestaurantName: o.RestaurantName,
			Products:       o.Products,
			SubTotal:       o.SubTotal,
			DeliveryCharge: o.DeliveryCharge,
			CouponDiscount: o.CouponDiscount,
			Status:         o.OrderStatus,
			PaymentMethod:  o.PaymentMethod,
			PaymentStatus:  o.PaymentStatus,
		})
	}
	return &dto.OrderListResponse{
		Status:   string(group),
		Total:    len(items),
		Orders:   items,
		Rejected: appearnings.ToRejectedDTOs(res.Rejected),
	}, nil
}
