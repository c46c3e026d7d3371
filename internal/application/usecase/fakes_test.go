package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

type memOrders struct {
	orders []entity.RawOrder
	err    error
}

func (m *memOrders) ListByVendor(_ context.Context, vendorID string) ([]entity.RawOrder, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []entity.RawOrder
	for _, o := range m.orders {
		if o.VendorID == vendorID {
			out = append(out, o)
		}
	}
	return out, nil
}

type memVendors struct {
	vendors map[string]*entity.Vendor
}

func (m *memVendors) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	v, ok := m.vendors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

type memPlans struct {
	subs map[string]*entity.Subscription
	err  error
}

func (m *memPlans) GetActiveSubscription(_ context.Context, vendorID string) (*entity.Subscription, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.subs[vendorID], nil
}

type memProducts struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	order    []string
}

func newMemProducts() *memProducts {
	return &memProducts{products: map[string]*entity.Product{}}
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.products[p.ID] = &cp
	m.order = append(m.order, p.ID)
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memProducts) ListByVendor(_ context.Context, vendorID string, limit, offset int) ([]*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*entity.Product
	for _, id := range m.order {
		if p, ok := m.products[id]; ok && p.VendorID == vendorID {
			cp := *p
			all = append(all, &cp)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}
