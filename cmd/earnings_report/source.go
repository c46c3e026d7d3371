package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
)

// fileSource sirve órdenes y perfil leídos de un archivo exportado del backend, para
// correr el mismo caso de uso que la API sin base de datos.
type fileSource struct {
	vendor *entity.Vendor
	orders []entity.RawOrder
}

var (
	_ repository.OrderRepository  = (*fileSource)(nil)
	_ repository.VendorRepository = (*fileSource)(nil)
)

func (s *fileSource) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	if s.vendor == nil || s.vendor.ID != id {
		return nil, domain.ErrNotFound
	}
	v := *s.vendor
	return &v, nil
}

// ListByVendor devuelve las órdenes del vendedor; las que no traen vendorId se asumen suyas.
func (s *fileSource) ListByVendor(_ context.Context, vendorID string) ([]entity.RawOrder, error) {
	out := make([]entity.RawOrder, 0, len(s.orders))
	for _, o := range s.orders {
		if o.VendorID == "" || o.VendorID == vendorID {
			out = append(out, o)
		}
	}
	return out, nil
}

// decodeOrders acepta un arreglo de órdenes o la respuesta del backend {"data": [...]}.
// Los registros malformados no abortan la lectura; el reporte los lista como rechazados.
func decodeOrders(r io.Reader) (dto.RawOrderList, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}
	if raw[0] == '[' {
		var list dto.RawOrderList
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decodificar órdenes: %w", err)
		}
		return list, nil
	}
	var env struct {
		Data dto.RawOrderList `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decodificar órdenes: %w", err)
	}
	return env.Data, nil
}
