package http_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-earnings-api/internal/application/usecase"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	apphttp "github.com/jhoicas/vendor-earnings-api/internal/interfaces/http"
)

type memVendorWriter struct {
	vendors map[string]*entity.Vendor
}

func (m *memVendorWriter) Create(_ context.Context, v *entity.Vendor) error {
	cp := *v
	m.vendors[v.ID] = &cp
	return nil
}

func (m *memVendorWriter) UpdateCommission(_ context.Context, id string, commission *float64) error {
	v, ok := m.vendors[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Commission = commission
	return nil
}

func buildVendorAdminApp(w *memVendorWriter) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		EarningsUC: &fakeEarnings{},
		Plans:      &fakePlans{active: true},
		VendorAdm:  usecase.NewVendorAdminUseCase(w, nil, nil),
		JWTSecret:  testJWTSecret,
	})
	return app
}

func TestVendorAdmin_SoloAdminDaDeAlta(t *testing.T) {
	w := &memVendorWriter{vendors: map[string]*entity.Vendor{}}
	app := buildVendorAdminApp(w)

	resp := send(t, app, http.MethodPost, "/api/vendors", "vendor", strings.NewReader(`{"name":"Spice Hub"}`))
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, w.vendors)

	resp = send(t, app, http.MethodPost, "/api/vendors", "admin", strings.NewReader(`{"name":"Spice Hub","commission_percent":15}`))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, w.vendors, 1)
}

func TestVendorAdmin_ValidaCuerpo(t *testing.T) {
	app := buildVendorAdminApp(&memVendorWriter{vendors: map[string]*entity.Vendor{}})

	resp := send(t, app, http.MethodPost, "/api/vendors", "admin", strings.NewReader(`{"name":""}`))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodPut, "/api/vendors/v-1/commission", "admin", strings.NewReader(`{"commission_percent":150}`))
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVendorAdmin_CambioDeComision(t *testing.T) {
	w := &memVendorWriter{vendors: map[string]*entity.Vendor{"v-1": {ID: "v-1"}}}
	app := buildVendorAdminApp(w)

	resp := send(t, app, http.MethodPut, "/api/vendors/v-1/commission", "admin", strings.NewReader(`{"commission_percent":12.5}`))
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NotNil(t, w.vendors["v-1"].Commission)
	assert.Equal(t, 12.5, *w.vendors["v-1"].Commission)

	resp = send(t, app, http.MethodPut, "/api/vendors/otro/commission", "admin", strings.NewReader(`{"commission_percent":10}`))
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVendorAdmin_SinEscrituraNoHayRutas(t *testing.T) {
	app := buildRouterApp(&fakeEarnings{}, &fakePlans{active: true})

	resp := send(t, app, http.MethodPost, "/api/vendors", "admin", strings.NewReader(`{"name":"x"}`))
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
