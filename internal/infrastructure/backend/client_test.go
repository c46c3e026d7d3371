package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/infrastructure/backend"
)

const ordersJSON = `{
  "success": true,
  "data": [
    {
      "id": "ORD-1",
      "vendorId": "v-1",
      "createdAt": "2026-03-10T09:30:00Z",
      "subTotal": 1000,
      "deliveryCharge": 40,
      "orderStatus": "delivered",
      "customer": {"name": "Ravi Kumar", "phone": "9876543210"},
      "restaurant": {"name": "Spice Hub"},
      "items": [{"name": "Paneer Tikka", "quantity": 2, "price": 250}]
    },
    {
      "id": "ORD-2",
      "vendorId": "v-1",
      "createdAt": "2026-03-11T09:30:00Z",
      "subTotal": 500,
      "orderStatus": "cancelled"
    }
  ]
}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/vendors/v-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"v-1","name":"Spice Hub","commission":15}}`))
	})
	mux.HandleFunc("/vendors/v-2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"v-2","name":"Sin comisión","commission":null}}`))
	})
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("vendorId") != "v-1" {
			_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
			return
		}
		_, _ = w.Write([]byte(ordersJSON))
	})
	mux.HandleFunc("/mixed/orders", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":"ok-1","subTotal":1000,"orderStatus":"delivered","createdAt":"2026-03-10T09:30:00Z"},
			{"id":"bad","subTotal":"abc","orderStatus":"delivered","createdAt":"2026-03-10T10:30:00Z"},
			{"id":"ok-2","subTotal":"500.50","deliveryCharge":"30","orderStatus":"delivered","createdAt":"2026-03-11T09:30:00Z"}
		]}`))
	})
	mux.HandleFunc("/broken/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetByID(t *testing.T) {
	srv := newServer(t)
	c := backend.NewClient(srv.URL+"/", "tok", time.Second)

	v, err := c.GetByID(context.Background(), "v-1")
	require.NoError(t, err)
	assert.Equal(t, "Spice Hub", v.Name)
	require.NotNil(t, v.Commission)
	assert.Equal(t, 15.0, *v.Commission)

	v, err = c.GetByID(context.Background(), "v-2")
	require.NoError(t, err)
	assert.Nil(t, v.Commission)
}

func TestClient_GetByID_NoExiste(t *testing.T) {
	srv := newServer(t)
	_, err := backend.NewClient(srv.URL, "tok", time.Second).GetByID(context.Background(), "v-9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_TokenInvalido(t *testing.T) {
	srv := newServer(t)
	_, err := backend.NewClient(srv.URL, "otro", time.Second).GetByID(context.Background(), "v-1")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_ListByVendor(t *testing.T) {
	srv := newServer(t)
	c := backend.NewClient(srv.URL, "tok", time.Second)

	orders, err := c.ListByVendor(context.Background(), "v-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1", orders[0].ID)
	assert.Equal(t, 40.0, orders[0].DeliveryChargeOrZero())
	assert.Nil(t, orders[1].Customer)

	res := earnings.Normalize(orders, time.UTC)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "2 x Paneer Tikka", res.Orders[0].Products)
	assert.Equal(t, "10-03-2026", res.Orders[0].OrderDate)
}

func TestClient_ErrorDelBackend(t *testing.T) {
	srv := newServer(t)
	c := backend.NewClient(srv.URL+"/broken", "tok", time.Second)
	_, err := c.ListByVendor(context.Background(), "v-1")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_SinServidor(t *testing.T) {
	c := backend.NewClient("http://127.0.0.1:1", "", 200*time.Millisecond)
	_, err := c.ListByVendor(context.Background(), "v-1")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_ListByVendor_RegistroMalformadoSeRechazaSolo(t *testing.T) {
	srv := newServer(t)
	c := backend.NewClient(srv.URL+"/mixed", "tok", time.Second)

	orders, err := c.ListByVendor(context.Background(), "v-1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.NoError(t, orders[0].DecodeErr)
	assert.ErrorIs(t, orders[1].DecodeErr, domain.ErrInvalidInput)
	assert.Equal(t, "bad", orders[1].ID)
	assert.Equal(t, 500.5, orders[2].SubTotal, "los números como string se aceptan")
	assert.Equal(t, 30.0, orders[2].DeliveryChargeOrZero())

	res := earnings.Normalize(orders, time.UTC)
	require.Len(t, res.Orders, 2)
	assert.Equal(t, "ok-1", res.Orders[0].ID)
	assert.Equal(t, "ok-2", res.Orders[1].ID)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, "bad", res.Rejected[0].OrderID)
	assert.ErrorIs(t, res.Rejected[0].Err, domain.ErrInvalidInput)
}
