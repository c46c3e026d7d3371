package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
)

func TestRawOrderList_MontosComoNumeroOString(t *testing.T) {
	var list dto.RawOrderList
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"a","subTotal":1000.25,"deliveryCharge":null,"orderStatus":"delivered"},
		{"id":"b","subTotal":"499.99","couponDiscount":"50","orderStatus":"delivered",
		 "items":[{"name":"Naan","quantity":2,"price":"40"}]}
	]`), &list))

	orders := dto.RawOrdersToEntities(list)
	require.Len(t, orders, 2)
	assert.Equal(t, 1000.25, orders[0].SubTotal)
	assert.Nil(t, orders[0].DeliveryCharge)
	assert.Equal(t, 499.99, orders[1].SubTotal)
	assert.Equal(t, 50.0, orders[1].CouponDiscountOrZero())
	assert.Equal(t, 40.0, orders[1].Items[0].Price)
	assert.NoError(t, orders[1].DecodeErr)
}

func TestRawOrderList_RegistroMalformadoQuedaMarcado(t *testing.T) {
	var list dto.RawOrderList
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"ok","subTotal":10,"orderStatus":"delivered"},
		{"subTotal":"abc","id":"bad","orderStatus":"delivered"},
		{"id":"qty","subTotal":10,"orderStatus":"Delivered","items":[{"name":"x","quantity":"dos"}]}
	]`), &list))

	orders := dto.RawOrdersToEntities(list)
	require.Len(t, orders, 3)
	assert.NoError(t, orders[0].DecodeErr)

	assert.ErrorIs(t, orders[1].DecodeErr, domain.ErrInvalidInput)
	assert.Equal(t, "bad", orders[1].ID, "id y estado se recuperan aunque vengan después del campo inválido")
	assert.Equal(t, "delivered", orders[1].OrderStatus)
	assert.Zero(t, orders[1].SubTotal)

	assert.ErrorIs(t, orders[2].DecodeErr, domain.ErrInvalidInput)
	assert.Equal(t, "qty", orders[2].ID)
}

func TestRawOrderList_NoArreglo(t *testing.T) {
	var list dto.RawOrderList
	assert.Error(t, json.Unmarshal([]byte(`{"id":"a"}`), &list))

	require.NoError(t, json.Unmarshal([]byte(`null`), &list))
	assert.Nil(t, list)
}
