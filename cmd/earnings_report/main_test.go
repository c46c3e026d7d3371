package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersJSON = `[
  {"id": "ORD-1", "createdAt": "2026-03-10T06:30:00Z", "subTotal": 1000, "orderStatus": "delivered",
   "customer": {"name": "Anita Sharma", "phone": "9123456780"}, "restaurant": {"name": "Spice Hub"},
   "items": [{"name": "Paneer Tikka", "quantity": 2, "price": 250}]},
  {"id": "ORD-2", "createdAt": "2026-03-11T06:30:00Z", "subTotal": 500, "orderStatus": "DELIVERED",
   "customer": {"name": "Ravi Kumar"}, "restaurant": {"name": "Spice Hub"}},
  {"id": "ORD-3", "createdAt": "2026-03-12T06:30:00Z", "subTotal": 900, "orderStatus": "preparing"}
]`

func writeOrders(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_ResumenConComisionDefinida(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--orders", writeOrders(t, ordersJSON), "--commission", "20"}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Comisión aplicada:   20.00%\n")
	assert.Contains(t, text, "Órdenes entregadas:  2\n")
	assert.Contains(t, text, "Neto a pagar:        ₹1,140.00\n")
}

func TestRun_SinComisionUsaPorDefecto(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--orders", writeOrders(t, ordersJSON)}, &out))
	assert.Contains(t, out.String(), "20.00% (por defecto)")
}

func TestRun_BusquedaYExportaciones(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out.csv")
	pdfPath := filepath.Join(dir, "out.pdf")

	var out bytes.Buffer
	err := run([]string{
		"--orders", writeOrders(t, ordersJSON),
		"--search", "sharma",
		"--csv", csvPath,
		"--pdf", pdfPath,
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Órdenes entregadas:  1\n")

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(csvData), "ORD-1"))
	assert.False(t, strings.Contains(string(csvData), "ORD-2"))

	pdfData, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfData, []byte("%PDF")))
}

func TestRun_FechaInvalida(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--orders", writeOrders(t, ordersJSON), "--from", "10/03/2026"}, &out)
	assert.Error(t, err)
}

func TestDecodeOrders_AceptaEnvelope(t *testing.T) {
	list, err := decodeOrders(strings.NewReader(`{"success": true, "data": ` + ordersJSON + `}`))
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = decodeOrders(strings.NewReader("   "))
	assert.Error(t, err)
}

func TestFileSource_FiltraPorVendedor(t *testing.T) {
	list, err := decodeOrders(strings.NewReader(`[{"id": "a", "vendorId": "v-1"}, {"id": "b", "vendorId": "v-2"}, {"id": "c"}]`))
	require.NoError(t, err)

	src := &fileSource{}
	for _, o := range list {
		src.orders = append(src.orders, o.ToEntity())
	}
	got, err := src.ListByVendor(context.Background(), "v-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestRun_ComisionFueraDeRango(t *testing.T) {
	path := writeOrders(t, ordersJSON)
	for _, v := range []string{"140", "-5", "NaN"} {
		var out bytes.Buffer
		err := run([]string{"--orders", path, "--commission", v}, &out)
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "fuera de rango")
		assert.Empty(t, out.String(), "no se imprime un reporte con la comisión por defecto")
	}
}

func TestRun_RegistroMalformadoNoAbortaElLote(t *testing.T) {
	input := `[
  {"id": "ORD-1", "createdAt": "2026-03-10T06:30:00Z", "subTotal": 1000, "orderStatus": "delivered"},
  {"id": "BAD", "createdAt": "2026-03-10T07:30:00Z", "subTotal": "abc", "orderStatus": "delivered"},
  {"id": "ORD-2", "createdAt": "2026-03-11T06:30:00Z", "subTotal": "500", "orderStatus": "delivered"}
]`
	var out bytes.Buffer
	require.NoError(t, run([]string{"--orders", writeOrders(t, input), "--commission", "20"}, &out))

	text := out.String()
	assert.Contains(t, text, "Órdenes entregadas:  2\n")
	assert.Contains(t, text, "Neto a pagar:        ₹1,140.00\n")
	assert.Contains(t, text, "Órdenes descartadas: 1\n")
	assert.Contains(t, text, "  - BAD: ")
}
