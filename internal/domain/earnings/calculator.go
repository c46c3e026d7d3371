// Package earnings implementa el desglose financiero de las órdenes entregadas de un
// vendedor: comisión de plataforma, GST sobre la comisión, TDS sobre la ganancia bruta
// y neto a pagar, más la agregación, el filtrado y la forma tabular/paginada del reporte.
//
// Todo el paquete es puro: las funciones reciben la comisión y la zona horaria como
// argumentos y no hacen I/O.
package earnings

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/domain"
)

var (
	// GSTRate % de GST aplicado sobre la comisión de la plataforma.
	GSTRate = decimal.NewFromInt(18)
	// TDSRate % de TDS retenido sobre la ganancia bruta del vendedor.
	TDSRate = decimal.RequireFromString("0.5")
	// DefaultCommissionPercent comisión usada cuando el perfil del vendedor no la trae.
	DefaultCommissionPercent = decimal.NewFromInt(20)

	hundred = decimal.NewFromInt(100)
)

// Breakdown desglose financiero de una orden. Todos los montos quedan redondeados a
// 2 decimales al construirse; el valor es inmutable una vez creado.
type Breakdown struct {
	SubTotal           decimal.Decimal
	CommissionPercent  decimal.Decimal
	CommissionAmount   decimal.Decimal
	GSTOnCommission    decimal.Decimal
	VendorGrossEarning decimal.Decimal
	TDSOnVendorEarning decimal.Decimal
	NetPayable         decimal.Decimal
}

// Calculate aplica el desglose en orden fijo. El subtotal se redondea una sola vez al
// entrar y todos los pasos parten de ese valor; cada intermedio se redondea por separado
// y el neto se deriva de los intermedios ya redondeados: cambiar el orden cambia los
// totales históricos.
//
//	subtotal = r2(subtotal)
//	comisión = r2(subtotal × %comisión / 100)
//	gst      = r2(comisión × 18 / 100)
//	bruto    = r2(subtotal − comisión)
//	tds      = r2(bruto × 0.5 / 100)
//	neto     = r2(subtotal − comisión − gst − tds)
//
// No valida rangos: subtotales negativos o comisiones fuera de [0,100] producen
// resultados sin sentido de negocio; la validación queda en quien llama.
func Calculate(subTotal, commissionPercent decimal.Decimal) Breakdown {
	subTotal = round2(subTotal)
	commission := round2(subTotal.Mul(commissionPercent).Div(hundred))
	gst := round2(commission.Mul(GSTRate).Div(hundred))
	gross := round2(subTotal.Sub(commission))
	tds := round2(gross.Mul(TDSRate).Div(hundred))
	net := round2(subTotal.Sub(commission).Sub(gst).Sub(tds))

	return Breakdown{
		SubTotal:           subTotal,
		CommissionPercent:  commissionPercent,
		CommissionAmount:   commission,
		GSTOnCommission:    gst,
		VendorGrossEarning: gross,
		TDSOnVendorEarning: tds,
		NetPayable:         net,
	}
}

// CalculateFloat es Calculate para montos que llegan como float64 del backend.
// Devuelve domain.ErrInvalidInput si alguno no es finito (NaN/±Inf).
func CalculateFloat(subTotal, commissionPercent float64) (Breakdown, error) {
	st, err := DecimalFromFloat(subTotal)
	if err != nil {
		return Breakdown{}, fmt.Errorf("subtotal: %w", err)
	}
	pct, err := DecimalFromFloat(commissionPercent)
	if err != nil {
		return Breakdown{}, fmt.Errorf("comisión: %w", err)
	}
	return Calculate(st, pct), nil
}

// DecimalFromFloat convierte un float64 finito a decimal (representación decimal más corta).
func DecimalFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: valor no finito %v", domain.ErrInvalidInput, f)
	}
	return decimal.NewFromFloat(f), nil
}

// round2 redondea a 2 decimales, mitad alejándose de cero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
