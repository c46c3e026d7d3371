package earnings

import "github.com/shopspring/decimal"

// Record orden normalizada junto con su desglose financiero.
type Record struct {
	Order NormalizedOrder
	Breakdown
}

// Summary totales del conjunto filtrado. No tiene identidad propia: se recalcula
// completo cada vez que cambia el subconjunto.
type Summary struct {
	TotalOrders              int
	TotalSubtotal            decimal.Decimal
	TotalCommission          decimal.Decimal
	TotalVendorEarning       decimal.Decimal
	TotalGST                 decimal.Decimal
	TotalTDS                 decimal.Decimal
	NetPayable               decimal.Decimal
	AverageCommissionPercent decimal.Decimal
}

// Aggregate suma los registros en una sola pasada.
// AverageCommissionPercent es cociente de sumas (comisión total / subtotal total × 100),
// no promedio de porcentajes: con pedidos de tamaños distintos darían números diferentes.
func Aggregate(records []Record) Summary {
	s := Summary{
		TotalSubtotal:            decimal.Zero,
		TotalCommission:          decimal.Zero,
		TotalVendorEarning:       decimal.Zero,
		TotalGST:                 decimal.Zero,
		TotalTDS:                 decimal.Zero,
		NetPayable:               decimal.Zero,
		AverageCommissionPercent: decimal.Zero,
	}
	for _, r := range records {
		s.TotalOrders++
		s.TotalSubtotal = s.TotalSubtotal.Add(r.SubTotal)
		s.TotalCommission = s.TotalCommission.Add(r.CommissionAmount)
		s.TotalVendorEarning = s.TotalVendorEarning.Add(r.VendorGrossEarning)
		s.TotalGST = s.TotalGST.Add(r.GSTOnCommission)
		s.TotalTDS = s.TotalTDS.Add(r.TDSOnVendorEarning)
		s.NetPayable = s.NetPayable.Add(r.NetPayable)
	}

	s.TotalSubtotal = round2(s.TotalSubtotal)
	s.TotalCommission = round2(s.TotalCommission)
	s.TotalVendorEarning = round2(s.TotalVendorEarning)
	s.TotalGST = round2(s.TotalGST)
	s.TotalTDS = round2(s.TotalTDS)
	s.NetPayable = round2(s.NetPayable)

	if !s.TotalSubtotal.IsZero() {
		s.AverageCommissionPercent = round2(s.TotalCommission.Div(s.TotalSubtotal).Mul(hundred))
	}
	return s
}
