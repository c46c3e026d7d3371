package earnings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// Report resultado de ComputeReport.
type Report struct {
	CommissionPercent decimal.Decimal
	Records           []Record
	Summary           Summary
	Rejected          []Rejection
}

// BuildRecords calcula el desglose de cada orden normalizada con la misma comisión.
func BuildRecords(orders []NormalizedOrder, commissionPercent decimal.Decimal) []Record {
	records := make([]Record, 0, len(orders))
	for _, o := range orders {
		records = append(records, Record{
			Order:     o,
			Breakdown: Calculate(o.SubTotal, commissionPercent),
		})
	}
	return records
}

// ComputeReport es el punto de entrada del motor: normaliza, calcula, filtra y agrega.
// Se recalcula completo en cada llamada; no hay estado entre invocaciones.
func ComputeReport(orders []entity.RawOrder, commissionPercent decimal.Decimal, f Filter, loc *time.Location) Report {
	norm := Normalize(orders, loc)
	filtered := Apply(BuildRecords(norm.Orders, commissionPercent), f, loc)
	return Report{
		CommissionPercent: commissionPercent,
		Records:           filtered,
		Summary:           Aggregate(filtered),
		Rejected:          norm.Rejected,
	}
}
