package earnings

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
)

// ReportDocument datos que recibe el generador del PDF: las páginas ya vienen cortadas
// y el resumen solo está en la última.
type ReportDocument struct {
	VendorID          string
	VendorName        string
	StartDate         string // YYYY-MM-DD o vacío
	EndDate           string
	Search            string
	CommissionPercent decimal.Decimal
	GeneratedAt       time.Time
	Pages             []earnings.Page
}

// ReportPDFGenerator puerto del generador del PDF de ganancias.
type ReportPDFGenerator interface {
	GenerateEarningsPDF(ctx context.Context, doc ReportDocument) ([]byte, error)
}

// SheetWriter puerto del exportador tabular (hoja de cálculo).
type SheetWriter interface {
	WriteTable(w io.Writer, t earnings.Table) error
}
