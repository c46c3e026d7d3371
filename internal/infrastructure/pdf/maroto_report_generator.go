// Package pdf genera el reporte de ganancias del vendedor en PDF.
//
// Layout de cada página (A4 horizontal):
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│  HEADER: Vendedor + período + búsqueda  │  Página X de Y          │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  TABLA: Order | Fecha | Cliente | ... | Net Payable (20 filas)    │
//	│  ──────────────────────────────────────────────────────────────  │
//	│  RESUMEN (solo última página): totales + comisión promedio        │
//	└──────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appearnings "github.com/jhoicas/vendor-earnings-api/internal/application/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// gridSize columnas de la grilla; columns suma exactamente gridSize.
const gridSize = 26

// maxProductsLen corta la descripción de productos para que la fila no crezca.
const maxProductsLen = 70

type column struct {
	label string
	size  int
	align align.Type
}

var columns = []column{
	{"Order ID", 2, align.Left},
	{"Date", 2, align.Left},
	{"Customer", 2, align.Left},
	{"Phone", 2, align.Left},
	{"Restaurant", 2, align.Left},
	{"Products", 4, align.Left},
	{"Subtotal (INR)", 2, align.Right},
	{"Comm %", 1, align.Right},
	{"Commission", 2, align.Right},
	{"GST 18%", 2, align.Right},
	{"Vendor Gross", 2, align.Right},
	{"TDS", 1, align.Right},
	{"Net Payable", 2, align.Right},
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa earnings.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

var _ appearnings.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateEarningsPDF genera una página de Maroto por cada página del documento y
// devuelve los bytes del PDF.
func (g *MarotoReportGenerator) GenerateEarningsPDF(ctx context.Context, doc appearnings.ReportDocument) ([]byte, error) {
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("pdf: documento sin páginas")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridSize).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Vendor Earnings Report", true).
		WithAuthor(nonEmpty(doc.VendorName, doc.VendorID), true).
		Build()

	m := maroto.New(cfg)

	for _, p := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows := []core.Row{
			headerRow(doc, p),
			line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
			tableHeaderRow(),
		}
		rows = append(rows, tableDetailRows(p.Records)...)
		if p.Summary != nil {
			rows = append(rows,
				line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}),
				summaryRow(*p.Summary),
			)
		}
		rows = append(rows, footerRow(doc))
		m.AddPages(page.New().Add(rows...))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: vendedor, período y búsqueda (izq) y número de página (der).
func headerRow(doc appearnings.ReportDocument, p earnings.Page) core.Row {
	period := fmt.Sprintf("Period: %s to %s", nonEmpty(doc.StartDate, "beginning"), nonEmpty(doc.EndDate, "today"))
	filters := period + "   |   Commission: " + earnings.FormatPercent(doc.CommissionPercent)
	if doc.Search != "" {
		filters += "   |   Search: \"" + doc.Search + "\""
	}

	return row.New(16).Add(
		col.New(18).Add(
			text.New(nonEmpty(doc.VendorName, doc.VendorID), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filters, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(8).Add(
			text.New("VENDOR EARNINGS REPORT", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Page %d of %d", p.Number, p.TotalPages), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla con fondo del color primario.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por registro, con franjas alternas.
func tableDetailRows(records []earnings.Record) []core.Row {
	result := make([]core.Row, 0, len(records))
	for i, r := range records {
		values := []string{
			r.Order.ID,
			r.Order.OrderDate,
			r.Order.CustomerName,
			r.Order.CustomerPhone,
			r.Order.RestaurantName,
			truncate(r.Order.Products, maxProductsLen),
			earnings.FormatAmount(r.SubTotal),
			r.CommissionPercent.StringFixed(2),
			earnings.FormatAmount(r.CommissionAmount),
			earnings.FormatAmount(r.GSTOnCommission),
			earnings.FormatAmount(r.VendorGrossEarning),
			earnings.FormatAmount(r.TDSOnVendorEarning),
			earnings.FormatAmount(r.NetPayable),
		}
		cols := make([]core.Col, 0, len(columns))
		for j, c := range columns {
			cols = append(cols, col.New(c.size).Add(text.New(values[j], props.Text{
				Size: 7, Align: c.align, Top: 1, Left: 1, Right: 1,
			})))
		}
		rw := row.New(6).Add(cols...)
		if i%2 == 1 {
			rw = rw.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, rw)
	}
	return result
}

// summaryRow: bloque de totales alineado a la derecha; el neto a pagar va destacado.
func summaryRow(s earnings.Summary) core.Row {
	lines := [][2]string{
		{"Total orders:", fmt.Sprintf("%d", s.TotalOrders)},
		{"Total subtotal:", earnings.FormatAmount(s.TotalSubtotal)},
		{"Total commission:", earnings.FormatAmount(s.TotalCommission)},
		{"Avg. commission:", earnings.FormatPercent(s.AverageCommissionPercent)},
		{"GST on commission:", earnings.FormatAmount(s.TotalGST)},
		{"Vendor gross:", earnings.FormatAmount(s.TotalVendorEarning)},
		{"TDS:", earnings.FormatAmount(s.TotalTDS)},
	}

	labelCol := col.New(5)
	valueCol := col.New(4)
	for i, l := range lines {
		top := float64(i) * 4.5
		labelCol.Add(text.New(l[0], props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2, Top: top,
		}))
		valueCol.Add(text.New(l[1], props.Text{Size: 8, Align: align.Right, Right: 1, Top: top}))
	}

	netTop := float64(len(lines))*4.5 + 1
	labelCol.Add(text.New("NET PAYABLE (INR):", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2, Top: netTop,
	}))
	valueCol.Add(text.New(earnings.FormatAmount(s.NetPayable), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1, Top: netTop,
	}))

	return row.New(40).Add(col.New(17), labelCol, valueCol)
}

// footerRow: fecha de generación.
func footerRow(doc appearnings.ReportDocument) core.Row {
	return row.New(8).Add(col.New(gridSize).Add(
		text.New("Generated "+doc.GeneratedAt.Format("02-01-2006 15:04 MST")+
			". Commission GST 18%, TDS 0.5% on vendor gross earning.", props.Text{
			Size: 6.5, Color: colorGray, Top: 3,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// truncate corta s a max runas terminando en "...".
func truncate(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max-3]) + "..."
}
