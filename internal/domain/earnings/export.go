package earnings

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultRowsPerPage filas por página del documento exportado.
const DefaultRowsPerPage = 20

// TableHeader columnas de la exportación tabular (hoja de cálculo).
var TableHeader = []string{
	"Order ID",
	"Order Date",
	"Customer",
	"Phone",
	"Restaurant",
	"Products",
	"Subtotal",
	"Commission %",
	"Commission",
	"GST on Commission",
	"Vendor Gross",
	"TDS",
	"Net Payable",
}

// Table row-set plano: una fila por registro más una fila final de totales.
type Table struct {
	Header []string
	Rows   [][]string
}

// BuildTable arma la tabla para hoja de cálculo. Los montos van con 2 decimales y sin
// separador de miles para que la hoja los reconozca como números.
func BuildTable(records []Record, summary Summary) Table {
	rows := make([][]string, 0, len(records)+1)
	for _, r := range records {
		rows = append(rows, []string{
			r.Order.ID,
			r.Order.OrderDate,
			r.Order.CustomerName,
			r.Order.CustomerPhone,
			r.Order.RestaurantName,
			r.Order.Products,
			fixed(r.SubTotal),
			fixed(r.CommissionPercent),
			fixed(r.CommissionAmount),
			fixed(r.GSTOnCommission),
			fixed(r.VendorGrossEarning),
			fixed(r.TDSOnVendorEarning),
			fixed(r.NetPayable),
		})
	}
	rows = append(rows, SummaryRow(summary))
	return Table{Header: TableHeader, Rows: rows}
}

// SummaryRow fila de totales alineada con TableHeader.
func SummaryRow(s Summary) []string {
	return []string{
		"TOTAL",
		strconv.Itoa(s.TotalOrders) + " orders",
		"",
		"",
		"",
		"",
		fixed(s.TotalSubtotal),
		fixed(s.AverageCommissionPercent),
		fixed(s.TotalCommission),
		fixed(s.TotalGST),
		fixed(s.TotalVendorEarning),
		fixed(s.TotalTDS),
		fixed(s.NetPayable),
	}
}

// Page página del documento. Summary solo viene en la última.
type Page struct {
	Number     int
	TotalPages int
	Records    []Record
	Summary    *Summary
}

// Paginate reparte los registros en páginas de rowsPerPage filas (DefaultRowsPerPage si
// es <= 0). Sin registros devuelve una única página con el resumen en cero.
func Paginate(records []Record, summary Summary, rowsPerPage int) []Page {
	if rowsPerPage <= 0 {
		rowsPerPage = DefaultRowsPerPage
	}
	total := (len(records) + rowsPerPage - 1) / rowsPerPage
	if total == 0 {
		total = 1
	}
	pages := make([]Page, 0, total)
	for i := 0; i < total; i++ {
		from := i * rowsPerPage
		to := from + rowsPerPage
		if to > len(records) {
			to = len(records)
		}
		pages = append(pages, Page{
			Number:     i + 1,
			TotalPages: total,
			Records:    records[from:to],
		})
	}
	s := summary
	pages[total-1].Summary = &s
	return pages
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
