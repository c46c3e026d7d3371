package earnings

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount formatea un monto con 2 decimales y la agrupación de la locale en-IN
// (1,23,456.78), sin símbolo. Solo para documentos; la exportación tabular usa StringFixed(2).
// La parte entera se agrupa como entero y los decimales salen de StringFixed: no pasa por float.
func FormatAmount(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	fixed := r.StringFixed(2)
	frac := fixed[strings.IndexByte(fixed, '.'):]
	return sign + inrPrinter.Sprintf("%d", r.Truncate(0).IntPart()) + frac
}

// FormatINR FormatAmount con el símbolo de rupia: ₹1,23,456.78, -₹36.50.
func FormatINR(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-₹" + FormatAmount(d.Abs())
	}
	return "₹" + FormatAmount(d)
}

// FormatPercent formatea un porcentaje con 2 decimales: "20.00%".
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
