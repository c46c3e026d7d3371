// Package sheet exportación tabular del reporte de ganancias.
package sheet

import (
	"encoding/csv"
	"io"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
)

// utf8BOM hace que Excel detecte la codificación (nombres con acentos, ₹).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter implementa el puerto SheetWriter con encoding/csv.
type CSVWriter struct {
	withBOM bool
}

// NewCSVWriter construye el exportador. withBOM antepone el BOM UTF-8.
func NewCSVWriter(withBOM bool) *CSVWriter {
	return &CSVWriter{withBOM: withBOM}
}

// WriteTable escribe la cabecera y todas las filas (la última es la de totales).
func (cw *CSVWriter) WriteTable(w io.Writer, t earnings.Table) error {
	if cw.withBOM {
		if _, err := w.Write(utf8BOM); err != nil {
			return err
		}
	}
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
