package earnings

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
)

const dateLayout = "2006-01-02"

// parseFilter convierte los parámetros de query en el filtro del motor. Las fechas
// vacías dejan el extremo abierto; un rango invertido no es error, solo no devuelve filas.
func parseFilter(startStr, endStr, search string, loc *time.Location) (earnings.Filter, dto.PeriodDTO, error) {
	var f earnings.Filter
	var period dto.PeriodDTO

	if s := strings.TrimSpace(startStr); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return f, period, fmt.Errorf("%w: start_date inválido %q (YYYY-MM-DD)", domain.ErrInvalidInput, s)
		}
		f.Start = &t
		period.StartDate = s
	}
	if s := strings.TrimSpace(endStr); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return f, period, fmt.Errorf("%w: end_date inválido %q (YYYY-MM-DD)", domain.ErrInvalidInput, s)
		}
		f.End = &t
		period.EndDate = s
	}
	f.Search = strings.TrimSpace(search)
	return f, period, nil
}
