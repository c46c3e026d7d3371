package earnings

import (
	"strings"
	"time"
)

// Filter parámetros del filtro interactivo. Un extremo nil deja ese lado abierto;
// Search vacío no restringe.
type Filter struct {
	Start  *time.Time
	End    *time.Time
	Search string
}

// Apply devuelve los registros que cumplen el filtro (fecha AND búsqueda), conservando
// el orden. Siempre trabaja sobre el conjunto recibido completo y nunca lo modifica:
// para cambiar el filtro se vuelve a llamar con el conjunto sin filtrar.
func Apply(records []Record, f Filter, loc *time.Location) []Record {
	m := f.matcher(loc)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

type matcher struct {
	start, end       time.Time
	hasStart, hasEnd bool
	term             string
}

// matcher resuelve los límites con granularidad de día en loc: el inicio a las 00:00
// y el fin al último instante del día (23:59:59.999999999).
func (f Filter) matcher(loc *time.Location) matcher {
	if loc == nil {
		loc = time.UTC
	}
	var m matcher
	if f.Start != nil {
		m.start = startOfDay(*f.Start, loc)
		m.hasStart = true
	}
	if f.End != nil {
		m.end = startOfDay(*f.End, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
		m.hasEnd = true
	}
	m.term = strings.ToLower(strings.TrimSpace(f.Search))
	return m
}

func (m matcher) match(r Record) bool {
	if m.hasStart && r.Order.CreatedAt.Before(m.start) {
		return false
	}
	if m.hasEnd && r.Order.CreatedAt.After(m.end) {
		return false
	}
	if m.term == "" {
		return true
	}
	for _, field := range []string{
		r.Order.ID,
		r.Order.CustomerName,
		r.Order.CustomerPhone,
		r.Order.RestaurantName,
	} {
		if field == NotAvailable {
			continue
		}
		if strings.Contains(strings.ToLower(field), m.term) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
