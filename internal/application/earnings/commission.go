package earnings

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// EffectiveCommission devuelve el % de comisión a aplicar al vendedor y si se usó el
// valor por defecto. Cae al defecto cuando no hay perfil, no hay comisión configurada
// o el valor guardado no es finito o está fuera de [0,100].
func EffectiveCommission(v *entity.Vendor, def decimal.Decimal) (decimal.Decimal, bool) {
	if v == nil || v.Commission == nil {
		return def, true
	}
	c := *v.Commission
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 || c > 100 {
		return def, true
	}
	return decimal.NewFromFloat(c), false
}
