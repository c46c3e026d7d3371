package pdf

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appearnings "github.com/jhoicas/vendor-earnings-api/internal/application/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
)

func buildDocument(n int) appearnings.ReportDocument {
	pct := decimal.NewFromInt(20)
	recs := make([]earnings.Record, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, earnings.Record{
			Order: earnings.NormalizedOrder{
				ID:             fmt.Sprintf("ORD-%03d", i),
				OrderDate:      "10-03-2026",
				CustomerName:   "Anita Sharma",
				CustomerPhone:  "9123456780",
				RestaurantName: "Spice Hub",
				Products:       "2 x Paneer Tikka",
			},
			Breakdown: earnings.Calculate(decimal.NewFromInt(int64(100+i)), pct),
		})
	}
	return appearnings.ReportDocument{
		VendorID:          "v-1",
		VendorName:        "Spice Hub",
		StartDate:         "2026-03-01",
		CommissionPercent: pct,
		GeneratedAt:       time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC),
		Pages:             earnings.Paginate(recs, earnings.Aggregate(recs), earnings.DefaultRowsPerPage),
	}
}

func TestGenerateEarningsPDF_VariasPaginas(t *testing.T) {
	g := NewMarotoReportGenerator()

	out, err := g.GenerateEarningsPDF(context.Background(), buildDocument(45))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateEarningsPDF_SinRegistros(t *testing.T) {
	g := NewMarotoReportGenerator()

	out, err := g.GenerateEarningsPDF(context.Background(), buildDocument(0))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateEarningsPDF_SinPaginas_Error(t *testing.T) {
	_, err := NewMarotoReportGenerator().GenerateEarningsPDF(context.Background(), appearnings.ReportDocument{})
	assert.Error(t, err)
}

func TestGenerateEarningsPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoReportGenerator().GenerateEarningsPDF(ctx, buildDocument(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestColumns_LlenanLaGrilla(t *testing.T) {
	total := 0
	for _, c := range columns {
		total += c.size
	}
	assert.Equal(t, gridSize, total)
	assert.Len(t, columns, len(earnings.TableHeader))
}
