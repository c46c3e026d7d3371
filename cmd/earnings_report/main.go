// earnings_report calcula el reporte de ganancias de un vendedor a partir de un archivo
// JSON de órdenes, sin base de datos ni servidor.
//
// Uso:
//
//	go run ./cmd/earnings_report --orders orders.json --commission 18 \
//	    --from 2026-03-01 --to 2026-03-31 --search sharma --csv marzo.csv --pdf marzo.pdf
//
// Sin --commission se usa DEFAULT_COMMISSION_PERCENT (20 por defecto).
package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	appearnings "github.com/jhoicas/vendor-earnings-api/internal/application/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/vendor-earnings-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vendor-earnings-api/internal/infrastructure/sheet"
	"github.com/jhoicas/vendor-earnings-api/pkg/config"
	"github.com/jhoicas/vendor-earnings-api/pkg/logger"
)

type options struct {
	ordersPath string
	vendorID   string
	vendorName string
	commission float64
	from       string
	to         string
	search     string
	csvPath    string
	pdfPath    string
	verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "earnings_report: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var opt options
	fs := pflag.NewFlagSet("earnings_report", pflag.ContinueOnError)
	fs.StringVar(&opt.ordersPath, "orders", "orders.json", "archivo JSON con las órdenes")
	fs.StringVar(&opt.vendorID, "vendor", "cli", "ID del vendedor")
	fs.StringVar(&opt.vendorName, "vendor-name", "", "nombre del vendedor para el PDF")
	fs.Float64Var(&opt.commission, "commission", 0, "porcentaje de comisión de la plataforma")
	fs.StringVar(&opt.from, "from", "", "fecha inicial YYYY-MM-DD (inclusiva)")
	fs.StringVar(&opt.to, "to", "", "fecha final YYYY-MM-DD (inclusiva)")
	fs.StringVar(&opt.search, "search", "", "texto a buscar en ID, cliente, teléfono o restaurante")
	fs.StringVar(&opt.csvPath, "csv", "", "escribe la hoja de cálculo en esta ruta")
	fs.StringVar(&opt.pdfPath, "pdf", "", "escribe el PDF en esta ruta")
	fs.BoolVarP(&opt.verbose, "verbose", "v", false, "muestra advertencias del cálculo")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.Changed("commission") && (math.IsNaN(opt.commission) || opt.commission < 0 || opt.commission > 100) {
		return fmt.Errorf("--commission fuera de rango [0,100]: %v", opt.commission)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f, err := os.Open(opt.ordersPath)
	if err != nil {
		return fmt.Errorf("abrir órdenes: %w", err)
	}
	defer f.Close()
	orders, err := decodeOrders(f)
	if err != nil {
		return err
	}

	vendor := &entity.Vendor{ID: opt.vendorID, Name: opt.vendorName}
	if fs.Changed("commission") {
		c := opt.commission
		vendor.Commission = &c
	}
	src := &fileSource{vendor: vendor, orders: dto.RawOrdersToEntities(orders)}

	log := logger.Nop()
	if opt.verbose {
		log = logger.New(logger.Config{Env: "development", Level: "warn", Output: os.Stderr})
	}

	uc := appearnings.NewUseCase(src, src,
		infrapdf.NewMarotoReportGenerator(),
		sheet.NewCSVWriter(true),
		appearnings.Config{
			DefaultCommission: decimal.NewFromFloat(cfg.Earnings.DefaultCommission),
			Location:          cfg.Earnings.Location(),
			RowsPerPage:       cfg.Earnings.PDFRowsPerPage,
		},
		log,
	)

	ctx := context.Background()
	req := dto.EarningsReportRequest{StartDate: opt.from, EndDate: opt.to, Search: opt.search}

	report, err := uc.GetReport(ctx, opt.vendorID, req)
	if err != nil {
		return err
	}
	printSummary(stdout, report)

	if opt.csvPath != "" {
		data, _, err := uc.ExportCSV(ctx, opt.vendorID, req)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opt.csvPath, data, 0o644); err != nil {
			return fmt.Errorf("escribir csv: %w", err)
		}
		fmt.Fprintf(stdout, "CSV: %s\n", opt.csvPath)
	}
	if opt.pdfPath != "" {
		data, _, err := uc.ExportPDF(ctx, opt.vendorID, req)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opt.pdfPath, data, 0o644); err != nil {
			return fmt.Errorf("escribir pdf: %w", err)
		}
		fmt.Fprintf(stdout, "PDF: %s\n", opt.pdfPath)
	}
	return nil
}

func printSummary(w io.Writer, r *dto.EarningsReportResponse) {
	s := r.Summary
	pct := earnings.FormatPercent(r.CommissionPercent)
	if r.CommissionDefaulted {
		pct += " (por defecto)"
	}
	fmt.Fprintf(w, "Comisión aplicada:   %s\n", pct)
	fmt.Fprintf(w, "Órdenes entregadas:  %d\n", s.TotalOrders)
	fmt.Fprintf(w, "Subtotal:            %s\n", earnings.FormatINR(s.TotalSubtotal))
	fmt.Fprintf(w, "Comisión:            %s\n", earnings.FormatINR(s.TotalCommission))
	fmt.Fprintf(w, "Comisión promedio:   %s\n", earnings.FormatPercent(s.AverageCommissionPercent))
	fmt.Fprintf(w, "GST sobre comisión:  %s\n", earnings.FormatINR(s.TotalGST))
	fmt.Fprintf(w, "Ganancia bruta:      %s\n", earnings.FormatINR(s.TotalVendorEarning))
	fmt.Fprintf(w, "TDS:                 %s\n", earnings.FormatINR(s.TotalTDS))
	fmt.Fprintf(w, "Neto a pagar:        %s\n", earnings.FormatINR(s.NetPayable))
	if len(r.Rejected) > 0 {
		fmt.Fprintf(w, "Órdenes descartadas: %d\n", len(r.Rejected))
		for _, rej := range r.Rejected {
			fmt.Fprintf(w, "  - %s: %s\n", rej.OrderID, rej.Reason)
		}
	}
}
