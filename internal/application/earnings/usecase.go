// Package earnings orquesta el reporte financiero del vendedor: obtiene el perfil y las
// órdenes, resuelve la comisión efectiva y delega el cálculo en el motor puro de
// internal/domain/earnings.
package earnings

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
	"github.com/jhoicas/vendor-earnings-api/pkg/logger"
)

// Config parámetros del reporte tomados de la configuración.
type Config struct {
	DefaultCommission decimal.Decimal
	Location          *time.Location
	RowsPerPage       int
}

// UseCase casos de uso del reporte de ganancias.
type UseCase struct {
	orders  repository.OrderRepository
	vendors repository.VendorRepository
	pdf     ReportPDFGenerator
	sheet   SheetWriter
	cfg     Config
	log     *logger.Logger
	now     func() time.Time
}

// NewUseCase construye el caso de uso inyectando puertos y configuración.
func NewUseCase(
	orders repository.OrderRepository,
	vendors repository.VendorRepository,
	pdf ReportPDFGenerator,
	sheet SheetWriter,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.RowsPerPage <= 0 {
		cfg.RowsPerPage = earnings.DefaultRowsPerPage
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		orders:  orders,
		vendors: vendors,
		pdf:     pdf,
		sheet:   sheet,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// computed resultado interno compartido por el reporte JSON y las exportaciones.
type computed struct {
	vendor    *entity.Vendor
	report    earnings.Report
	defaulted bool
	period    dto.PeriodDTO
	search    string
}

// compute trae perfil y órdenes en paralelo y ejecuta el motor.
// Si el perfil falla o no existe se usa la comisión por defecto (no es error);
// si fallan las órdenes el reporte no puede construirse.
func (uc *UseCase) compute(ctx context.Context, vendorID string, req dto.EarningsReportRequest) (*computed, error) {
	f, period, err := parseFilter(req.StartDate, req.EndDate, req.Search, uc.cfg.Location)
	if err != nil {
		return nil, err
	}

	type vendorResult struct {
		vendor *entity.Vendor
		err    error
	}
	type ordersResult struct {
		orders []entity.RawOrder
		err    error
	}

	vendorCh := make(chan vendorResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		v, err := uc.vendors.GetByID(ctx, vendorID)
		vendorCh <- vendorResult{v, err}
	}()
	go func() {
		o, err := uc.orders.ListByVendor(ctx, vendorID)
		ordersCh <- ordersResult{o, err}
	}()

	vRes := <-vendorCh
	oRes := <-ordersCh

	log := uc.log.WithVendor(vendorID)
	if oRes.err != nil {
		log.Error().Err(oRes.err).Msg("earnings: no se pudieron obtener las órdenes")
		return nil, fmt.Errorf("earnings: órdenes: %w", oRes.err)
	}
	if vRes.err != nil {
		log.Warn().Err(vRes.err).Msg("earnings: perfil no disponible, se usa comisión por defecto")
	}

	pct, defaulted := EffectiveCommission(vRes.vendor, uc.cfg.DefaultCommission)
	if defaulted {
		log.Warn().Str("commission_percent", pct.String()).Msg("earnings: comisión por defecto")
	}

	report := earnings.ComputeReport(oRes.orders, pct, f, uc.cfg.Location)
	for _, r := range report.Rejected {
		log.Warn().Str("order_id", r.OrderID).Err(r.Err).Msg("earnings: orden descartada")
	}

	return &computed{
		vendor:    vRes.vendor,
		report:    report,
		defaulted: defaulted,
		period:    period,
		search:    f.Search,
	}, nil
}

// GetReport devuelve el reporte filtrado con su resumen.
func (uc *UseCase) GetReport(ctx context.Context, vendorID string, req dto.EarningsReportRequest) (*dto.EarningsReportResponse, error) {
	c, err := uc.compute(ctx, vendorID, req)
	if err != nil {
		return nil, err
	}
	return toReportResponse(c), nil
}

// Preview calcula el reporte sobre órdenes enviadas por el cliente, sin tocar el backend.
// Una comisión no finita es entrada inválida; sin comisión se usa la de configuración.
func (uc *UseCase) Preview(_ context.Context, req dto.EarningsPreviewRequest) (*dto.EarningsReportResponse, error) {
	pct := uc.cfg.DefaultCommission
	defaulted := true
	if req.CommissionPercent != nil {
		p, err := earnings.DecimalFromFloat(*req.CommissionPercent)
		if err != nil {
			return nil, fmt.Errorf("commission_percent: %w", err)
		}
		pct, defaulted = p, false
	}
	f, period, err := parseFilter(req.StartDate, req.EndDate, req.Search, uc.cfg.Location)
	if err != nil {
		return nil, err
	}
	report := earnings.ComputeReport(dto.RawOrdersToEntities(req.Orders), pct, f, uc.cfg.Location)
	return toReportResponse(&computed{
		report:    report,
		defaulted: defaulted,
		period:    period,
		search:    f.Search,
	}), nil
}

// ExportCSV genera la hoja de cálculo del reporte filtrado (una fila por orden más totales).
func (uc *UseCase) ExportCSV(ctx context.Context, vendorID string, req dto.EarningsReportRequest) ([]byte, string, error) {
	c, err := uc.compute(ctx, vendorID, req)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := uc.sheet.WriteTable(&buf, earnings.BuildTable(c.report.Records, c.report.Summary)); err != nil {
		return nil, "", fmt.Errorf("earnings: exportar csv: %w", err)
	}
	return buf.Bytes(), exportFilename(vendorID, c.period, "csv"), nil
}

// ExportPDF genera el documento paginado (RowsPerPage filas por página, resumen al final).
func (uc *UseCase) ExportPDF(ctx context.Context, vendorID string, req dto.EarningsReportRequest) ([]byte, string, error) {
	c, err := uc.compute(ctx, vendorID, req)
	if err != nil {
		return nil, "", err
	}
	doc := ReportDocument{
		VendorID:          vendorID,
		VendorName:        vendorID,
		StartDate:         c.period.StartDate,
		EndDate:           c.period.EndDate,
		Search:            c.search,
		CommissionPercent: c.report.CommissionPercent,
		GeneratedAt:       uc.now().In(uc.cfg.Location),
		Pages:             earnings.Paginate(c.report.Records, c.report.Summary, uc.cfg.RowsPerPage),
	}
	if c.vendor != nil && strings.TrimSpace(c.vendor.Name) != "" {
		doc.VendorName = c.vendor.Name
	}
	pdf, err := uc.pdf.GenerateEarningsPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("earnings: generar pdf: %w", err)
	}
	return pdf, exportFilename(vendorID, c.period, "pdf"), nil
}

func toReportResponse(c *computed) *dto.EarningsReportResponse {
	return &dto.EarningsReportResponse{
		Period:              c.period,
		Search:              c.search,
		CommissionPercent:   c.report.CommissionPercent,
		CommissionDefaulted: c.defaulted,
		Records:             toRecordDTOs(c.report.Records),
		Summary:             toSummaryDTO(c.report.Summary),
		Rejected:            ToRejectedDTOs(c.report.Rejected),
	}
}

// exportFilename ej: earnings_v-1_2026-03-01_2026-03-31.csv; extremos abiertos = "all".
func exportFilename(vendorID string, p dto.PeriodDTO, ext string) string {
	start, end := p.StartDate, p.EndDate
	if start == "" {
		start = "all"
	}
	if end == "" {
		end = "all"
	}
	return fmt.Sprintf("earnings_%s_%s_%s.%s", vendorID, start, end, ext)
}
