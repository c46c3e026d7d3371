package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
)

// earningsService lo implementa *earnings.UseCase.
type earningsService interface {
	GetReport(ctx context.Context, vendorID string, req dto.EarningsReportRequest) (*dto.EarningsReportResponse, error)
	Preview(ctx context.Context, req dto.EarningsPreviewRequest) (*dto.EarningsReportResponse, error)
	ExportCSV(ctx context.Context, vendorID string, req dto.EarningsReportRequest) ([]byte, string, error)
	ExportPDF(ctx context.Context, vendorID string, req dto.EarningsReportRequest) ([]byte, string, error)
}

// EarningsHandler expone el reporte de ganancias del vendedor y sus exportaciones.
type EarningsHandler struct {
	uc earningsService
}

// NewEarningsHandler construye el handler.
func NewEarningsHandler(uc earningsService) *EarningsHandler {
	return &EarningsHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte de ganancias
// @Description  Órdenes entregadas con comisión, GST, TDS y neto a pagar, más el resumen del subconjunto filtrado.
// @Tags         earnings
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (inclusivo, hasta fin del día)"
// @Param        search      query  string  false  "ID, cliente, teléfono o restaurante"
// @Param        vendor_id   query  string  false  "Solo admin"
// @Success      200  {object}  dto.EarningsReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/earnings/report [get]
func (h *EarningsHandler) Report(c *fiber.Ctx) error {
	vendorID, req, err := h.parseQuery(c)
	if err != nil || vendorID == "" {
		return err
	}
	out, err := h.uc.GetReport(c.UserContext(), vendorID, req)
	if err != nil {
		return respondError(c, err, "vendedor no encontrado")
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar reporte a CSV
// @Tags         earnings
// @Security     Bearer
// @Produce      text/csv
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        search      query  string  false  "Texto de búsqueda"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/earnings/export/csv [get]
func (h *EarningsHandler) ExportCSV(c *fiber.Ctx) error {
	vendorID, req, err := h.parseQuery(c)
	if err != nil || vendorID == "" {
		return err
	}
	data, filename, err := h.uc.ExportCSV(c.UserContext(), vendorID, req)
	if err != nil {
		return respondError(c, err, "vendedor no encontrado")
	}
	return sendAttachment(c, "text/csv; charset=utf-8", filename, data)
}

// ExportPDF godoc
// @Summary      Exportar reporte a PDF
// @Description  Documento paginado de 20 filas por página; el resumen va en la última.
// @Tags         earnings
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        search      query  string  false  "Texto de búsqueda"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/earnings/export/pdf [get]
func (h *EarningsHandler) ExportPDF(c *fiber.Ctx) error {
	vendorID, req, err := h.parseQuery(c)
	if err != nil || vendorID == "" {
		return err
	}
	data, filename, err := h.uc.ExportPDF(c.UserContext(), vendorID, req)
	if err != nil {
		return respondError(c, err, "vendedor no encontrado")
	}
	return sendAttachment(c, "application/pdf", filename, data)
}

// Preview godoc
// @Summary      Calcular reporte sobre órdenes enviadas
// @Description  No consulta el backend: aplica el motor a las órdenes del cuerpo.
// @Tags         earnings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EarningsPreviewRequest  true  "Órdenes y comisión"
// @Success      200   {object}  dto.EarningsReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/earnings/preview [post]
func (h *EarningsHandler) Preview(c *fiber.Ctx) error {
	var in dto.EarningsPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if msg := validateStruct(in); msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	out, err := h.uc.Preview(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// parseQuery resuelve vendedor y filtros. Si ya respondió con error devuelve vendorID vacío.
func (h *EarningsHandler) parseQuery(c *fiber.Ctx) (string, dto.EarningsReportRequest, error) {
	var req dto.EarningsReportRequest
	vendorID := targetVendorID(c)
	if vendorID == "" {
		return "", req, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "vendor_id requerido"})
	}
	if err := c.QueryParser(&req); err != nil {
		return "", req, badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	if msg := validateStruct(req); msg != "" {
		return "", req, badRequest(c, "VALIDATION", msg)
	}
	return vendorID, req, nil
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
