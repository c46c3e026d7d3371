package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/application/usecase"
)

// VendorHandler perfil del vendedor autenticado y administración de vendedores.
type VendorHandler struct {
	uc    *usecase.VendorUseCase
	admin *usecase.VendorAdminUseCase
}

// NewVendorHandler construye el handler. admin puede ser nil (fuente remota de solo lectura).
func NewVendorHandler(uc *usecase.VendorUseCase, admin *usecase.VendorAdminUseCase) *VendorHandler {
	return &VendorHandler{uc: uc, admin: admin}
}

// Me godoc
// @Summary      Perfil del vendedor
// @Description  Incluye la comisión efectiva que usa el reporte y el plan vigente.
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Param        vendor_id  query  string  false  "Solo admin"
// @Success      200  {object}  dto.VendorProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/me [get]
func (h *VendorHandler) Me(c *fiber.Ctx) error {
	vendorID := targetVendorID(c)
	if vendorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "vendor_id requerido"})
	}
	out, err := h.uc.GetProfile(c.UserContext(), vendorID)
	if err != nil {
		return respondError(c, err, "vendedor no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta de vendedor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendorRequest  true  "Vendedor"
// @Success      201  {object}  dto.VendorProfileResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if msg := validateStruct(in); msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	out, err := h.admin.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetCommission godoc
// @Summary      Cambiar comisión del vendedor
// @Description  commission_percent null vuelve a la comisión por defecto.
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                    true  "Vendor ID"
// @Param        body  body  dto.SetCommissionRequest  true  "Comisión"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id}/commission [put]
func (h *VendorHandler) SetCommission(c *fiber.Ctx) error {
	var in dto.SetCommissionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if msg := validateStruct(in); msg != "" {
		return badRequest(c, "VALIDATION", msg)
	}
	if err := h.admin.SetCommission(c.UserContext(), c.Params("id"), in); err != nil {
		return respondError(c, err, "vendedor no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
