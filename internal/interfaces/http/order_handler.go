package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/application/usecase"
)

// OrderHandler listados de órdenes del panel del vendedor.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes por estado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status     query  string  false  "pending | completed | all"  default(all)
// @Param        vendor_id  query  string  false  "Solo admin"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	vendorID := targetVendorID(c)
	if vendorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "vendor_id requerido"})
	}
	var in dto.OrderListRequest
	if err := c.QueryParser(&in); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	out, err := h.uc.List(c.UserContext(), vendorID, in)
	if err != nil {
		return respondError(c, err, "vendedor no encontrado")
	}
	return c.JSON(out)
}
