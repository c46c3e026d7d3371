package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// featureChecker es el contrato mínimo que necesita el middleware para verificar el plan.
// Lo implementa *usecase.PlanService; el uso de interfaz evita el import circular.
type featureChecker interface {
	HasActiveFeature(ctx context.Context, vendorID, feature string) (bool, error)
}

// RequireFeature devuelve un middleware Fiber que verifica si el plan del vendedor incluye
// la funcionalidad. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalVendorID).
//
// Comportamiento:
//   - los admin no dependen de un plan.
//   - 403 Forbidden  → funcionalidad no contratada o plan vencido.
//   - 503 Service Unavailable → fallo de infraestructura al consultar el plan.
//   - Si no hay vendor_id en el contexto, responde 401.
func RequireFeature(feature string, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == entity.RoleAdmin {
			return c.Next()
		}
		vendorID := GetVendorID(c)
		if vendorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "vendor_id no encontrado en el token",
			})
		}

		active, err := checker.HasActiveFeature(c.UserContext(), vendorID, feature)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PLAN_CHECK_FAILED",
				Message: "no se pudo verificar el plan, intente más tarde",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PLAN_REQUIRED",
				Message: "la funcionalidad '" + feature + "' no está incluida en el plan vigente",
			})
		}

		return c.Next()
	}
}
