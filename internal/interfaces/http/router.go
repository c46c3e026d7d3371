package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-earnings-api/internal/application/auth"
	"github.com/jhoicas/vendor-earnings-api/internal/application/usecase"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	EarningsUC earningsService
	OrderUC    *usecase.OrderUseCase
	ProductUC  *usecase.ProductUseCase
	VendorUC   *usecase.VendorUseCase
	VendorAdm  *usecase.VendorAdminUseCase // nil = sin alta ni cambio de comisión
	Plans      featureChecker
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth: login público; el alta de usuarios la hace un admin
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin, entity.RoleVendor))

	// Perfil (sin plan)
	vendorHandler := NewVendorHandler(deps.VendorUC, deps.VendorAdm)
	protected.Get("/vendors/me", vendorHandler.Me)
	if deps.VendorAdm != nil {
		protected.Post("/vendors", RequireRole(entity.RoleAdmin), vendorHandler.Create)
		protected.Put("/vendors/:id/commission", RequireRole(entity.RoleAdmin), vendorHandler.SetCommission)
	}

	// Reporte de ganancias y exportaciones
	earningsGroup := protected.Group("/earnings", RequireFeature(entity.FeatureReports, deps.Plans))
	earningsHandler := NewEarningsHandler(deps.EarningsUC)
	earningsGroup.Get("/report", earningsHandler.Report)
	earningsGroup.Get("/export/csv", earningsHandler.ExportCSV)
	earningsGroup.Get("/export/pdf", earningsHandler.ExportPDF)
	earningsGroup.Post("/preview", earningsHandler.Preview)

	// Órdenes por estado
	orders := protected.Group("/orders", RequireFeature(entity.FeatureOrders, deps.Plans))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)

	// Menú
	products := protected.Group("/products", RequireFeature(entity.FeatureMenu, deps.Plans))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
