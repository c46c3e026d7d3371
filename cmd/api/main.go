package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-earnings-api/internal/application/auth"
	appearnings "github.com/jhoicas/vendor-earnings-api/internal/application/earnings"
	"github.com/jhoicas/vendor-earnings-api/internal/application/usecase"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/repository"
	"github.com/jhoicas/vendor-earnings-api/internal/infrastructure/backend"
	"github.com/jhoicas/vendor-earnings-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/vendor-earnings-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vendor-earnings-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vendor-earnings-api/internal/infrastructure/sheet"
	httpRouter "github.com/jhoicas/vendor-earnings-api/internal/interfaces/http"
	"github.com/jhoicas/vendor-earnings-api/pkg/config"
	"github.com/jhoicas/vendor-earnings-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("orders_source", cfg.Backend.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	// Usuarios, planes y menú viven siempre en PostgreSQL; perfil y órdenes pueden venir
	// del backend de la plataforma.
	userRepo := postgres.NewUserRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	var (
		vendorRepo   repository.VendorRepository
		vendorWriter repository.VendorWriter // nil con la fuente remota
		orderRepo    repository.OrderRepository
		vendorCache  *cache.VendorCache
	)
	switch cfg.Backend.Source {
	case config.SourceAPI:
		client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Backend.Timeout)
		vendorRepo, orderRepo = client, client
	default:
		pgVendors := postgres.NewVendorRepository(pool)
		vendorRepo, vendorWriter = pgVendors, pgVendors
		orderRepo = postgres.NewOrderRepository(pool)
	}

	// Caché de perfiles: opcional; si Redis no responde al arrancar se sigue sin caché.
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, perfiles sin caché")
		} else {
			vendorCache = cache.NewVendorCache(vendorRepo, rdb, cfg.Redis.TTL, log)
			vendorRepo = vendorCache
		}
		cancel()
	}

	defaultCommission := decimal.NewFromFloat(cfg.Earnings.DefaultCommission)
	loc := cfg.Earnings.Location()

	earningsUC := appearnings.NewUseCase(
		orderRepo, vendorRepo,
		infrapdf.NewMarotoReportGenerator(),
		sheet.NewCSVWriter(true),
		appearnings.Config{
			DefaultCommission: defaultCommission,
			Location:          loc,
			RowsPerPage:       cfg.Earnings.PDFRowsPerPage,
		},
		log,
	)
	planSvc := usecase.NewPlanService(planRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, loc)
	productUC := usecase.NewProductUseCase(productRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, planSvc, defaultCommission)
	var vendorAdm *usecase.VendorAdminUseCase
	if vendorWriter != nil {
		var inv usecase.VendorInvalidator
		if vendorCache != nil {
			inv = vendorCache
		}
		vendorAdm = usecase.NewVendorAdminUseCase(vendorWriter, inv, log)
	}
	authUC := auth.NewAuthUseCase(userRepo, vendorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vendor Earnings API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		EarningsUC: earningsUC,
		OrderUC:    orderUC,
		ProductUC:  productUC,
		VendorUC:   vendorUC,
		VendorAdm:  vendorAdm,
		Plans:      planSvc,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
