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
	"github.com/jhoicas/hotel-inventory/internal/application/export"
	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/application/report"
	infrapdf "github.com/jhoicas/hotel-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/hotel-inventory/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/hotel-inventory/internal/interfaces/http"
	"github.com/jhoicas/hotel-inventory/pkg/config"
	"github.com/jhoicas/hotel-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", loc.String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	itemRepo := postgres.NewItemRepository(pool)
	logRepo := postgres.NewInventoryLogRepository(pool)
	ledgerReader := postgres.NewLedgerReader(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Toda mutación de cantidad o valor pasa por el LedgerWriter dentro de la misma transacción.
	ledger := inventory.NewLedgerWriter(loc)
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, logRepo, ledger, cfg.Inventory.ExpiryWarningDays)
	countUC := inventory.NewCountUpdateUseCase(txRunner, ledger)
	reportUC := report.NewReportUseCase(itemRepo, ledgerReader, loc,
		cfg.Inventory.ReportDefaultDays, cfg.Inventory.ExpiryWarningDays)

	exportSvc := export.NewService(reportUC, infrapdf.NewMarotoReportGenerator(cfg.App.Name))

	// Redis es opcional: sin REDIS_ADDR no hay límite de peticiones.
	var limiter httpRouter.RateLimiter
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		limiter = infraredis.NewRateLimiter(rdb, cfg.Redis.RateLimitPerMinute)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hotel Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Items:       itemUC,
		Counts:      countUC,
		Reports:     reportUC,
		Exporter:    exportSvc,
		RateLimiter: limiter,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
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
