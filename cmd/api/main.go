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

	"github.com/josehoe716-wq/App-bodega-final/internal/application/analytics"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/auth"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/exits"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/export"
	"github.com/josehoe716-wq/App-bodega-final/internal/application/inventory"
	infrapdf "github.com/josehoe716-wq/App-bodega-final/internal/infrastructure/pdf"
	"github.com/josehoe716-wq/App-bodega-final/internal/infrastructure/postgres"
	httpRouter "github.com/josehoe716-wq/App-bodega-final/internal/interfaces/http"
	"github.com/josehoe716-wq/App-bodega-final/pkg/config"
	"github.com/josehoe716-wq/App-bodega-final/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	exitRepo := postgres.NewMaterialExitRepository(pool)
	cartRepo := postgres.NewCartExitRepository(pool)
	registryRepo := postgres.NewRegistryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := inventory.NewUseCase(materialRepo)
	recordExitUC := exits.NewRecordExitUseCase(txRunner)
	historyUC := exits.NewHistoryUseCase(exitRepo, cartRepo, registryRepo)
	dashboardUC := analytics.NewDashboardUseCase(materialRepo, exitRepo, cartRepo)
	exportUC := export.NewUseCase()
	voucher := infrapdf.NewVoucherGenerator(cfg.App.Name)
	authUC := auth.NewUseCase(cfg.Auth.AdminPasswordHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "App Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InventoryUC: inventoryUC,
		RecordExit:  recordExitUC,
		History:     historyUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		Voucher:     voucher,
		JWTSecret:   cfg.JWT.Secret,
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
