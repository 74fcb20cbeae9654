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

	appanalytics "github.com/jhoicas/Inventario-panel/internal/application/analytics"
	"github.com/jhoicas/Inventario-panel/internal/application/inventory"
	"github.com/jhoicas/Inventario-panel/internal/application/usecase"
	"github.com/jhoicas/Inventario-panel/internal/infrastructure/memstore"
	httpRouter "github.com/jhoicas/Inventario-panel/internal/interfaces/http"
	"github.com/jhoicas/Inventario-panel/internal/interfaces/ws"
	"github.com/jhoicas/Inventario-panel/pkg/config"
	"github.com/jhoicas/Inventario-panel/pkg/logger"
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

	// Store en memoria: el "backend" del panel mientras no exista API real.
	productStore := memstore.NewProductStore(memstore.SeedProducts())
	warehouseStore := memstore.NewWarehouseStore(memstore.SeedWarehouses())

	hub := ws.NewHub(log)
	go hub.Run()

	productUC := usecase.NewProductUseCase(productStore)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseStore)
	mutationUC := inventory.NewMutationUseCase(productStore, warehouseStore, hub)
	kpiUC := appanalytics.NewKpiUseCase()

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
		Title:    "Inventario Panel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		MutationUC:  mutationUC,
		KpiUC:       kpiUC,
		Hub:         hub,
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
