package main

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/eternallight/backend/cmd/api/container"
	"github.com/eternallight/backend/cmd/api/handlers"
	"github.com/eternallight/backend/cmd/api/middleware"
	"github.com/eternallight/backend/cmd/api/routes"
	"github.com/eternallight/backend/common/bootstrap"
	"github.com/eternallight/backend/common/config"
	"github.com/eternallight/backend/common/db"
	"github.com/eternallight/backend/common/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Bootstrap common components (DB, logger, queue, cache, telemetry);
	// the init hook brings the schema up before the first request
	components, err := bootstrap.Setup(ctx, "api",
		bootstrap.WithCustomConfig(cfg),
		bootstrap.WithDBInitHook(func(database *db.DB) error {
			return db.Migrate(ctx, database, cfg.Features.CascadeDelete)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap api: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	serviceContainer, err := container.NewContainer(components)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize service container: %v\n", err)
		os.Exit(1)
	}
	defer serviceContainer.Close()

	e := setupEcho()
	setupMiddleware(e)
	setupHealthCheck(e, components)
	registerRoutes(e, serviceContainer)

	srv := server.New("api", cfg.Service.Port, e, components.Logger)
	if err := srv.Start(); err != nil {
		components.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// setupEcho initializes the Echo server with basic configuration
func setupEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	return e
}

// setupMiddleware configures all middleware for the Echo server
func setupMiddleware(e *echo.Echo) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestID())
	e.Use(middleware.ExtractUsername())
}

// setupHealthCheck registers the health check endpoint
func setupHealthCheck(e *echo.Echo, components *bootstrap.Components) {
	e.GET("/health", func(c echo.Context) error {
		if err := components.Health(c.Request().Context()); err != nil {
			return c.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(200, map[string]string{
			"status":  "ok",
			"service": "api",
		})
	})
}

// registerRoutes registers all application routes using the service container
func registerRoutes(e *echo.Echo, c *container.Container) {
	g := e.Group("/api/v1")
	components := c.Components

	routes.RegisterWorkActRoutes(g, handlers.NewWorkActHandler(components, c.WorkActService))
	routes.RegisterApprovalRoutes(g, handlers.NewApprovalHandler(components, c.ApprovalService))
	routes.RegisterFaultRoutes(g, handlers.NewFaultHandler(components, c.FaultService))
	routes.RegisterBasisRoutes(g, handlers.NewBasisHandler(components, c.BasisService))
	routes.RegisterBrigadeRoutes(g, handlers.NewBrigadeHandler(components, c.BrigadeService))
	routes.RegisterDismantledEquipmentRoutes(g, handlers.NewDismantledEquipmentHandler(components, c.DismantledEquipmentService))
	routes.RegisterInstalledEquipmentRoutes(g, handlers.NewInstalledEquipmentHandler(components, c.InstalledEquipmentService))
	routes.RegisterEquipmentUsageRoutes(g, handlers.NewEquipmentUsageHandler(components, c.EquipmentUsageService))
	routes.RegisterLaborItemRoutes(g, handlers.NewLaborItemHandler(components, c.LaborItemService))
	routes.RegisterMaterialRoutes(g, handlers.NewMaterialHandler(components, c.MaterialService))
	routes.RegisterPerformedWorkRoutes(g, handlers.NewPerformedWorkHandler(components, c.PerformedWorkService))
}
