package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/handlers"
)

// RegisterBrigadeRoutes registers brigade roster routes
func RegisterBrigadeRoutes(g *echo.Group, handler *handlers.BrigadeHandler) {
	g.GET("/work-acts/:actId/brigade", handler.List)
	g.POST("/work-acts/:actId/brigade", handler.Add)
	g.GET("/work-acts/:actId/brigade/:id", handler.Get)
	g.PUT("/work-acts/:actId/brigade/:id", handler.Update)
	g.DELETE("/work-acts/:actId/brigade/:id", handler.Delete)
}

// RegisterDismantledEquipmentRoutes registers removed-equipment routes
func RegisterDismantledEquipmentRoutes(g *echo.Group, handler *handlers.DismantledEquipmentHandler) {
	g.GET("/work-acts/:actId/dismantled-equipment", handler.List)
	g.POST("/work-acts/:actId/dismantled-equipment", handler.Add)
	g.GET("/work-acts/:actId/dismantled-equipment/:id", handler.Get)
	g.PUT("/work-acts/:actId/dismantled-equipment/:id", handler.Update)
	g.DELETE("/work-acts/:actId/dismantled-equipment/:id", handler.Delete)
}

// RegisterInstalledEquipmentRoutes registers installed-equipment routes
func RegisterInstalledEquipmentRoutes(g *echo.Group, handler *handlers.InstalledEquipmentHandler) {
	g.GET("/work-acts/:actId/installed-equipment", handler.List)
	g.POST("/work-acts/:actId/installed-equipment", handler.Add)
	g.GET("/work-acts/:actId/installed-equipment/:id", handler.Get)
	g.PUT("/work-acts/:actId/installed-equipment/:id", handler.Update)
	g.DELETE("/work-acts/:actId/installed-equipment/:id", handler.Delete)
}

// RegisterEquipmentUsageRoutes registers machinery-usage routes
func RegisterEquipmentUsageRoutes(g *echo.Group, handler *handlers.EquipmentUsageHandler) {
	g.GET("/work-acts/:actId/equipment-usage", handler.List)
	g.POST("/work-acts/:actId/equipment-usage", handler.Add)
	g.GET("/work-acts/:actId/equipment-usage/:id", handler.Get)
	g.PUT("/work-acts/:actId/equipment-usage/:id", handler.Update)
	g.DELETE("/work-acts/:actId/equipment-usage/:id", handler.Delete)
}

// RegisterLaborItemRoutes registers labor-line routes
func RegisterLaborItemRoutes(g *echo.Group, handler *handlers.LaborItemHandler) {
	g.GET("/work-acts/:actId/labor-items", handler.List)
	g.POST("/work-acts/:actId/labor-items", handler.Add)
	g.GET("/work-acts/:actId/labor-items/:id", handler.Get)
	g.PUT("/work-acts/:actId/labor-items/:id", handler.Update)
	g.DELETE("/work-acts/:actId/labor-items/:id", handler.Delete)
}

// RegisterMaterialRoutes registers material-line routes
func RegisterMaterialRoutes(g *echo.Group, handler *handlers.MaterialHandler) {
	g.GET("/work-acts/:actId/materials", handler.List)
	g.POST("/work-acts/:actId/materials", handler.Add)
	g.GET("/work-acts/:actId/materials/:id", handler.Get)
	g.PUT("/work-acts/:actId/materials/:id", handler.Update)
	g.DELETE("/work-acts/:actId/materials/:id", handler.Delete)
}

// RegisterPerformedWorkRoutes registers performed-work routes
func RegisterPerformedWorkRoutes(g *echo.Group, handler *handlers.PerformedWorkHandler) {
	g.GET("/work-acts/:actId/performed-works", handler.List)
	g.POST("/work-acts/:actId/performed-works", handler.Add)
	g.GET("/work-acts/:actId/performed-works/:id", handler.Get)
	g.PUT("/work-acts/:actId/performed-works/:id", handler.Update)
	g.DELETE("/work-acts/:actId/performed-works/:id", handler.Delete)
}
