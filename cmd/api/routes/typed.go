package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/handlers"
)

// RegisterFaultRoutes registers fault-tick routes; rows are addressed by
// fault type
func RegisterFaultRoutes(g *echo.Group, handler *handlers.FaultHandler) {
	g.GET("/work-acts/:actId/faults", handler.List)
	g.POST("/work-acts/:actId/faults", handler.Add)
	g.GET("/work-acts/:actId/faults/:faultTypeId", handler.Get)
	g.PUT("/work-acts/:actId/faults/:faultTypeId", handler.Update)
	g.DELETE("/work-acts/:actId/faults/:faultTypeId", handler.Delete)
}

// RegisterBasisRoutes registers work-basis routes; rows are addressed by
// basis type
func RegisterBasisRoutes(g *echo.Group, handler *handlers.BasisHandler) {
	g.GET("/work-acts/:actId/basis", handler.List)
	g.POST("/work-acts/:actId/basis", handler.Add)
	g.GET("/work-acts/:actId/basis/:workBasisTypeId", handler.Get)
	g.PUT("/work-acts/:actId/basis/:workBasisTypeId", handler.Update)
	g.DELETE("/work-acts/:actId/basis/:workBasisTypeId", handler.Delete)
}
