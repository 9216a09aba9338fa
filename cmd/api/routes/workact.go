package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/handlers"
)

// RegisterWorkActRoutes registers the aggregate-root routes
func RegisterWorkActRoutes(g *echo.Group, handler *handlers.WorkActHandler) {
	g.POST("/work-acts", handler.Create)
	g.GET("/work-acts", handler.List)
	g.GET("/work-acts/:actId", handler.Get)
	g.PUT("/work-acts/:actId", handler.Update)
	g.DELETE("/work-acts/:actId", handler.Delete)
}

// RegisterApprovalRoutes registers the one-per-act sign-off routes
func RegisterApprovalRoutes(g *echo.Group, handler *handlers.ApprovalHandler) {
	g.PUT("/work-acts/:actId/approval", handler.Set)
	g.GET("/work-acts/:actId/approval", handler.Get)
	g.DELETE("/work-acts/:actId/approval", handler.Delete)
}
