package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the route search endpoints onto the Echo instance.
func RegisterRoutes(e *echo.Echo, h *RouteHandler) {
	// Health check at root level for load balancers.
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.POST("/routes/search", h.SearchRoutes)
}
