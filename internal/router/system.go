package router

import (
	"github.com/Ezio50/Microserv/internal/handler"
	"github.com/Ezio50/Microserv/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the items API:
// the help page, health, docs UI and the embedded static files.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Home.ServeHelp)

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
