package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/Ezio50/Microserv/internal/server"
	"github.com/Ezio50/Microserv/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API reference UI.
//
// The page loads its renderer from a CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves openapi.html with caching disabled so doc updates show immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	page, err := fs.ReadFile(static.FS, "openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
