package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/Ezio50/Microserv/internal/server"
	"github.com/Ezio50/Microserv/static"
	"github.com/labstack/echo/v4"
)

// HomeHandler serves the HTML help page describing the API.
type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

func (h *HomeHandler) ServeHelp(c echo.Context) error {
	page, err := fs.ReadFile(static.FS, "index.html")
	if err != nil {
		return fmt.Errorf("failed to read help page: %w", err)
	}

	return c.HTMLBlob(http.StatusOK, page)
}
