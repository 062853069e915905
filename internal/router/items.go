package router

import (
	"net/http"

	"github.com/Ezio50/Microserv/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	items := r.Group("/items")
	ih := h.Item

	items.GET("", handler.Handle(ih.Handler, ih.ListItems, http.StatusOK, &handler.ListItemsRequest{}))
	items.POST("", handler.Handle(ih.Handler, ih.CreateItem, http.StatusCreated, &handler.CreateItemRequest{}))
	items.GET("/:id", handler.Handle(ih.Handler, ih.GetItem, http.StatusOK, &handler.ItemByIDRequest{}))
	items.PATCH("/:id", handler.Handle(ih.Handler, ih.UpdateItem, http.StatusOK, &handler.UpdateItemRequest{}))
	items.DELETE("/:id", handler.Handle(ih.Handler, ih.DeleteItem, http.StatusOK, &handler.ItemByIDRequest{}))
}
