package handler

import (
	"github.com/Ezio50/Microserv/internal/model"
	"github.com/Ezio50/Microserv/internal/server"
	"github.com/Ezio50/Microserv/internal/service"
	"github.com/labstack/echo/v4"
)

// ItemHandler serves the /items resource.
type ItemHandler struct {
	Handler
	items *service.ItemService
}

func NewItemHandler(s *server.Server, items *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   items,
	}
}

func (h *ItemHandler) ListItems(c echo.Context, _ *ListItemsRequest) ([]model.Item, error) {
	return h.items.List(c.Request().Context())
}

func (h *ItemHandler) GetItem(c echo.Context, req *ItemByIDRequest) (*model.Item, error) {
	return h.items.Get(c.Request().Context(), req.ID)
}

func (h *ItemHandler) CreateItem(c echo.Context, req *CreateItemRequest) (*CreateItemResponse, error) {
	id, err := h.items.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	return &CreateItemResponse{Message: "Item created", ID: id}, nil
}

func (h *ItemHandler) UpdateItem(c echo.Context, req *UpdateItemRequest) (*MessageResponse, error) {
	if err := h.items.Update(c.Request().Context(), req.ID, req.Update()); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Item updated"}, nil
}

func (h *ItemHandler) DeleteItem(c echo.Context, req *ItemByIDRequest) (*MessageResponse, error) {
	if err := h.items.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Item deleted"}, nil
}
