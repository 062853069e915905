package handler

import (
	"github.com/Ezio50/Microserv/internal/server"
	"github.com/Ezio50/Microserv/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object around.
type Handlers struct {
	Home    *HomeHandler    // Home serves the HTML help page at "/".
	Item    *ItemHandler    // Item serves the /items resource.
	Health  *HealthHandler  // Health serves the service health endpoint.
	OpenAPI *OpenAPIHandler // OpenAPI serves the API reference UI.
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Item:    NewItemHandler(s, services.Item),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
