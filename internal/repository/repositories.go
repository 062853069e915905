package repository

import (
	"github.com/Ezio50/Microserv/internal/config"
	"github.com/Ezio50/Microserv/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Item ItemRepository
}

// NewRepositories constructs the repository container on top of the
// database handle opened by the server (s.DB).
func NewRepositories(s *server.Server) *Repositories {
	var items ItemRepository

	switch s.DB.Driver {
	case config.DriverSQLite:
		items = NewSQLiteItemRepository(s.DB.SQL)
	default:
		items = NewPostgresItemRepository(s.DB.Pool)
	}

	return &Repositories{
		Item: items,
	}
}
