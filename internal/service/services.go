package service

import (
	"github.com/Ezio50/Microserv/internal/repository"
	"github.com/Ezio50/Microserv/internal/server"
)

type Services struct {
	Item *ItemService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Item: NewItemService(s, repos.Item),
	}, nil
}
