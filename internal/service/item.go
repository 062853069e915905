package service

import (
	"context"
	"errors"

	"github.com/Ezio50/Microserv/internal/errs"
	"github.com/Ezio50/Microserv/internal/model"
	"github.com/Ezio50/Microserv/internal/repository"
	"github.com/Ezio50/Microserv/internal/server"
	"github.com/rs/zerolog"
)

const (
	msgItemNotFound     = "Item not found"
	msgNoFieldsToUpdate = "No fields to update"
)

// ItemService implements the item operations on top of an ItemRepository.
//
// Storage errors are returned wrapped; the global error handler turns them
// into HTTP responses.
type ItemService struct {
	server *server.Server
	repo   repository.ItemRepository
}

func NewItemService(s *server.Server, repo repository.ItemRepository) *ItemService {
	return &ItemService{
		server: s,
		repo:   repo,
	}
}

// List returns every item, oldest first.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListItems(ctx)
}

// Get returns one item. A missing item surfaces as a 404 through sqlerr.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	return s.repo.GetItem(ctx, id)
}

// Create stores a new item and returns its id.
func (s *ItemService) Create(ctx context.Context, name, description string) (int64, error) {
	id, err := s.repo.CreateItem(ctx, name, description)
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().Int64("item_id", id).Msg("item created")

	return id, nil
}

// Update overwrites the fields present in update.
func (s *ItemService) Update(ctx context.Context, id int64, update model.ItemUpdate) error {
	if update.Empty() {
		return errs.NewBadRequestError(msgNoFieldsToUpdate, nil)
	}

	found, err := s.repo.UpdateItem(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNoFieldsToUpdate) {
			return errs.NewBadRequestError(msgNoFieldsToUpdate, nil)
		}
		return err
	}
	if !found {
		return errs.NewNotFoundError(msgItemNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("item_id", id).Msg("item updated")

	return nil
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewNotFoundError(msgItemNotFound)
	}

	zerolog.Ctx(ctx).Info().Int64("item_id", id).Msg("item deleted")

	return nil
}
