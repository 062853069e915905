// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
// No other package issues queries against the items table.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Ezio50/Microserv/internal/model"
)

// itemsTable is the only table the service owns.
const itemsTable = "items"

// ErrNoFieldsToUpdate is returned by UpdateItem when the update is empty.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// ItemRepository is the storage gateway for items.
//
// Every method issues exactly one SQL statement.
type ItemRepository interface {
	// ListItems returns every item ordered by id ascending. No rows is an empty slice.
	ListItems(ctx context.Context) ([]model.Item, error)

	// GetItem returns the item with the given id. A missing row is reported as
	// a no-rows error tagged with the items table (see sqlerr.WithTable).
	GetItem(ctx context.Context, id int64) (*model.Item, error)

	// CreateItem inserts a row and returns the id assigned by the store.
	CreateItem(ctx context.Context, name, description string) (int64, error)

	// UpdateItem overwrites only the fields set in update and reports whether a row matched.
	UpdateItem(ctx context.Context, id int64, update model.ItemUpdate) (bool, error)

	// DeleteItem removes the row and reports whether a row matched.
	DeleteItem(ctx context.Context, id int64) (bool, error)
}

// buildItemUpdate builds the UPDATE statement for a partial update.
//
// Columns are visited in a fixed order (name, description) and only present
// fields are included. Values are always bound through placeholders; the id
// is the last argument and is rendered by idPlaceholder.
func buildItemUpdate(id int64, update model.ItemUpdate, placeholder, idPlaceholder func(n int) string) (string, []any, error) {
	fields := []struct {
		column string
		value  *string
	}{
		{column: "name", value: update.Name},
		{column: "description", value: update.Description},
	}

	var sets []string
	var args []any
	for _, field := range fields {
		if field.value == nil {
			continue
		}
		args = append(args, *field.value)
		sets = append(sets, field.column+" = "+placeholder(len(args)))
	}

	if len(sets) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	args = append(args, id)
	query := "UPDATE " + itemsTable + " SET " + strings.Join(sets, ", ") + " WHERE id = " + idPlaceholder(len(args))

	return query, args, nil
}
