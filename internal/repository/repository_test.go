package repository

import (
	"testing"

	"github.com/Ezio50/Microserv/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildItemUpdate(t *testing.T) {
	tests := []struct {
		name          string
		update        model.ItemUpdate
		placeholder   func(int) string
		idPlaceholder func(int) string
		query         string
		args          []any
	}{
		{
			name:          "name only",
			update:        model.ItemUpdate{Name: strPtr("lamp")},
			placeholder:   pgPlaceholder,
			idPlaceholder: pgIDPlaceholder,
			query:         "UPDATE items SET name = $1 WHERE id = $2::bigint",
			args:          []any{"lamp", int64(7)},
		},
		{
			name:          "description only",
			update:        model.ItemUpdate{Description: strPtr("bright")},
			placeholder:   pgPlaceholder,
			idPlaceholder: pgIDPlaceholder,
			query:         "UPDATE items SET description = $1 WHERE id = $2::bigint",
			args:          []any{"bright", int64(7)},
		},
		{
			name:          "both fields keep column order",
			update:        model.ItemUpdate{Description: strPtr("bright"), Name: strPtr("lamp")},
			placeholder:   pgPlaceholder,
			idPlaceholder: pgIDPlaceholder,
			query:         "UPDATE items SET name = $1, description = $2 WHERE id = $3::bigint",
			args:          []any{"lamp", "bright", int64(7)},
		},
		{
			name:          "sqlite placeholders",
			update:        model.ItemUpdate{Name: strPtr("lamp"), Description: strPtr("bright")},
			placeholder:   sqlitePlaceholder,
			idPlaceholder: sqlitePlaceholder,
			query:         "UPDATE items SET name = ?, description = ? WHERE id = ?",
			args:          []any{"lamp", "bright", int64(7)},
		},
		{
			name:          "values are never inlined",
			update:        model.ItemUpdate{Name: strPtr("x'; DROP TABLE items; --")},
			placeholder:   sqlitePlaceholder,
			idPlaceholder: sqlitePlaceholder,
			query:         "UPDATE items SET name = ? WHERE id = ?",
			args:          []any{"x'; DROP TABLE items; --", int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildItemUpdate(7, tt.update, tt.placeholder, tt.idPlaceholder)
			require.NoError(t, err)
			assert.Equal(t, tt.query, query)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBuildItemUpdateEmpty(t *testing.T) {
	_, _, err := buildItemUpdate(1, model.ItemUpdate{}, pgPlaceholder, pgIDPlaceholder)
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}
