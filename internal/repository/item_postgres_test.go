package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Ezio50/Microserv/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemColumns = []string{"id", "name", "description"}

func newPostgresRepository(t *testing.T) (*PostgresItemRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return NewPostgresItemRepository(mock), mock
}

func TestPostgresListItems(t *testing.T) {
	repo, mock := newPostgresRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(pgListItems)).
		WillReturnRows(pgxmock.NewRows(itemColumns).
			AddRow(int64(1), "lamp", "a desk lamp").
			AddRow(int64(2), "chair", "oak"))

	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		{ID: 1, Name: "lamp", Description: "a desk lamp"},
		{ID: 2, Name: "chair", Description: "oak"},
	}, items)
}

func TestPostgresListItemsEmpty(t *testing.T) {
	repo, mock := newPostgresRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(pgListItems)).
		WillReturnRows(pgxmock.NewRows(itemColumns))

	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPostgresGetItemNotFound(t *testing.T) {
	repo, mock := newPostgresRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(pgGetItem)).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(itemColumns))

	_, err := repo.GetItem(context.Background(), 5)
	require.ErrorIs(t, err, pgx.ErrNoRows)
	assert.Contains(t, err.Error(), "table:items")
}

func TestPostgresIDsBeyondInt4(t *testing.T) {
	const id = int64(3000000000)

	assert.Contains(t, pgGetItem, "$1::bigint")
	assert.Contains(t, pgDeleteItem, "$1::bigint")

	repo, mock := newPostgresRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(pgGetItem)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(itemColumns))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET name = $1 WHERE id = $2::bigint")).
		WithArgs("lamp", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(regexp.QuoteMeta(pgDeleteItem)).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	_, err := repo.GetItem(context.Background(), id)
	require.ErrorIs(t, err, pgx.ErrNoRows)

	found, err := repo.UpdateItem(context.Background(), id, model.ItemUpdate{Name: strPtr("lamp")})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repo.DeleteItem(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresCreateItem(t *testing.T) {
	repo, mock := newPostgresRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(pgCreateItem)).
		WithArgs("lamp", "a desk lamp").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.CreateItem(context.Background(), "lamp", "a desk lamp")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestPostgresUpdateItem(t *testing.T) {
	repo, mock := newPostgresRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET name = $1 WHERE id = $2::bigint")).
		WithArgs("lamp", int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	found, err := repo.UpdateItem(context.Background(), 3, model.ItemUpdate{Name: strPtr("lamp")})
	require.NoError(t, err)
	assert.True(t, found)
}

func TestPostgresUpdateItemMissingRow(t *testing.T) {
	repo, mock := newPostgresRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET name = $1, description = $2 WHERE id = $3::bigint")).
		WithArgs("lamp", "oak", int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	found, err := repo.UpdateItem(context.Background(), 9, model.ItemUpdate{
		Name:        strPtr("lamp"),
		Description: strPtr("oak"),
	})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresDeleteItem(t *testing.T) {
	repo, mock := newPostgresRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(pgDeleteItem)).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	found, err := repo.DeleteItem(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestPostgresDeleteItemError(t *testing.T) {
	repo, mock := newPostgresRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(pgDeleteItem)).
		WithArgs(int64(3)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.DeleteItem(context.Background(), 3)
	assert.ErrorContains(t, err, "connection reset")
}
