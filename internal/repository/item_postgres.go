package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Ezio50/Microserv/internal/model"
	"github.com/Ezio50/Microserv/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgListItems  = `SELECT id, name, description FROM items ORDER BY id ASC`
	pgGetItem    = `SELECT id, name, description FROM items WHERE id = $1::bigint`
	pgCreateItem = `INSERT INTO items (name, description) VALUES ($1, $2) RETURNING id`
	pgDeleteItem = `DELETE FROM items WHERE id = $1::bigint`
)

// PgxQuerier is the part of *pgxpool.Pool the repository uses.
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresItemRepository stores items in PostgreSQL through pgx.
type PostgresItemRepository struct {
	db PgxQuerier
}

func NewPostgresItemRepository(db PgxQuerier) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func pgPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// pgIDPlaceholder casts the id argument so ids past the int4 range of the
// SERIAL column compare as "no match" instead of failing to encode.
func pgIDPlaceholder(n int) string {
	return pgPlaceholder(n) + "::bigint"
}

func scanItem(row pgx.CollectableRow) (model.Item, error) {
	var item model.Item
	err := row.Scan(&item.ID, &item.Name, &item.Description)
	return item, err
}

func (r *PostgresItemRepository) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.Query(ctx, pgListItems)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}

	return items, nil
}

func (r *PostgresItemRepository) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item

	err := r.db.QueryRow(ctx, pgGetItem, id).Scan(&item.ID, &item.Name, &item.Description)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, sqlerr.WithTable(itemsTable, err))
	}

	return &item, nil
}

func (r *PostgresItemRepository) CreateItem(ctx context.Context, name, description string) (int64, error) {
	var id int64

	if err := r.db.QueryRow(ctx, pgCreateItem, name, description).Scan(&id); err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}

	return id, nil
}

func (r *PostgresItemRepository) UpdateItem(ctx context.Context, id int64, update model.ItemUpdate) (bool, error) {
	query, args, err := buildItemUpdate(id, update, pgPlaceholder, pgIDPlaceholder)
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update item %d: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresItemRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, pgDeleteItem, id)
	if err != nil {
		return false, fmt.Errorf("delete item %d: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

var _ ItemRepository = (*PostgresItemRepository)(nil)
