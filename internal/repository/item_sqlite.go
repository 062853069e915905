package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Ezio50/Microserv/internal/model"
	"github.com/Ezio50/Microserv/internal/sqlerr"
)

const (
	sqliteListItems  = `SELECT id, name, description FROM items ORDER BY id ASC`
	sqliteGetItem    = `SELECT id, name, description FROM items WHERE id = ?`
	sqliteCreateItem = `INSERT INTO items (name, description) VALUES (?, ?) RETURNING id`
	sqliteDeleteItem = `DELETE FROM items WHERE id = ?`
)

// SQLiteItemRepository stores items in SQLite through database/sql.
type SQLiteItemRepository struct {
	db *sql.DB
}

func NewSQLiteItemRepository(db *sql.DB) *SQLiteItemRepository {
	return &SQLiteItemRepository{db: db}
}

func sqlitePlaceholder(int) string {
	return "?"
}

func (r *SQLiteItemRepository) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, sqliteListItems)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (r *SQLiteItemRepository) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item

	err := r.db.QueryRowContext(ctx, sqliteGetItem, id).Scan(&item.ID, &item.Name, &item.Description)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, sqlerr.WithTable(itemsTable, err))
	}

	return &item, nil
}

func (r *SQLiteItemRepository) CreateItem(ctx context.Context, name, description string) (int64, error) {
	var id int64

	if err := r.db.QueryRowContext(ctx, sqliteCreateItem, name, description).Scan(&id); err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}

	return id, nil
}

func (r *SQLiteItemRepository) UpdateItem(ctx context.Context, id int64, update model.ItemUpdate) (bool, error) {
	query, args, err := buildItemUpdate(id, update, sqlitePlaceholder, sqlitePlaceholder)
	if err != nil {
		return false, err
	}

	return r.exec(ctx, query, args...)
}

func (r *SQLiteItemRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	return r.exec(ctx, sqliteDeleteItem, id)
}

// exec runs a single-row statement and reports whether a row was affected.
func (r *SQLiteItemRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("exec %q: %w", query, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return affected > 0, nil
}

var _ ItemRepository = (*SQLiteItemRepository)(nil)
