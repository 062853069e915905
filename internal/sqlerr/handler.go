// Package sqlerr turns database driver errors into HTTP errors.
//
// A missing row becomes a 404 named after its table ("Item not found").
// Every other driver error, constraint violations included, is an
// internal error: the client gets a generic 500 and the cause is logged.
package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Ezio50/Microserv/internal/errs"

	"github.com/jackc/pgx/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tablePrefix marks the table a no-rows error belongs to, e.g.
// "table:items: no rows in result set".
const tablePrefix = "table:"

// WithTable tags err with the table it happened on so HandleError can name
// the missing entity ("Item not found").
func WithTable(table string, err error) error {
	return fmt.Errorf("%s%s: %w", tablePrefix, table, err)
}

// getEntityName turns a table name into an entity name, singularized if it
// ends with "s" ("items" -> "Item"). Without a table it returns "Resource".
func getEntityName(tableName string) string {
	if tableName == "" {
		return "Resource"
	}

	entity := tableName
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return humanizeText(entity)
}

// humanizeText converts snake_case into Title Case ("line_items" -> "Line Items").
func humanizeText(text string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// tableOf extracts the table recorded by WithTable, or "".
func tableOf(err error) string {
	_, rest, found := strings.Cut(err.Error(), tablePrefix)
	if !found {
		return ""
	}
	table, _, _ := strings.Cut(rest, ":")
	return table
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If ErrNoRows (pgx or database/sql): a 404, named after the table when tagged with WithTable
//   - Otherwise: errs.NewInternalServerError carrying err for the logs
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		entityName := getEntityName(tableOf(err))
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName)).WithInternal(err)
	}

	return errs.NewInternalServerError().WithInternal(err)
}
