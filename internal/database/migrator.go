package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	tern "github.com/jackc/tern/v2/migrate"
)

// Embed all SQL files under migrations/ at compile time.
// The binary carries its schema and does not depend on the filesystem at runtime.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// ternSeparator splits a tern migration into its up and down halves.
const ternSeparator = "---- create above / drop below ----"

// EnsureSchema creates the items table if it does not exist yet.
//
// It is idempotent and meant to run once at startup, before the HTTP
// listener accepts connections. Any error is fatal for the process.
func (db *Database) EnsureSchema(ctx context.Context) error {
	if db.Pool != nil {
		return db.migratePostgres(ctx)
	}
	return db.migrateSQLite(ctx)
}

// migratePostgres runs the embedded migrations using jackc/tern.
//
// Behavior:
//   - Acquire a single connection from the pool
//   - Create tern migrator and load embedded migrations
//   - Run migrations to latest
//   - Log whether it was already up-to-date or migrated
func (db *Database) migratePostgres(ctx context.Context) error {
	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring migration connection: %w", err)
	}
	defer conn.Release()

	// The applied version is stored in the schema_version table.
	m, err := tern.NewMigrator(ctx, conn.Conn(), "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	if from == int32(len(m.Migrations)) {
		db.log.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		db.log.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

// migrateSQLite executes the up half of every embedded sqlite migration in
// file order. The statements use IF NOT EXISTS, so re-running them is safe.
func (db *Database) migrateSQLite(ctx context.Context) error {
	files, err := fs.Glob(migrations, "migrations/sqlite/*.sql")
	if err != nil {
		return fmt.Errorf("listing sqlite migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrations, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}

		up := upMigration(string(content))
		if strings.TrimSpace(up) == "" {
			continue
		}

		if _, err := db.SQL.ExecContext(ctx, up); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}

	db.log.Info().Msgf("database schema up to date, version %d", len(files))
	return nil
}

// upMigration returns the part of a tern migration above the separator.
func upMigration(content string) string {
	up, _, _ := strings.Cut(content, ternSeparator)
	return up
}
