package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// dialects maps database/sql driver names to goose dialects.
var dialects = map[string]goose.Dialect{
	"pgx":     goose.DialectPostgres,
	"sqlite3": goose.DialectSQLite3,
}

// Migrate brings the registry schema up to date and returns how many
// migrations were applied. driver is the database/sql driver name the
// connection was opened with.
func Migrate(ctx context.Context, db *sql.DB, driver string) (int, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return 0, fmt.Errorf("migration error: no dialect for driver %q", driver)
	}

	provider, err := goose.NewProvider(dialect, db, embedMigrations)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}
