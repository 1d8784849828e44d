package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/migrations"
)

// Driver names registered with database/sql.
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps a *sql.DB together with the driver-specific pieces the repository
// needs: the driver name, the error classifier and the retry schedule.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	retryDelays        []time.Duration
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connected driver.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.driver)
	if err != nil {
		return err
	}
	db.logger.Info().Str("driver", db.driver).Int("applied", applied).Msg("registry schema is up to date")
	return nil
}

// supportsRowLocks reports whether SELECT … FOR UPDATE is available.
// SQLite serializes writers instead, see NewConnectSQLite.
func (db *DB) supportsRowLocks() bool {
	return db.driver == driverPostgres
}

// driverFromDSN picks a driver for dsn and returns the DSN in the form that
// driver expects:
//   - "postgres://…", "postgresql://…" or a key=value string → pgx;
//   - "sqlite://path" → sqlite3 with the prefix stripped;
//   - "file:…" or a path ending in ".db"/".sqlite" → sqlite3 as is.
func driverFromDSN(dsn string) (driver string, driverDSN string, err error) {
	lower := strings.ToLower(dsn)
	switch {
	case dsn == "":
		return "", "", ErrUnsupportedDSN
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return driverPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return driverSQLite, dsn[len("sqlite://"):], nil
	case strings.HasPrefix(lower, "file:"),
		strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"),
		strings.HasSuffix(lower, ".sqlite3"):
		return driverSQLite, dsn, nil
	case strings.Contains(lower, "host=") || strings.Contains(lower, "dbname="):
		return driverPostgres, dsn, nil
	}

	return "", "", ErrUnsupportedDSN
}
