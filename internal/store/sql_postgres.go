package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
)

// defaultMaxOpenConns applies when cfg.MaxOpenConns is not positive.
const defaultMaxOpenConns = 10

// NewConnectPostgres opens a pgx-backed pool for cfg.DSN, sizes it from cfg
// and pings the server before handing it out.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(driverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening postgres pool")
		return nil, fmt.Errorf("error opening postgres pool: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(max(1, maxOpen/2))
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("postgres is unreachable")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Int("max_open_conns", maxOpen).Msg("connected to postgres registry")

	return &DB{
		DB:                 conn,
		driver:             driverPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
		retryDelays:        defaultRetryDelays,
	}, nil
}

// postgresCode extracts the SQLSTATE from err, or "" for non-server errors.
func postgresCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
