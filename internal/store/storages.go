package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
)

// Storages groups the storage layer handed to the service layer.
type Storages struct {
	// PropertyRepository is the property registry.
	PropertyRepository PropertyRepository

	// db is the SQL connection when a DSN is configured, nil otherwise.
	db *DB
}

// NewStorages initialises the storage layer from cfg:
//  1. When cfg.DB.DSN is set it opens PostgreSQL or SQLite (picked from the
//     DSN form), runs the embedded migrations and uses the SQL repository.
//  2. Otherwise it uses the JSON registry at cfg.Files.RegistryFile.
//
// Returns an error if the connection, the migration or the registry file
// cannot be set up.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		repo, err := NewFilePropertyRepository(cfg.Files.RegistryFile, log)
		if err != nil {
			return nil, fmt.Errorf("registry file error: %w", err)
		}
		log.Info().Str("registry_file", cfg.Files.RegistryFile).Msg("using JSON registry file")
		return &Storages{PropertyRepository: repo}, nil
	}

	driver, dsn, err := driverFromDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch driver {
	case driverPostgres:
		pgCfg := cfg.DB
		pgCfg.DSN = dsn
		db, err = NewConnectPostgres(ctx, pgCfg, log)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", driver, err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		PropertyRepository: NewPropertyRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
