package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/identifier"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/models"
)

// propertyRepository is the SQL implementation of [PropertyRepository]
// backed by the "properties" table. It works on PostgreSQL and SQLite.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] and runs its statements through [DB.withRetry].
type propertyRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPropertyRepository constructs a [PropertyRepository] backed by the
// provided database connection and logger.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating property repository")
	return &propertyRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (models.PropertyEntry, error) {
	var (
		entry     models.PropertyEntry
		images    string
		createdAt time.Time
	)

	err := row.Scan(
		&entry.IDHex,
		&images,
		&entry.HousingValue,
		&entry.TokenAddress,
		&entry.Owner,
		&entry.Encrypted,
		&entry.Confirmed,
		&createdAt,
	)
	if err != nil {
		return models.PropertyEntry{}, err
	}

	entry.Images, err = decodeImages(images)
	if err != nil {
		return models.PropertyEntry{}, fmt.Errorf("decoding images of %s: %w", entry.IDHex, err)
	}
	entry.CreatedAt = &createdAt

	return entry, nil
}

// ExistingIDs implements [PropertyRepository].
func (r *propertyRepository) ExistingIDs(ctx context.Context) (identifier.IDSet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIDsQuery()
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.ExistingIDs").Msg("failed to create query")
		return nil, err
	}

	var ids identifier.IDSet
	err = r.withRetry(ctx, "ExistingIDs", func() error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		found := identifier.NewIDSet()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			found.Add(id)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		ids = found
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.ExistingIDs").Msg("failed to read identifiers")
		return nil, err
	}

	return ids, nil
}

// Reserve implements [PropertyRepository].
func (r *propertyRepository) Reserve(ctx context.Context, entry models.PropertyEntry) error {
	log := logger.FromContext(ctx)

	if entry.CreatedAt == nil {
		now := r.now()
		entry.CreatedAt = &now
	}
	entry.Confirmed = false

	query, args, err := buildReserveQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.Reserve").Msg("failed to create query")
		return err
	}

	var affected int64
	err = r.withRetry(ctx, "Reserve", func() error {
		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.Reserve").Str("id_hex", entry.IDHex).Msg("failed to reserve identifier")
		return err
	}

	if affected == 0 {
		log.Debug().Str("func", "propertyRepository.Reserve").Str("id_hex", entry.IDHex).Msg("identifier already taken")
		return ErrIdentifierTaken
	}

	return nil
}

// Confirm implements [PropertyRepository].
func (r *propertyRepository) Confirm(ctx context.Context, idHex, owner string) error {
	_, err := r.mutate(ctx, "Confirm", idHex, func(e *models.PropertyEntry) {
		applyConfirm(e, owner)
	})
	return err
}

// SetToken implements [PropertyRepository].
func (r *propertyRepository) SetToken(ctx context.Context, idHex, tokenAddress, owner string) (models.PropertyEntry, error) {
	return r.mutate(ctx, "SetToken", idHex, func(e *models.PropertyEntry) {
		applyToken(e, tokenAddress, owner)
	})
}

// UpdateDetails implements [PropertyRepository].
func (r *propertyRepository) UpdateDetails(ctx context.Context, idHex, housingValue string, images []string, owner string) (models.PropertyEntry, error) {
	return r.mutate(ctx, "UpdateDetails", idHex, func(e *models.PropertyEntry) {
		applyDetails(e, housingValue, images, owner)
	})
}

// mutate runs a read-modify-write of one entry in a transaction: it creates
// the row if missing, reads it (locked on PostgreSQL), applies fn and writes
// the result back. The whole transaction is retried on transient errors.
func (r *propertyRepository) mutate(ctx context.Context, op, idHex string, fn func(*models.PropertyEntry)) (models.PropertyEntry, error) {
	log := logger.FromContext(ctx)

	ensureQuery, ensureArgs, err := buildEnsurePropertyQuery(idHex, r.now())
	if err != nil {
		log.Err(err).Str("func", "propertyRepository."+op).Msg("failed to create query")
		return models.PropertyEntry{}, err
	}
	selectQuery, selectArgs, err := buildSelectPropertyQuery(idHex, r.supportsRowLocks())
	if err != nil {
		log.Err(err).Str("func", "propertyRepository."+op).Msg("failed to create query")
		return models.PropertyEntry{}, err
	}

	var result models.PropertyEntry
	err = r.withRetry(ctx, op, func() error {
		tx, err := r.DB.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback() //nolint:errcheck

		if _, err := tx.ExecContext(ctx, ensureQuery, ensureArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		entry, err := scanProperty(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		fn(&entry)

		updateQuery, updateArgs, err := buildUpdatePropertyQuery(entry)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		result = entry
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "propertyRepository."+op).Str("id_hex", idHex).Msg("failed to update property")
		return models.PropertyEntry{}, err
	}

	return result, nil
}

// Get implements [PropertyRepository].
func (r *propertyRepository) Get(ctx context.Context, idHex string) (models.PropertyEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPropertyQuery(idHex, false)
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.Get").Msg("failed to create query")
		return models.PropertyEntry{}, err
	}

	var entry models.PropertyEntry
	err = r.withRetry(ctx, "Get", func() error {
		found, err := scanProperty(r.DB.QueryRowContext(ctx, query, args...))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrPropertyNotFound
			}
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entry = found
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPropertyNotFound) {
			log.Err(err).Str("func", "propertyRepository.Get").Str("id_hex", idHex).Msg("failed to get property")
		}
		return models.PropertyEntry{}, err
	}

	return entry, nil
}

// List implements [PropertyRepository].
func (r *propertyRepository) List(ctx context.Context) ([]models.PropertyEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPropertiesQuery()
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.List").Msg("failed to create query")
		return nil, err
	}

	var entries []models.PropertyEntry
	err = r.withRetry(ctx, "List", func() error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		results := make([]models.PropertyEntry, 0, 50)
		for rows.Next() {
			entry, err := scanProperty(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			results = append(results, entry)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		entries = results
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.List").Msg("failed to list properties")
		return nil, err
	}

	return entries, nil
}

// ReleaseExpired implements [PropertyRepository].
func (r *propertyRepository) ReleaseExpired(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReleaseExpiredQuery(before.UTC())
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.ReleaseExpired").Msg("failed to create query")
		return 0, err
	}

	var released int64
	err = r.withRetry(ctx, "ReleaseExpired", func() error {
		res, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		released, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "propertyRepository.ReleaseExpired").Msg("failed to release reservations")
		return 0, err
	}

	return released, nil
}
