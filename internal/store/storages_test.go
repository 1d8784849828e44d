package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/models"
)

func TestNewStorages_FileRegistry(t *testing.T) {
	cfg := config.Storage{
		Files: config.Files{RegistryFile: filepath.Join(t.TempDir(), "id.json")},
	}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	_, ok := storages.PropertyRepository.(*filePropertyRepository)
	assert.True(t, ok)
}

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	cfg := config.Storage{DB: config.DB{DSN: "mysql://root@localhost/deeds"}}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

// TestNewStorages_SQLiteEndToEnd runs the SQL repository against a real
// SQLite file, migrations included.
func TestNewStorages_SQLiteEndToEnd(t *testing.T) {
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "registry.db")
	ctx := context.Background()

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.PropertyRepository
	old := time.Now().UTC().Add(-2 * time.Hour)

	require.NoError(t, repo.Reserve(ctx, models.PropertyEntry{IDHex: "A1B2C3", Owner: "0xowner", Encrypted: "payload"}))
	require.NoError(t, repo.Reserve(ctx, models.PropertyEntry{IDHex: "00000F", CreatedAt: &old}))
	assert.ErrorIs(t, repo.Reserve(ctx, models.PropertyEntry{IDHex: "A1B2C3"}), ErrIdentifierTaken)

	require.NoError(t, repo.Confirm(ctx, "A1B2C3", ""))
	entry, err := repo.UpdateDetails(ctx, "A1B2C3", "450000", []string{"/img/A1B2C3/1.jpg"}, "")
	require.NoError(t, err)
	assert.Equal(t, "450000", entry.HousingValue)
	assert.Equal(t, "0xowner", entry.Owner)
	assert.Equal(t, "payload", entry.Encrypted)

	released, err := repo.ReleaseExpired(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "A1B2C3", entries[0].IDHex)
	assert.True(t, entries[0].Confirmed)
	assert.Equal(t, []string{"/img/A1B2C3/1.jpg"}, entries[0].Images)

	_, err = repo.Get(ctx, "00000F")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
