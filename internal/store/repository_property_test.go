package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/models"
)

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestPropertyRepo(t *testing.T, driver string) (*propertyRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &propertyRepository{
		DB: &DB{
			DB:                 db,
			driver:             driver,
			errorClassificator: NewPostgresErrorClassifier(),
			retryDelays:        []time.Duration{0, 0, 0},
			logger:             l,
		},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func propertyRows() *sqlmock.Rows {
	return sqlmock.NewRows(propertyColumns)
}

// ── ExistingIDs ───────────────────────────────────────────────────────────────

func TestPropertyRepository_ExistingIDs(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectQuery("SELECT id_hex FROM properties").
		WillReturnRows(sqlmock.NewRows([]string{"id_hex"}).AddRow("A1B2C3").AddRow("00000F"))

	ids, err := repo.ExistingIDs(context.Background())
	require.NoError(t, err)

	assert.Len(t, ids, 2)
	assert.True(t, ids.Has("A1B2C3"))
	assert.True(t, ids.Has("00000F"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_ExistingIDs_RetriesTransientError(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectQuery("SELECT id_hex FROM properties").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT id_hex FROM properties").
		WillReturnRows(sqlmock.NewRows([]string{"id_hex"}).AddRow("ABCDEF"))

	ids, err := repo.ExistingIDs(context.Background())
	require.NoError(t, err)
	assert.True(t, ids.Has("ABCDEF"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_ExistingIDs_PermanentError(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectQuery("SELECT id_hex FROM properties").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.ExistingIDs(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Reserve ───────────────────────────────────────────────────────────────────

func TestPropertyRepository_Reserve(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "inserted", affected: 1, wantErr: nil},
		{name: "already taken", affected: 0, wantErr: ErrIdentifierTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPropertyRepo(t, driverPostgres)

			mock.ExpectExec(`INSERT INTO properties \(id_hex,images,housing_value,token_address,owner,encrypted,confirmed,created_at\)`).
				WithArgs("A1B2C3", "[]", "", "", "0xowner", "payload", false, fixedNow).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Reserve(context.Background(), models.PropertyEntry{
				IDHex:     "A1B2C3",
				Owner:     "0xowner",
				Encrypted: "payload",
				Confirmed: true, // ignored: reservations start unconfirmed
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── mutations ─────────────────────────────────────────────────────────────────

func TestPropertyRepository_UpdateDetails_Postgres(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO properties \(id_hex,created_at\)`).
		WithArgs("A1B2C3", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM properties WHERE id_hex = \$1 FOR UPDATE`).
		WithArgs("A1B2C3").
		WillReturnRows(propertyRows().AddRow("A1B2C3", `["/img/old.jpg"]`, "", "", "0xold", "payload", false, fixedNow))
	mock.ExpectExec(`UPDATE properties SET`).
		WithArgs(`["/img/old.jpg","/img/1.jpg","/img/2.jpg","/img/3.jpg"]`, "500000", "", "0xnew", true, "A1B2C3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entry, err := repo.UpdateDetails(context.Background(), "A1B2C3", "500000",
		[]string{"/img/1.jpg", "/img/2.jpg", "/img/3.jpg", "/img/4.jpg"}, "0xnew")
	require.NoError(t, err)

	assert.Equal(t, "500000", entry.HousingValue)
	assert.Equal(t, "0xnew", entry.Owner)
	assert.True(t, entry.Confirmed)
	assert.Equal(t, []string{"/img/old.jpg", "/img/1.jpg", "/img/2.jpg", "/img/3.jpg"}, entry.Images)
	assert.Equal(t, "payload", entry.Encrypted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_SetToken_SQLiteHasNoRowLock(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverSQLite)
	token := "0xAbCdEf0123456789abcdef0123456789ABCDEF01"

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO properties`).
		WithArgs("0000FF", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM properties WHERE id_hex = \$1$`).
		WithArgs("0000FF").
		WillReturnRows(propertyRows().AddRow("0000FF", "[]", "", "", "", "", false, fixedNow))
	mock.ExpectExec(`UPDATE properties SET`).
		WithArgs("[]", "", token, "", true, "0000FF").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entry, err := repo.SetToken(context.Background(), "0000FF", token, "")
	require.NoError(t, err)
	assert.Equal(t, token, entry.TokenAddress)
	assert.True(t, entry.Confirmed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Confirm_RetriesWholeTransaction(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO properties`).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO properties`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM properties`).
		WillReturnRows(propertyRows().AddRow("A1B2C3", "[]", "", "", "", "", false, fixedNow))
	mock.ExpectExec(`UPDATE properties SET`).
		WithArgs("[]", "", "", "0xowner", true, "A1B2C3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Confirm(context.Background(), "A1B2C3", "0xowner"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Confirm_BeginFails(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err := repo.Confirm(context.Background(), "A1B2C3", "")
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Get / List ────────────────────────────────────────────────────────────────

func TestPropertyRepository_Get(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectQuery(`SELECT (.+) FROM properties WHERE id_hex = \$1`).
		WithArgs("A1B2C3").
		WillReturnRows(propertyRows().AddRow("A1B2C3", `["a.jpg"]`, "100", "", "0xowner", "payload", true, fixedNow))

	entry, err := repo.Get(context.Background(), "A1B2C3")
	require.NoError(t, err)

	assert.Equal(t, "A1B2C3", entry.IDHex)
	assert.Equal(t, []string{"a.jpg"}, entry.Images)
	assert.Equal(t, "100", entry.HousingValue)
	assert.True(t, entry.Confirmed)
	require.NotNil(t, entry.CreatedAt)
	assert.True(t, fixedNow.Equal(*entry.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectQuery(`SELECT (.+) FROM properties`).
		WithArgs("FFFFFF").
		WillReturnRows(propertyRows())

	_, err := repo.Get(context.Background(), "FFFFFF")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_List(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectQuery(`SELECT (.+) FROM properties ORDER BY id_hex`).
		WillReturnRows(propertyRows().
			AddRow("00000A", "[]", "", "", "", "", true, fixedNow).
			AddRow("B00000", `["x"]`, "1", "", "", "", false, fixedNow))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "00000A", entries[0].IDHex)
	assert.Equal(t, "B00000", entries[1].IDHex)
	assert.Equal(t, []string{"x"}, entries[1].Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_List_BadImagesColumn(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)

	mock.ExpectQuery(`SELECT (.+) FROM properties`).
		WillReturnRows(propertyRows().AddRow("00000A", "{oops", "", "", "", "", true, fixedNow))

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── ReleaseExpired ────────────────────────────────────────────────────────────

func TestPropertyRepository_ReleaseExpired(t *testing.T) {
	repo, mock := newTestPropertyRepo(t, driverPostgres)
	before := fixedNow.Add(-time.Hour)

	mock.ExpectExec(`DELETE FROM properties WHERE confirmed = \$1 AND created_at < \$2`).
		WithArgs(false, before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	released, err := repo.ReleaseExpired(context.Background(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(3), released)
	assert.NoError(t, mock.ExpectationsWereMet())
}
