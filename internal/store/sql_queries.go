// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deed-keeper/models"
)

const propertiesTable = "properties"

// psql builds statements with $N placeholders. Both PostgreSQL and SQLite
// accept them.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// propertyColumns is the column order every SELECT uses and scanProperty
// expects.
var propertyColumns = []string{
	"id_hex",
	"images",
	"housing_value",
	"token_address",
	"owner",
	"encrypted",
	"confirmed",
	"created_at",
}

func buildSelectIDsQuery() (string, []any, error) {
	query, args, err := psql.Select("id_hex").From(propertiesTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPropertiesQuery() (string, []any, error) {
	query, args, err := psql.Select(propertyColumns...).
		From(propertiesTable).
		OrderBy("id_hex").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectPropertyQuery selects one entry. forUpdate adds a row lock and
// must only be set for drivers that support it.
func buildSelectPropertyQuery(idHex string, forUpdate bool) (string, []any, error) {
	builder := psql.Select(propertyColumns...).
		From(propertiesTable).
		Where(sq.Eq{"id_hex": idHex})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildReserveQuery inserts entry unless its id_hex exists. Zero affected
// rows means the identifier was taken.
func buildReserveQuery(entry models.PropertyEntry) (string, []any, error) {
	images, err := encodeImages(entry.Images)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.Insert(propertiesTable).
		Columns(propertyColumns...).
		Values(
			entry.IDHex,
			images,
			entry.HousingValue,
			entry.TokenAddress,
			entry.Owner,
			entry.Encrypted,
			entry.Confirmed,
			createdAtOrNow(entry.CreatedAt),
		).
		Suffix("ON CONFLICT (id_hex) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildEnsurePropertyQuery creates an empty unconfirmed entry for idHex if
// none exists, so a following locked SELECT always finds a row.
func buildEnsurePropertyQuery(idHex string, createdAt time.Time) (string, []any, error) {
	query, args, err := psql.Insert(propertiesTable).
		Columns("id_hex", "created_at").
		Values(idHex, createdAt).
		Suffix("ON CONFLICT (id_hex) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdatePropertyQuery writes every mutable column of entry.
func buildUpdatePropertyQuery(entry models.PropertyEntry) (string, []any, error) {
	images, err := encodeImages(entry.Images)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.Update(propertiesTable).
		Set("images", images).
		Set("housing_value", entry.HousingValue).
		Set("token_address", entry.TokenAddress).
		Set("owner", entry.Owner).
		Set("confirmed", entry.Confirmed).
		Where(sq.Eq{"id_hex": entry.IDHex}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildReleaseExpiredQuery(before time.Time) (string, []any, error) {
	query, args, err := psql.Delete(propertiesTable).
		Where(sq.Eq{"confirmed": false}).
		Where(sq.Lt{"created_at": before}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// encodeImages stores image references as a JSON array in a TEXT column.
func encodeImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("%w: encoding images: %w", ErrBuildingSQLQuery, err)
	}
	return string(b), nil
}

func decodeImages(raw string) ([]string, error) {
	images := []string{}
	if raw == "" {
		return images, nil
	}
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return nil, err
	}
	return images, nil
}

func createdAtOrNow(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
