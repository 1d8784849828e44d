package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/identifier"
	"github.com/MKhiriev/go-deed-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/property_repository_mock.go -package=mock

// PropertyRepository is the property registry: the set of identifiers in use
// plus the off-chain metadata of every listing.
//
// Every mutating method is atomic with respect to other calls on the same
// repository. Identifiers are uppercase 6-hex strings.
type PropertyRepository interface {
	// ExistingIDs returns a snapshot of every identifier in the registry,
	// including unconfirmed reservations.
	ExistingIDs(ctx context.Context) (identifier.IDSet, error)

	// Reserve inserts entry if its identifier is absent and returns
	// ErrIdentifierTaken otherwise. Reserved entries are unconfirmed.
	Reserve(ctx context.Context, entry models.PropertyEntry) error

	// Confirm marks idHex as used by a listing that went on chain, creating
	// the entry when it does not exist. A non-empty owner replaces the
	// stored one.
	Confirm(ctx context.Context, idHex, owner string) error

	// SetToken records the token deployed for idHex. An empty tokenAddress
	// keeps the stored one.
	SetToken(ctx context.Context, idHex, tokenAddress, owner string) (models.PropertyEntry, error)

	// UpdateDetails appends up to three image references and sets the
	// housing value when it is not empty.
	UpdateDetails(ctx context.Context, idHex, housingValue string, images []string, owner string) (models.PropertyEntry, error)

	// Get returns the entry for idHex or ErrPropertyNotFound.
	Get(ctx context.Context, idHex string) (models.PropertyEntry, error)

	// List returns all entries sorted by idHex.
	List(ctx context.Context) ([]models.PropertyEntry, error)

	// ReleaseExpired deletes unconfirmed reservations created before the
	// given time and reports how many were removed.
	ReleaseExpired(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Each SQL driver gets its own implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// MaxImagesPerUpdate caps how many image references one UpdateDetails call
// may append.
const MaxImagesPerUpdate = 3
