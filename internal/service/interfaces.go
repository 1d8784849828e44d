package service

import (
	"context"

	"github.com/MKhiriev/go-deed-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ListingService turns deed data into a sealed, uniquely identified listing
// ready to be minted.
type ListingService interface {
	// PrepareFromFields validates and normalises the fields, seals their
	// canonical plaintext and reserves a fresh identifier for it.
	PrepareFromFields(ctx context.Context, fields models.DeedFields) (models.Listing, error)

	// PrepareFromDocument extracts the deed fields from a scan first and then
	// behaves like PrepareFromFields with the given owner.
	PrepareFromDocument(ctx context.Context, owner string, doc models.Document) (models.Listing, error)

	// ContentID returns the deterministic identifier of the fields' canonical
	// plaintext. It does not consult or modify the registry.
	ContentID(fields models.DeedFields) string
}

// PropertyService manages the off-chain metadata of listings.
type PropertyService interface {
	Confirm(ctx context.Context, req models.ConfirmRequest) error
	SetToken(ctx context.Context, req models.TokenRequest) (models.PropertyEntry, error)
	UpdateDetails(ctx context.Context, req models.DetailsRequest) (models.PropertyEntry, error)

	List(ctx context.Context) ([]models.PropertyEntry, error)

	// ListRevealed is List with every payload opened the way Reveal does.
	ListRevealed(ctx context.Context) ([]models.RevealedProperty, error)
	Get(ctx context.Context, idHex string) (models.PropertyEntry, error)

	// Reveal returns the entry together with its opened payload. A payload
	// that cannot be opened is reported through Undecryptable, not an error.
	Reveal(ctx context.Context, idHex string) (models.RevealedProperty, error)

	OpenPayload(ctx context.Context, req models.OpenPayloadRequest) (models.OpenPayloadResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
