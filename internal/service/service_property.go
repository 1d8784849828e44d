package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-deed-keeper/internal/canonical"
	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/crypto"
	"github.com/MKhiriev/go-deed-keeper/internal/identifier"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/store"
	"github.com/MKhiriev/go-deed-keeper/models"
)

type propertyService struct {
	repository store.PropertyRepository
	codec      crypto.PayloadCodec
	keyB64     string

	logger *logger.Logger
}

func NewPropertyService(repository store.PropertyRepository, codec crypto.PayloadCodec, cfg config.App, logger *logger.Logger) (PropertyService, error) {
	if cfg.EncryptionKeyBase64 == "" {
		return nil, ErrEncryptionKeyIsNotSpecified
	}

	return &propertyService{
		repository: repository,
		codec:      codec,
		keyB64:     cfg.EncryptionKeyBase64,
		logger:     logger,
	}, nil
}

func (p *propertyService) Confirm(ctx context.Context, req models.ConfirmRequest) error {
	idHex, err := identifier.Normalize(req.IDHex)
	if err != nil {
		return err
	}

	return p.repository.Confirm(ctx, idHex, strings.TrimSpace(req.Owner))
}

func (p *propertyService) SetToken(ctx context.Context, req models.TokenRequest) (models.PropertyEntry, error) {
	idHex, err := identifier.Normalize(req.IDHex)
	if err != nil {
		return models.PropertyEntry{}, err
	}

	return p.repository.SetToken(ctx, idHex, strings.TrimSpace(req.TokenAddress), strings.TrimSpace(req.Owner))
}

func (p *propertyService) UpdateDetails(ctx context.Context, req models.DetailsRequest) (models.PropertyEntry, error) {
	idHex, err := identifier.Normalize(req.IDHex)
	if err != nil {
		return models.PropertyEntry{}, err
	}

	images := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, strings.TrimSpace(img))
	}

	return p.repository.UpdateDetails(ctx, idHex, strings.TrimSpace(req.HousingValue), images, strings.TrimSpace(req.Owner))
}

// List returns confirmed entries only; pending reservations are not listings yet.
func (p *propertyService) List(ctx context.Context) ([]models.PropertyEntry, error) {
	entries, err := p.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	confirmed := make([]models.PropertyEntry, 0, len(entries))
	for _, e := range entries {
		if e.Confirmed {
			confirmed = append(confirmed, e)
		}
	}
	return confirmed, nil
}

func (p *propertyService) Get(ctx context.Context, idHex string) (models.PropertyEntry, error) {
	idHex, err := identifier.Normalize(idHex)
	if err != nil {
		return models.PropertyEntry{}, err
	}

	return p.repository.Get(ctx, idHex)
}

func (p *propertyService) ListRevealed(ctx context.Context) ([]models.RevealedProperty, error) {
	entries, err := p.List(ctx)
	if err != nil {
		return nil, err
	}

	revealed := make([]models.RevealedProperty, 0, len(entries))
	for _, e := range entries {
		revealed = append(revealed, p.reveal(ctx, e))
	}
	return revealed, nil
}

func (p *propertyService) Reveal(ctx context.Context, idHex string) (models.RevealedProperty, error) {
	entry, err := p.Get(ctx, idHex)
	if err != nil {
		return models.RevealedProperty{}, err
	}

	return p.reveal(ctx, entry), nil
}

// reveal opens the entry's payload. A missing payload leaves Plaintext
// empty; one that fails to open sets Undecryptable.
func (p *propertyService) reveal(ctx context.Context, entry models.PropertyEntry) models.RevealedProperty {
	revealed := models.RevealedProperty{
		PropertyEntry: entry,
		ID:            identifier.ToDecimal(entry.IDHex),
	}
	if entry.Encrypted == "" {
		return revealed
	}

	plaintext, err := p.codec.Open(entry.Encrypted, p.keyB64)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "propertyService.reveal").Str("id_hex", entry.IDHex).Msg("stored payload cannot be opened")
		revealed.Undecryptable = true
		return revealed
	}

	revealed.Plaintext = plaintext
	if fields, decodeErr := canonical.Decode(plaintext); decodeErr == nil {
		revealed.Fields = &fields
	}

	return revealed
}

func (p *propertyService) OpenPayload(ctx context.Context, req models.OpenPayloadRequest) (models.OpenPayloadResponse, error) {
	plaintext, err := p.codec.Open(strings.TrimSpace(req.Encrypted), p.keyB64)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "propertyService.OpenPayload").Msg("error opening payload")
		return models.OpenPayloadResponse{}, fmt.Errorf("error opening payload: %w", err)
	}

	resp := models.OpenPayloadResponse{Plaintext: plaintext}
	if fields, decodeErr := canonical.Decode(plaintext); decodeErr == nil {
		resp.Fields = &fields
	}

	return resp, nil
}
