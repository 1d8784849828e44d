// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/adapter"
	"github.com/MKhiriev/go-deed-keeper/internal/canonical"
	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/crypto"
	"github.com/MKhiriev/go-deed-keeper/internal/identifier"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/store"
	"github.com/MKhiriev/go-deed-keeper/internal/validators"
	"github.com/MKhiriev/go-deed-keeper/models"
)

// maxReserveAttempts bounds how often a freshly generated identifier may be
// lost to a concurrent reservation before giving up.
const maxReserveAttempts = 5

var bandarSeparators = regexp.MustCompile(`[/,]`)

type listingService struct {
	repository store.PropertyRepository
	extractor  adapter.DeedExtractor
	codec      crypto.PayloadCodec
	generator  *identifier.Generator
	validator  validators.Validator

	keyB64 string
	now    func() time.Time

	logger *logger.Logger
}

// NewListingService wires the listing pipeline. The encryption key is
// checked once here so that a misconfigured key fails at startup, not on
// the first request.
func NewListingService(
	repository store.PropertyRepository,
	extractor adapter.DeedExtractor,
	codec crypto.PayloadCodec,
	generator *identifier.Generator,
	cfg config.App,
	logger *logger.Logger,
) (ListingService, error) {
	if cfg.EncryptionKeyBase64 == "" {
		return nil, ErrEncryptionKeyIsNotSpecified
	}
	if _, err := crypto.ParseKey(cfg.EncryptionKeyBase64); err != nil {
		return nil, err
	}

	return &listingService{
		repository: repository,
		extractor:  extractor,
		codec:      codec,
		generator:  generator,
		validator:  validators.NewPropertyValidator(),
		keyB64:     cfg.EncryptionKeyBase64,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *listingService) PrepareFromFields(ctx context.Context, fields models.DeedFields) (models.Listing, error) {
	log := logger.FromContext(ctx)

	fields = canonical.Trim(fields)
	fields.Bandar = normalizeBandar(fields.Bandar)

	if err := s.validator.Validate(ctx, fields); err != nil {
		log.Err(err).Str("func", "listingService.PrepareFromFields").Msg("deed fields are invalid")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	plaintext := canonical.Encode(fields)

	encrypted, err := s.codec.Seal(plaintext, s.keyB64)
	if err != nil {
		log.Err(err).Str("func", "listingService.PrepareFromFields").Msg("error sealing deed payload")
		return models.Listing{}, fmt.Errorf("error sealing deed payload: %w", err)
	}

	idHex, err := s.reserve(ctx, plaintext, fields.Owner, encrypted)
	if err != nil {
		log.Err(err).Str("func", "listingService.PrepareFromFields").Msg("error reserving identifier")
		return models.Listing{}, err
	}

	log.Info().Str("func", "listingService.PrepareFromFields").Str("id_hex", idHex).Msg("listing prepared")

	return models.Listing{
		ID:        identifier.ToDecimal(idHex),
		IDHex:     idHex,
		Encrypted: encrypted,
		Fields:    fields,
	}, nil
}

func (s *listingService) PrepareFromDocument(ctx context.Context, owner string, doc models.Document) (models.Listing, error) {
	log := logger.FromContext(ctx)

	owner = strings.TrimSpace(owner)
	if err := s.validator.Validate(ctx, models.DeedFields{Owner: owner}, validators.FieldOwner); err != nil {
		return models.Listing{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	fields, err := s.extractor.ExtractDeed(ctx, doc)
	if err != nil {
		log.Err(err).Str("func", "listingService.PrepareFromDocument").Msg("error extracting deed fields")
		return models.Listing{}, err
	}
	fields.Owner = owner

	return s.PrepareFromFields(ctx, fields)
}

func (s *listingService) ContentID(fields models.DeedFields) string {
	return identifier.DeriveDeterministic(canonical.Encode(fields))
}

// reserve generates identifiers against a registry snapshot until one is
// reserved. An identifier taken between the snapshot and the insert is added
// to the snapshot before the next attempt.
func (s *listingService) reserve(ctx context.Context, plaintext, owner, encrypted string) (string, error) {
	existing, err := s.repository.ExistingIDs(ctx)
	if err != nil {
		return "", fmt.Errorf("error reading registry: %w", err)
	}
	if existing == nil {
		existing = identifier.NewIDSet()
	}

	for attempt := 0; attempt < maxReserveAttempts; attempt++ {
		idHex, err := s.generator.Generate(plaintext, existing)
		if err != nil {
			return "", err
		}

		createdAt := s.now().UTC()
		err = s.repository.Reserve(ctx, models.PropertyEntry{
			IDHex:     idHex,
			Images:    []string{},
			Owner:     owner,
			Encrypted: encrypted,
			CreatedAt: &createdAt,
		})
		if err == nil {
			return idHex, nil
		}
		if !errors.Is(err, store.ErrIdentifierTaken) {
			return "", err
		}

		logger.FromContext(ctx).Debug().Str("func", "listingService.reserve").Str("id_hex", idHex).Msg("identifier taken concurrently, regenerating")
		existing.Add(idHex)
	}

	return "", ErrIdentifierUnavailable
}

// normalizeBandar keeps the "BANDAR ..." part of a combined
// "BANDAR/PEKAN/MUKIM" value. Values without a separator, or without a part
// naming a bandar, are returned unchanged.
func normalizeBandar(bandar string) string {
	if !bandarSeparators.MatchString(bandar) {
		return bandar
	}
	for _, part := range bandarSeparators.Split(bandar, -1) {
		part = strings.TrimSpace(part)
		if strings.Contains(strings.ToLower(part), "bandar") {
			return part
		}
	}
	return bandar
}
