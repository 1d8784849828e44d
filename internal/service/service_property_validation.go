package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deed-keeper/internal/validators"
	"github.com/MKhiriev/go-deed-keeper/models"
)

// PropertyServiceWrapper defines middleware composition for PropertyService.
// Implementations wrap an existing PropertyService to add behavior such as
// logging or validating.
type PropertyServiceWrapper interface {
	Wrap(PropertyService) PropertyService // returns a decorated PropertyService applying additional behavior
}

type PropertyValidationService struct {
	inner     PropertyService
	validator validators.Validator
}

func NewPropertyValidationService() PropertyServiceWrapper {
	return &PropertyValidationService{
		validator: validators.NewPropertyValidator(),
	}
}

func (v *PropertyValidationService) Confirm(ctx context.Context, req models.ConfirmRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Confirm(ctx, req)
}

func (v *PropertyValidationService) SetToken(ctx context.Context, req models.TokenRequest) (models.PropertyEntry, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PropertyEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SetToken(ctx, req)
}

func (v *PropertyValidationService) UpdateDetails(ctx context.Context, req models.DetailsRequest) (models.PropertyEntry, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PropertyEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateDetails(ctx, req)
}

func (v *PropertyValidationService) List(ctx context.Context) ([]models.PropertyEntry, error) {
	return v.inner.List(ctx)
}

func (v *PropertyValidationService) ListRevealed(ctx context.Context) ([]models.RevealedProperty, error) {
	return v.inner.ListRevealed(ctx)
}

func (v *PropertyValidationService) Get(ctx context.Context, idHex string) (models.PropertyEntry, error) {
	if err := v.validator.Validate(ctx, models.ConfirmRequest{IDHex: idHex}, validators.FieldIDHex); err != nil {
		return models.PropertyEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Get(ctx, idHex)
}

func (v *PropertyValidationService) Reveal(ctx context.Context, idHex string) (models.RevealedProperty, error) {
	if err := v.validator.Validate(ctx, models.ConfirmRequest{IDHex: idHex}, validators.FieldIDHex); err != nil {
		return models.RevealedProperty{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Reveal(ctx, idHex)
}

func (v *PropertyValidationService) OpenPayload(ctx context.Context, req models.OpenPayloadRequest) (models.OpenPayloadResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.OpenPayloadResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.OpenPayload(ctx, req)
}

func (v *PropertyValidationService) Wrap(wrapper PropertyService) PropertyService {
	v.inner = wrapper
	return v
}
