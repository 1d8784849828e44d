package service

import (
	"fmt"

	"github.com/MKhiriev/go-deed-keeper/internal/adapter"
	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/crypto"
	"github.com/MKhiriev/go-deed-keeper/internal/identifier"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/store"
)

type Services struct {
	ListingService  ListingService
	PropertyService PropertyService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, extractor adapter.DeedExtractor, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	codec := crypto.NewPayloadCodec()

	listingService, err := NewListingService(storages.PropertyRepository, extractor, codec, identifier.NewGenerator(), cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating listing service: %w", err)
	}

	propertyService, err := NewPropertyService(storages.PropertyRepository, codec, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating property service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ListingService:  listingService,
		PropertyService: NewPropertyValidationService().Wrap(propertyService),
		AppInfoService:  appInfoService,
	}, nil
}
