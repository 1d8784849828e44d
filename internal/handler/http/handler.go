package http

import (
	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/service"
	"github.com/MKhiriev/go-deed-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashKey enables HashSHA256 integrity checks when not empty.
	hashKey string
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	logger.Info().Bool("hashing", cfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  cfg.HashKey,
		traceID:  utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
