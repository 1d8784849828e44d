package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deed-keeper/internal/adapter"
	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/handler"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/server"
	"github.com/MKhiriev/go-deed-keeper/internal/service"
	"github.com/MKhiriev/go-deed-keeper/internal/store"
	"github.com/MKhiriev/go-deed-keeper/internal/workers"
)

type App struct {
	storages *store.Storages
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	app, err := newApp(storages, cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	return app, nil
}

func newApp(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	extractor, err := adapter.NewGeminiExtractor(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create deed extractor: %w", err)
	}
	if cfg.Adapter.GeminiAPIKey == "" {
		logger.Warn().Msg("gemini api key is not set, document uploads are disabled")
	}

	services, err := service.NewServices(storages, extractor, *cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		server:   srv,
		workers:  workers.NewWorkers(storages, *cfg, logger),
		logger:   logger,
	}, nil
}

// Run serves until ctx is cancelled or a stop signal arrives. Background
// workers are stopped and storages are closed before Run returns.
func (a *App) Run(ctx context.Context) error {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		a.workers.Run(workersCtx)
		close(workersDone)
	}()

	serverErr := a.server.RunServer(ctx)

	stopWorkers()
	<-workersDone

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Run").Msg("error closing storages")
	}

	if serverErr != nil {
		return fmt.Errorf("server run error: %w", serverErr)
	}
	return nil
}
