package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers for the given storages.
func NewWorkers(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")

	return &Workers{workers: []Worker{
		NewReservationSweeper(storages.PropertyRepository, cfg.App.ReservationTTL, cfg.Workers.SweepInterval, logger),
	}}
}

// Run starts every worker and blocks until all of them return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
