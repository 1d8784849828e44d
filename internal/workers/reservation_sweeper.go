// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/store"
)

// ReservationSweeper periodically releases identifiers that were reserved
// for a listing but never confirmed within the reservation TTL.
type ReservationSweeper struct {
	repository store.PropertyRepository
	ttl        time.Duration
	interval   time.Duration
	now        func() time.Time

	logger *logger.Logger
}

func NewReservationSweeper(repository store.PropertyRepository, ttl, interval time.Duration, logger *logger.Logger) *ReservationSweeper {
	return &ReservationSweeper{
		repository: repository,
		ttl:        ttl,
		interval:   interval,
		now:        time.Now,
		logger:     logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is
// cancelled. A non-positive ttl or interval disables the sweeper.
func (s *ReservationSweeper) Run(ctx context.Context) {
	if s.ttl <= 0 || s.interval <= 0 {
		s.logger.Info().Str("func", "*ReservationSweeper.Run").Msg("reservation sweeper disabled")
		return
	}

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str("func", "*ReservationSweeper.Run").Msg("reservation sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReservationSweeper) sweep(ctx context.Context) {
	cutoff := s.now().UTC().Add(-s.ttl)

	released, err := s.repository.ReleaseExpired(ctx, cutoff)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Err(err).Str("func", "*ReservationSweeper.sweep").Msg("failed to release expired reservations")
		return
	}

	if released > 0 {
		s.logger.Info().Int64("released", released).Time("cutoff", cutoff).Msg("released expired reservations")
	}
}
