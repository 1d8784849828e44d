// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	mu       sync.Mutex
	runCount int
}

func (m *mockWorker) Run(ctx context.Context) {
	m.mu.Lock()
	m.runCount++
	m.mu.Unlock()
	<-ctx.Done()
}

func (m *mockWorker) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCount
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.count() == 1 && w2.count() == 1 && w3.count() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should return immediately on an empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_WaitsForAllWorkers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w, w}}
	ws.Run(ctx)

	assert.Equal(t, 2, w.count())
}

func TestNewWorkers(t *testing.T) {
	storages := &store.Storages{}
	cfg := config.StructuredConfig{
		App:     config.App{ReservationTTL: time.Hour},
		Workers: config.Workers{SweepInterval: time.Minute},
	}

	ws := NewWorkers(storages, cfg, logger.Nop())

	require.Len(t, ws.workers, 1)
	sweeper, ok := ws.workers[0].(*ReservationSweeper)
	require.True(t, ok)
	assert.Equal(t, time.Hour, sweeper.ttl)
	assert.Equal(t, time.Minute, sweeper.interval)
}
