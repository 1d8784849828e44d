package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSweeper(t *testing.T, ttl, interval time.Duration) (*ReservationSweeper, *mock.MockPropertyRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPropertyRepository(ctrl)

	s := NewReservationSweeper(repo, ttl, interval, logger.Nop())
	s.now = func() time.Time { return fixedNow }
	return s, repo
}

func runUntil(t *testing.T, s *ReservationSweeper, calls <-chan struct{}, want int) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	for i := 0; i < want; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			cancel()
			t.Fatalf("expected %d sweeps, got %d", want, i)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}

func TestReservationSweeper_ReleasesBeforeCutoff(t *testing.T) {
	s, repo := newTestSweeper(t, time.Hour, 10*time.Millisecond)
	calls := make(chan struct{}, 16)

	repo.EXPECT().
		ReleaseExpired(gomock.Any(), fixedNow.Add(-time.Hour)).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			calls <- struct{}{}
			return 2, nil
		}).
		MinTimes(2)

	runUntil(t, s, calls, 2)
}

func TestReservationSweeper_KeepsRunningAfterError(t *testing.T) {
	s, repo := newTestSweeper(t, time.Hour, 10*time.Millisecond)
	calls := make(chan struct{}, 16)

	repo.EXPECT().
		ReleaseExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			calls <- struct{}{}
			return 0, errors.New("database is locked")
		}).
		MinTimes(3)

	runUntil(t, s, calls, 3)
}

func TestReservationSweeper_Disabled(t *testing.T) {
	tests := []struct {
		name     string
		ttl      time.Duration
		interval time.Duration
	}{
		{name: "zero ttl", ttl: 0, interval: time.Second},
		{name: "zero interval", ttl: time.Hour, interval: 0},
		{name: "negative interval", ttl: time.Hour, interval: -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no ReleaseExpired expectation: any call fails the test
			s, _ := newTestSweeper(t, tt.ttl, tt.interval)

			done := make(chan struct{})
			go func() {
				s.Run(context.Background())
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("disabled sweeper should return immediately")
			}
		})
	}
}

func TestNewReservationSweeper(t *testing.T) {
	s := NewReservationSweeper(nil, time.Hour, time.Minute, logger.Nop())

	assert.Equal(t, time.Hour, s.ttl)
	assert.Equal(t, time.Minute, s.interval)
	assert.NotNil(t, s.now)
}
