package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/logger"
)

// defaultRetryDelays is the wait before each retry of a transient failure.
// Its length is the number of retries after the first attempt.
var defaultRetryDelays = []time.Duration{time.Second, 3 * time.Second, 5 * time.Second}

// withRetry runs fn and re-runs it while it fails with an error the driver
// classifier marks [Retryable], waiting db.retryDelays between attempts.
// The last error is returned when the retries are used up. Waiting stops
// early when ctx is done.
func (db *DB) withRetry(ctx context.Context, op string, fn func() error) error {
	log := logger.FromContext(ctx)

	err := fn()
	for attempt := 0; err != nil && attempt < len(db.retryDelays); attempt++ {
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).
			Str("func", "DB.withRetry").
			Str("op", op).
			Str("sqlstate", postgresCode(err)).
			Int("attempt", attempt+1).
			Dur("wait", db.retryDelays[attempt]).
			Msg("transient database error, retrying")

		timer := time.NewTimer(db.retryDelays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		err = fn()
	}

	return err
}
