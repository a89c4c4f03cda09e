package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-data-service/internal/logging"
	"github.com/preston-bernstein/nfl-data-service/internal/metrics"
)

// instrumentedFetcher records latency and outcome of every upstream fetch.
// It makes exactly one attempt per call.
type instrumentedFetcher[T any] struct {
	source  string
	inner   Fetcher[T]
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// Instrument wraps inner so each fetch is logged, timed and tagged with source on failure.
func Instrument[T any](source string, inner Fetcher[T], logger *slog.Logger, recorder *metrics.Recorder) Fetcher[T] {
	if inner == nil {
		return nil
	}
	return &instrumentedFetcher[T]{
		source:  source,
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (f *instrumentedFetcher[T]) Fetch(ctx context.Context) ([]T, error) {
	start := f.now()
	items, err := f.inner.Fetch(ctx)
	elapsed := f.now().Sub(start)
	f.metrics.RecordSourceFetch(f.source, elapsed, err)

	if err != nil {
		err = WrapFetchError(f.source, err)
		logWithSource(ctx, f.logger, slog.LevelWarn, f.source, "source fetch failed",
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}
	logWithSource(ctx, f.logger, slog.LevelInfo, f.source, "source fetch complete",
		slog.Int(logging.FieldCount, len(items)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return items, nil
}
