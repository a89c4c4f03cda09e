package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nfl-data-service/internal/logging"
	"github.com/preston-bernstein/nfl-data-service/internal/metrics"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
)

// Source binds a named upstream to its cache key and freshness window.
type Source struct {
	Name string
	Key  string
	TTL  time.Duration
}

// Accessor serves the full record list of one source, fetching through to
// the upstream only when the cached copy is missing, expired or unreadable.
// It never falls back to stale data and never retries.
type Accessor[T any] struct {
	source  Source
	store   Store
	fetcher providers.Fetcher[T]
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewAccessor constructs an accessor for source backed by store and fetcher.
func NewAccessor[T any](source Source, store Store, fetcher providers.Fetcher[T], logger *slog.Logger, recorder *metrics.Recorder) *Accessor[T] {
	return &Accessor[T]{
		source:  source,
		store:   store,
		fetcher: fetcher,
		logger:  logger,
		metrics: recorder,
	}
}

// Source returns the binding this accessor serves.
func (a *Accessor[T]) Source() Source {
	return a.source
}

// All returns the cached records when fresh, otherwise fetches, saves and
// returns them. Fetch errors propagate and nothing is cached.
func (a *Accessor[T]) All(ctx context.Context) ([]T, error) {
	logger := logging.FromContext(ctx, a.logger)
	result := a.store.Lookup(ctx, a.source.Key, a.source.TTL)

	if result.Hit() {
		var items []T
		if err := json.Unmarshal(result.Data, &items); err != nil {
			result = Lookup{Status: StatusUnreadable, Err: err}
			logging.Warn(logger, "cached payload does not match record type",
				slog.String(logging.FieldSource, a.source.Name),
				slog.String(logging.FieldCacheKey, a.source.Key),
				slog.Any("error", err),
			)
		} else {
			a.metrics.RecordCacheLookup(a.source.Name, result.Outcome())
			logging.Info(logger, "cache hit",
				slog.String(logging.FieldSource, a.source.Name),
				slog.String(logging.FieldCacheKey, a.source.Key),
				slog.Int(logging.FieldCount, len(items)),
				slog.Float64(logging.FieldAgeSeconds, result.Age.Seconds()),
			)
			if items == nil {
				items = []T{}
			}
			return items, nil
		}
	}

	a.metrics.RecordCacheLookup(a.source.Name, result.Outcome())
	logging.Info(logger, "cache miss",
		slog.String(logging.FieldSource, a.source.Name),
		slog.String(logging.FieldCacheKey, a.source.Key),
		slog.String(logging.FieldCacheState, result.Outcome()),
	)
	return a.load(ctx)
}

// Refresh skips the lookup and replaces the cached copy with a fresh fetch.
func (a *Accessor[T]) Refresh(ctx context.Context) ([]T, error) {
	return a.load(ctx)
}

// Reload refreshes the cache and reports how many records were stored.
func (a *Accessor[T]) Reload(ctx context.Context) (int, error) {
	items, err := a.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (a *Accessor[T]) load(ctx context.Context) ([]T, error) {
	if a.fetcher == nil {
		return nil, &providers.FetchError{Source: a.source.Name, Err: providers.ErrProviderUnavailable}
	}
	items, err := a.fetcher.Fetch(ctx)
	if err != nil {
		return nil, providers.WrapFetchError(a.source.Name, err)
	}
	if items == nil {
		items = []T{}
	}
	// Save logs its own failures.
	_ = a.store.Save(ctx, a.source.Key, items)
	return items, nil
}
