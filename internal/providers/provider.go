package providers

import (
	"context"

	"github.com/preston-bernstein/nfl-data-service/internal/domain/injuries"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/rankings"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
)

// Source names used for cache bindings, metrics and logs.
const (
	SourceInjuries     = "injuries"
	SourceMadden       = "madden"
	SourcePFF          = "pff"
	SourceLineRankings = "line_rankings"
)

// Fetcher produces the full record set for one upstream source.
// An empty result is valid; failures should be reported as *FetchError.
type Fetcher[T any] interface {
	Fetch(ctx context.Context) ([]T, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc[T any] func(ctx context.Context) ([]T, error)

// Fetch calls f(ctx).
func (f FetcherFunc[T]) Fetch(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// Set bundles the fetchers for every source the service serves.
type Set struct {
	Injuries     Fetcher[injuries.TeamInjuries]
	Madden       Fetcher[ratings.MaddenRating]
	PFF          Fetcher[ratings.PFFRating]
	LineRankings Fetcher[rankings.TeamRanking]
}
