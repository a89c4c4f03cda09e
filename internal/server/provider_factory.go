package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-data-service/internal/config"
	"github.com/preston-bernstein/nfl-data-service/internal/metrics"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
)

// providerFactory assembles the source fetchers with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (providers.Set, func() error) {
	base, closeFn := selectProviders(cfg, f.logger)
	return f.instrument(base), closeFn
}

// instrument wraps every fetcher so each upstream call is timed, counted and logged.
func (f providerFactory) instrument(set providers.Set) providers.Set {
	return providers.Set{
		Injuries:     providers.Instrument(providers.SourceInjuries, set.Injuries, f.logger, f.metrics),
		Madden:       providers.Instrument(providers.SourceMadden, set.Madden, f.logger, f.metrics),
		PFF:          providers.Instrument(providers.SourcePFF, set.PFF, f.logger, f.metrics),
		LineRankings: providers.Instrument(providers.SourceLineRankings, set.LineRankings, f.logger, f.metrics),
	}
}
