package server

import (
	"errors"
	"log/slog"

	"github.com/preston-bernstein/nfl-data-service/internal/app/injuries"
	"github.com/preston-bernstein/nfl-data-service/internal/app/madden"
	"github.com/preston-bernstein/nfl-data-service/internal/app/pff"
	"github.com/preston-bernstein/nfl-data-service/internal/app/players"
	"github.com/preston-bernstein/nfl-data-service/internal/app/rankings"
	"github.com/preston-bernstein/nfl-data-service/internal/cache"
	"github.com/preston-bernstein/nfl-data-service/internal/config"
	"github.com/preston-bernstein/nfl-data-service/internal/http/handlers"
	"github.com/preston-bernstein/nfl-data-service/internal/metrics"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
)

// Components is the wired query layer shared by the HTTP server and the CLI:
// one cached accessor per source behind the query services.
type Components struct {
	Services  handlers.Services
	Reloaders map[string]handlers.Reloader
	Ready     handlers.ReadyFunc
	closers   []func() error
}

// BuildComponents selects providers and cache stores from cfg and wires the services.
func BuildComponents(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, opts ...cache.Option) (*Components, error) {
	set, closeSet := newProviderFactory(logger, recorder).build(cfg)
	c, err := assemble(cfg, set, logger, recorder, opts...)
	if err != nil {
		if closeSet != nil {
			_ = closeSet()
		}
		return nil, err
	}
	c.closers = append(c.closers, closeSet)
	return c, nil
}

func assemble(cfg config.Config, set providers.Set, logger *slog.Logger, recorder *metrics.Recorder, opts ...cache.Option) (*Components, error) {
	stores, err := buildStores(cfg, logger, opts...)
	if err != nil {
		return nil, err
	}

	injuryAcc := cache.NewAccessor(binding(providers.SourceInjuries, cfg.Sources.Injuries), stores.injuries, set.Injuries, logger, recorder)
	maddenAcc := cache.NewAccessor(binding(providers.SourceMadden, cfg.Sources.Madden), stores.madden, set.Madden, logger, recorder)
	pffAcc := cache.NewAccessor(binding(providers.SourcePFF, cfg.Sources.PFF), stores.pff, set.PFF, logger, recorder)
	rankingAcc := cache.NewAccessor(binding(providers.SourceLineRankings, cfg.Sources.LineRankings), stores.lineRankings, set.LineRankings, logger, recorder)

	return &Components{
		Services: handlers.Services{
			Injuries: injuries.NewService(injuryAcc),
			Madden:   madden.NewService(maddenAcc),
			PFF:      pff.NewService(pffAcc),
			Rankings: rankings.NewService(rankingAcc),
			Players:  players.NewService(maddenAcc, pffAcc),
		},
		Reloaders: map[string]handlers.Reloader{
			providers.SourceInjuries:     injuryAcc,
			providers.SourceMadden:       maddenAcc,
			providers.SourcePFF:          pffAcc,
			providers.SourceLineRankings: rankingAcc,
		},
		Ready:   stores.ready,
		closers: []func() error{stores.close},
	}, nil
}

// binding maps a configured source to its cache binding. An unset key falls
// back to the source name so sources never share an entry.
func binding(name string, sc config.SourceConfig) cache.Source {
	key := sc.Key
	if key == "" {
		key = name
	}
	return cache.Source{Name: name, Key: key, TTL: sc.TTL}
}

// Close releases provider and cache backend resources.
func (c *Components) Close() error {
	var errs []error
	for _, fn := range c.closers {
		if fn == nil {
			continue
		}
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
