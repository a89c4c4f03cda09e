package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-data-service/internal/config"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
	"github.com/preston-bernstein/nfl-data-service/internal/providers/feed"
	"github.com/preston-bernstein/nfl-data-service/internal/providers/fixture"
	"github.com/preston-bernstein/nfl-data-service/internal/providers/pffcsv"
)

// selectProviders returns the upstream adapters for cfg.Provider and a closer
// releasing any resources they hold. PFF ratings come from the local CSV
// export whenever the feed provider is used and a path is configured.
func selectProviders(cfg config.Config, logger *slog.Logger) (providers.Set, func() error) {
	switch cfg.Provider {
	case config.ProviderFixture, "":
		return fixture.New().Set(), nil
	case config.ProviderFeed:
		client := feed.NewClient(feed.Config{
			BaseURL:  cfg.Feed.BaseURL,
			APIKey:   cfg.Feed.APIKey,
			Timeout:  cfg.Feed.Timeout,
			MaxPages: cfg.Feed.MaxPages,
		}, logger)
		set := client.Set()
		if cfg.PFF.CSVPath != "" {
			set.PFF = pffcsv.New(cfg.PFF.CSVPath, logger)
		}
		return set, client.Close
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New().Set(), nil
	}
}
