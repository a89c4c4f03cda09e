package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nfl-data-service/internal/cache"
	"github.com/preston-bernstein/nfl-data-service/internal/config"
	"github.com/preston-bernstein/nfl-data-service/internal/http/handlers"
)

type sourceStores struct {
	injuries     cache.Store
	madden       cache.Store
	pff          cache.Store
	lineRankings cache.Store
	ready        handlers.ReadyFunc
	close        func() error
}

func buildStores(cfg config.Config, logger *slog.Logger, opts ...cache.Option) (sourceStores, error) {
	switch cfg.Cache.Backend {
	case config.BackendFile, "":
		base := cfg.Cache.Dir
		if base == "" {
			base = filepath.Join(os.TempDir(), "nfl-data-service-cache")
		}
		fileStore := func(src config.SourceConfig) cache.Store {
			dir := src.Dir
			if dir == "" {
				dir = base
			}
			return cache.NewFileStore(dir, logger, opts...)
		}
		return sourceStores{
			injuries:     fileStore(cfg.Sources.Injuries),
			madden:       fileStore(cfg.Sources.Madden),
			pff:          fileStore(cfg.Sources.PFF),
			lineRankings: fileStore(cfg.Sources.LineRankings),
		}, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		store := cache.NewRedisStore(client, cfg.Cache.RedisPrefix, logger, opts...)
		return sourceStores{
			injuries:     store,
			madden:       store,
			pff:          store,
			lineRankings: store,
			ready: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			},
			close: client.Close,
		}, nil
	default:
		return sourceStores{}, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
