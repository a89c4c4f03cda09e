package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nfl-data-service/internal/logging"
)

// RedisStore keeps entries as JSON strings in Redis. Keys carry no Redis TTL;
// freshness is judged on read exactly like FileStore.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
	logger *slog.Logger
}

// NewRedisStore constructs a store that namespaces every key with prefix.
func NewRedisStore(client redis.Cmdable, prefix string, logger *slog.Logger, opts ...Option) *RedisStore {
	o := buildOptions(opts)
	return &RedisStore{
		client: client,
		prefix: prefix,
		now:    o.now,
		logger: logger,
	}
}

func (s *RedisStore) redisKey(key string) string {
	return s.prefix + key
}

// Lookup reads key and judges it against ttl.
func (s *RedisStore) Lookup(ctx context.Context, key string, ttl time.Duration) Lookup {
	raw, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Lookup{Status: StatusMiss}
	}
	if err != nil {
		result := Lookup{Status: StatusUnreadable, Err: fmt.Errorf("redis get: %w", err)}
		s.logUnreadable(ctx, key, result)
		return result
	}

	result := decodeEntry(raw, s.now(), ttl)
	if result.Status == StatusUnreadable {
		s.logUnreadable(ctx, key, result)
	}
	return result
}

// Save writes payload under key with the current timestamp.
func (s *RedisStore) Save(ctx context.Context, key string, payload any) error {
	data, err := encodeEntry(s.now(), payload)
	if err == nil {
		err = s.client.Set(ctx, s.redisKey(key), data, 0).Err()
		if err != nil {
			err = fmt.Errorf("redis set: %w", err)
		}
	}
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "cache write failed", err,
			slog.String(logging.FieldCacheKey, key),
		)
		return err
	}
	return nil
}

func (s *RedisStore) logUnreadable(ctx context.Context, key string, result Lookup) {
	logging.Warn(logging.FromContext(ctx, s.logger), "cache entry unreadable",
		slog.String(logging.FieldCacheKey, key),
		slog.String("backend", "redis"),
		slog.Any("error", result.Err),
	)
}
