// Package cache persists per-source payloads with a write timestamp and
// serves them back while they are younger than a caller-supplied TTL.
package cache

import (
	"context"
	"time"
)

// Store reads and writes timestamped payloads by key. Implementations never
// delete entries; expiry is decided on read.
type Store interface {
	Lookup(ctx context.Context, key string, ttl time.Duration) Lookup
	Save(ctx context.Context, key string, payload any) error
}

// Option customizes a store.
type Option func(*storeOptions)

type storeOptions struct {
	now func() time.Time
}

// WithClock overrides the time source used for writing and judging entries.
func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) storeOptions {
	o := storeOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
