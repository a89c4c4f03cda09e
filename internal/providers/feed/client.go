// Package feed reads source records from an upstream JSON feed over HTTP.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"resty.dev/v3"

	"github.com/preston-bernstein/nfl-data-service/internal/logging"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
)

// Config controls how the feed client reaches upstream.
type Config struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxPages    int
	TripAfter   uint32
	OpenTimeout time.Duration
}

// Client fetches paginated record lists from the feed. Every source shares
// one circuit breaker so a dead upstream fails fast instead of timing out per call.
type Client struct {
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	maxPages int
	logger   *slog.Logger
}

// NewClient constructs a feed client with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	tripAfter := cfg.TripAfter
	if tripAfter == 0 {
		tripAfter = defaultTripAfter
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = defaultOpenTimeout
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/"))
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "feed",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logging.Warn(logger, "feed circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from_state", from.String()),
				slog.String("to_state", to.String()),
			)
		},
	})

	return &Client{
		http:     client,
		breaker:  breaker,
		maxPages: maxPages,
		logger:   logger,
	}
}

// Close releases idle connections held by the HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// fetchAll walks ?page=1,2,... until the feed reports its last page, returns an
// empty page, or maxPages is reached.
func fetchAll[T any](ctx context.Context, c *Client, source, path string) ([]T, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return fetchPages[T](ctx, c, source, path)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &providers.FetchError{Source: source, Message: "feed circuit open", Err: err}
		}
		return nil, err
	}
	return result.([]T), nil
}

func fetchPages[T any](ctx context.Context, c *Client, source, path string) ([]T, error) {
	all := make([]T, 0)
	for page := 1; ; page++ {
		var payload pageResponse[T]
		res, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("page", strconv.Itoa(page)).
			SetResult(&payload).
			Get(path)
		if err != nil {
			return nil, &providers.FetchError{Source: source, Message: "feed request failed", Err: err}
		}
		if res.IsError() {
			return nil, &providers.FetchError{
				Source:     source,
				StatusCode: res.StatusCode(),
				Message:    fmt.Sprintf("unexpected status: %s", strings.TrimSpace(res.String())),
			}
		}

		all = append(all, payload.Data...)
		logging.Info(logging.FromContext(ctx, c.logger), "feed page fetched",
			slog.String(logging.FieldSource, source),
			slog.Int("page", page),
			slog.Int(logging.FieldCount, len(payload.Data)),
		)

		if len(payload.Data) == 0 {
			break
		}
		if payload.Meta.TotalPages > 0 && page >= payload.Meta.TotalPages {
			break
		}
		if page >= c.maxPages {
			break
		}
	}
	return all, nil
}
