package config

import "time"

const (
	envPort       = "PORT"
	envProvider   = "PROVIDER"
	envAdminToken = "ADMIN_TOKEN"
	envLogLevel   = "LOG_LEVEL"
	envLogFormat  = "LOG_FORMAT"

	envCacheBackend = "CACHE_BACKEND"
	envCacheDir     = "CACHE_DIR"
	envRedisAddr    = "REDIS_ADDR"
	envRedisDB      = "REDIS_DB"
	envRedisPrefix  = "REDIS_PREFIX"

	envFeedBaseURL  = "FEED_BASE_URL"
	envFeedAPIKey   = "FEED_API_KEY"
	envFeedTimeout  = "FEED_TIMEOUT"
	envFeedMaxPages = "FEED_MAX_PAGES"
	envPFFCSVPath   = "PFF_CSV_PATH"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "4000"
	defaultProvider     = ProviderFixture
	defaultCacheBackend = BackendFile
	defaultCacheDir     = "/tmp/pigskin-pickem-cache"
	defaultRedisPrefix  = "nfl-data-service:cache:"
	defaultFeedTimeout  = 15 * time.Second
	// Upper bound on ?page=N requests per fetch; the feed normally ends with an empty page first.
	defaultFeedMaxPages = 50
	defaultPFFCSVPath   = "data/pff_ratings.csv"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "nfl-data-service"

	// ProviderFixture serves deterministic in-process data.
	ProviderFixture = "fixture"
	// ProviderFeed reads upstream JSON feeds over HTTP.
	ProviderFeed = "feed"

	// BackendFile stores cache entries as JSON files.
	BackendFile = "file"
	// BackendRedis stores cache entries in Redis.
	BackendRedis = "redis"
)

// sourceDefaults holds the per-source cache key, TTL and env prefix.
var sourceDefaults = map[string]struct {
	key       string
	ttl       time.Duration
	envPrefix string
}{
	"injuries":      {key: "nfl_injuries", ttl: 24 * time.Hour, envPrefix: "INJURIES"},
	"madden":        {key: "madden_ratings", ttl: 48 * time.Hour, envPrefix: "MADDEN"},
	"pff":           {key: "pff_ratings", ttl: 48 * time.Hour, envPrefix: "PFF"},
	"line_rankings": {key: "pff_ol_rankings", ttl: 48 * time.Hour, envPrefix: "OL_RANKINGS"},
}
