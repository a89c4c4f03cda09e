package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port       string        `mapstructure:"port" validate:"required"`
	Provider   string        `mapstructure:"provider" validate:"oneof=fixture feed"`
	AdminToken string        `mapstructure:"admin_token"`
	Log        LogConfig     `mapstructure:"log"`
	Cache      CacheConfig   `mapstructure:"cache"`
	Sources    SourcesConfig `mapstructure:"sources"`
	Feed       FeedConfig    `mapstructure:"feed"`
	PFF        PFFConfig     `mapstructure:"pff"`
	Metrics    MetricsConfig `mapstructure:"metrics"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend     string `mapstructure:"backend" validate:"oneof=file redis"`
	Dir         string `mapstructure:"dir" validate:"required"`
	RedisAddr   string `mapstructure:"redis_addr" validate:"required_if=Backend redis"`
	RedisDB     int    `mapstructure:"redis_db" validate:"gte=0"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

// SourceConfig binds one data source to its cache entry.
// An empty Dir means the shared cache directory.
type SourceConfig struct {
	Key string        `mapstructure:"key" validate:"required,excludesall=/\\"`
	Dir string        `mapstructure:"dir"`
	TTL time.Duration `mapstructure:"-" validate:"gt=0"`
}

// SourcesConfig lists every cached source.
type SourcesConfig struct {
	Injuries     SourceConfig `mapstructure:"injuries"`
	Madden       SourceConfig `mapstructure:"madden"`
	PFF          SourceConfig `mapstructure:"pff"`
	LineRankings SourceConfig `mapstructure:"line_rankings"`
}

// FeedConfig controls how the HTTP feed provider reaches upstream.
type FeedConfig struct {
	BaseURL  string        `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"-"`
	MaxPages int           `mapstructure:"-" validate:"gt=0"`
}

// PFFConfig locates the Pro Football Focus CSV export.
type PFFConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

// Load reads configuration from an optional YAML file and environment variables
// with sensible defaults. Durations and counts that fail to parse, or are not
// positive, fall back to their defaults.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("nfl-data-service")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/nfl-data-service")
	}

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration format: %w", err)
	}
	resolveDurations(v, &cfg)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("provider", defaultProvider)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("cache.backend", defaultCacheBackend)
	v.SetDefault("cache.dir", defaultCacheDir)
	v.SetDefault("cache.redis_prefix", defaultRedisPrefix)
	v.SetDefault("pff.csv_path", defaultPFFCSVPath)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", defaultMetricsPort)
	v.SetDefault("metrics.service_name", defaultServiceName)
	v.SetDefault("metrics.otlp_insecure", true)
	for name, def := range sourceDefaults {
		v.SetDefault("sources."+name+".key", def.key)
	}
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"port":                  envPort,
		"provider":              envProvider,
		"admin_token":           envAdminToken,
		"log.level":             envLogLevel,
		"log.format":            envLogFormat,
		"cache.backend":         envCacheBackend,
		"cache.dir":             envCacheDir,
		"cache.redis_addr":      envRedisAddr,
		"cache.redis_db":        envRedisDB,
		"cache.redis_prefix":    envRedisPrefix,
		"feed.base_url":         envFeedBaseURL,
		"feed.api_key":          envFeedAPIKey,
		"feed.timeout":          envFeedTimeout,
		"feed.max_pages":        envFeedMaxPages,
		"pff.csv_path":          envPFFCSVPath,
		"metrics.enabled":       envMetricsOn,
		"metrics.port":          envMetricsPort,
		"metrics.otlp_endpoint": envOtelEndpoint,
		"metrics.service_name":  envOtelService,
		"metrics.otlp_insecure": envOtelInsecure,
	}
	for name, def := range sourceDefaults {
		bindings["sources."+name+".key"] = def.envPrefix + "_CACHE_KEY"
		bindings["sources."+name+".dir"] = def.envPrefix + "_CACHE_DIR"
		bindings["sources."+name+".ttl"] = def.envPrefix + "_CACHE_TTL"
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}
	return nil
}

func resolveDurations(v *viper.Viper, cfg *Config) {
	cfg.Sources.Injuries.TTL = durationOrDefault(v, "sources.injuries.ttl", sourceDefaults["injuries"].ttl)
	cfg.Sources.Madden.TTL = durationOrDefault(v, "sources.madden.ttl", sourceDefaults["madden"].ttl)
	cfg.Sources.PFF.TTL = durationOrDefault(v, "sources.pff.ttl", sourceDefaults["pff"].ttl)
	cfg.Sources.LineRankings.TTL = durationOrDefault(v, "sources.line_rankings.ttl", sourceDefaults["line_rankings"].ttl)
	cfg.Feed.Timeout = durationOrDefault(v, "feed.timeout", defaultFeedTimeout)
	cfg.Feed.MaxPages = intOrDefault(v, "feed.max_pages", defaultFeedMaxPages)
}

func validate(cfg Config) error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("failed to create new validator: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, e.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
	}
	if cfg.Provider == ProviderFeed && cfg.Feed.BaseURL == "" {
		return fmt.Errorf("invalid configuration: %s is required when provider is %q", envFeedBaseURL, ProviderFeed)
	}
	return nil
}
