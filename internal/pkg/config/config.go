package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Provider ProviderConfig
	Lookup   LookupConfig
	Redis    RedisConfig
}

// legacyAPIKeyVar is read by hand: envconfig refuses names that start
// with a digit.
const legacyAPIKeyVar = "17TRACK_API_KEY"

// ProviderConfig holds the tracking provider credentials and endpoint.
// The key is read from TRACKING_API_KEY, then 17TRACK_API_KEY.
type ProviderConfig struct {
	APIKey string `env:"TRACKING_API_KEY"`
	// LegacyAPIKey is filled by LoadWith from 17TRACK_API_KEY.
	LegacyAPIKey string
	BaseURL      string        `env:"PROVIDER_BASE_URL, default=https://api.17track.net"`
	Timeout      time.Duration `env:"PROVIDER_TIMEOUT,  default=15s"`
}

type LookupConfig struct {
	SettleDelay time.Duration `env:"SETTLE_DELAY,    default=2s"`
	RetryDelay  time.Duration `env:"RETRY_DELAY,     default=2s"`
	Attempts    int           `env:"LOOKUP_ATTEMPTS, default=3"`
}

// RedisConfig enables per-IP rate limiting on /track when Addr is set.
type RedisConfig struct {
	Addr               string `env:"REDIS_ADDR"`
	Password           string `env:"REDIS_PASSWORD"`
	DB                 int    `env:"REDIS_DB,              default=0"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE, default=30"`
}

// Key returns the configured provider key, or "" when none is set.
func (p ProviderConfig) Key() string {
	if k := strings.TrimSpace(p.APIKey); k != "" {
		return k
	}
	return strings.TrimSpace(p.LegacyAPIKey)
}

// KeyConfigured reports whether a provider key was supplied.
func (p ProviderConfig) KeyConfigured() bool {
	return p.Key() != ""
}

// MaskedKey shows only enough of the key to tell keys apart in logs.
func (p ProviderConfig) MaskedKey() string {
	k := p.Key()
	if len(k) <= 4 {
		return strings.Repeat("*", len(k))
	}
	return k[:4] + "..."
}

// RateLimitEnabled reports whether a Redis address was configured.
func (r RedisConfig) RateLimitEnabled() bool {
	return r.Addr != "" && r.RateLimitPerMinute > 0
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
// A missing provider key is not an error; lookups report it instead.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if v, ok := l.Lookup(legacyAPIKeyVar); ok {
		cfg.Provider.LegacyAPIKey = v
	}
	return &cfg, nil
}
