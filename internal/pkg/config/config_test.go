package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Provider.BaseURL != "https://api.17track.net" {
		t.Errorf("base url = %q", cfg.Provider.BaseURL)
	}
	if cfg.Provider.Timeout != 15*time.Second {
		t.Errorf("timeout = %s", cfg.Provider.Timeout)
	}
	if cfg.Lookup.SettleDelay != 2*time.Second || cfg.Lookup.RetryDelay != 2*time.Second || cfg.Lookup.Attempts != 3 {
		t.Errorf("unexpected lookup defaults: %+v", cfg.Lookup)
	}
	if cfg.Provider.KeyConfigured() {
		t.Error("no key must be configured by default")
	}
	if cfg.Redis.RateLimitEnabled() {
		t.Error("rate limiting must be off without REDIS_ADDR")
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development env by default")
	}
}

func TestLoadWith_PrimaryKey(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"TRACKING_API_KEY": "primary-key",
		"17TRACK_API_KEY":  "legacy-key",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider.Key() != "primary-key" {
		t.Errorf("expected primary key, got %q", cfg.Provider.Key())
	}
}

func TestLoadWith_LegacyKeyFallback(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"17TRACK_API_KEY": "legacy-key",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider.Key() != "legacy-key" {
		t.Errorf("expected legacy key, got %q", cfg.Provider.Key())
	}
	if !cfg.Provider.KeyConfigured() {
		t.Error("expected key to be configured")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SETTLE_DELAY":          "500ms",
		"LOOKUP_ATTEMPTS":       "5",
		"REDIS_ADDR":            "localhost:6379",
		"RATE_LIMIT_PER_MINUTE": "10",
		"ENV":                   "production",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Lookup.SettleDelay != 500*time.Millisecond || cfg.Lookup.Attempts != 5 {
		t.Errorf("unexpected lookup config: %+v", cfg.Lookup)
	}
	if !cfg.Redis.RateLimitEnabled() || cfg.Redis.RateLimitPerMinute != 10 {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.IsDevelopment() {
		t.Error("expected production env")
	}
}

func TestLoadWith_InvalidDuration(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"RETRY_DELAY": "soon",
	}))
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestProviderConfig_MaskedKey(t *testing.T) {
	if got := (ProviderConfig{APIKey: "ABCDEF123456"}).MaskedKey(); got != "ABCD..." {
		t.Errorf("got %q", got)
	}
	if got := (ProviderConfig{APIKey: "abc"}).MaskedKey(); got != "***" {
		t.Errorf("got %q", got)
	}
}

func TestLoadWith_EmptyEnvironmentNeverFails(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"nothing set":  {},
		"primary only": {"TRACKING_API_KEY": "abc"},
		"legacy only":  {"17TRACK_API_KEY": "abc"},
	} {
		if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
	}
}
