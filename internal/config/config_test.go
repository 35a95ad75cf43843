package config

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"POSTGRES_DSN": "postgres://localhost/quiz?sslmode=disable",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.MaxOpenConns != 20 || cfg.MaxIdleConns != 10 || cfg.ConnMaxLifetime != 30*time.Minute {
		t.Errorf("unexpected pool defaults: %+v", cfg)
	}
	if cfg.CacheSize != 256 || cfg.CacheTTL != 30*time.Second || cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected cache/shutdown defaults: %+v", cfg)
	}
	if cfg.IsProduction() {
		t.Errorf("expected development env by default")
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"POSTGRES_DSN": "dsn",
		"APP_ENV":      "production",
		"PORT":         "9090",
		"LOG_LEVEL":    "debug",
		"CACHE_SIZE":   "0",
		"CACHE_TTL":    "2m",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.IsProduction() || cfg.Port != "9090" || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("unexpected overrides: %+v", cfg)
	}
	if cfg.CacheSize != 0 || cfg.CacheTTL != 2*time.Minute {
		t.Errorf("unexpected cache settings: %+v", cfg)
	}
}

func TestFromLookup_MissingDSN(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{}))
	if !errors.Is(err, ErrMissingDSN) {
		t.Fatalf("expected ErrMissingDSN, got %v", err)
	}
}

func TestFromLookup_ReportsEveryInvalidValue(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{
		"POSTGRES_DSN":      "dsn",
		"DB_MAX_OPEN_CONNS": "many",
		"SHUTDOWN_TIMEOUT":  "soon",
		"LOG_LEVEL":         "loud",
	}))
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	for _, key := range []string{"DB_MAX_OPEN_CONNS", "SHUTDOWN_TIMEOUT", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("expected %s in error, got %v", key, err)
		}
	}
}
