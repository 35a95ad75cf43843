// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingDSN = errors.New("POSTGRES_DSN is required")

type Config struct {
	Env      string
	Port     string
	LogLevel slog.Level

	PostgresDSN     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	CacheSize int
	CacheTTL  time.Duration

	ShutdownTimeout time.Duration
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	p := parser{lookup: lookup}

	cfg := &Config{
		Env:             p.str("APP_ENV", "development"),
		Port:            p.str("PORT", "8080"),
		LogLevel:        p.level("LOG_LEVEL", slog.LevelInfo),
		PostgresDSN:     p.str("POSTGRES_DSN", ""),
		MaxOpenConns:    p.integer("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns:    p.integer("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: p.duration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		CacheSize:       p.integer("CACHE_SIZE", 256),
		CacheTTL:        p.duration("CACHE_TTL", 30*time.Second),
		ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}

	if len(p.errs) > 0 {
		return nil, errors.Join(p.errs...)
	}
	if cfg.PostgresDSN == "" {
		return nil, ErrMissingDSN
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

type parser struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (p *parser) str(key, def string) string {
	if v, ok := p.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (p *parser) integer(key string, def int) int {
	raw := p.str(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", key, raw))
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	raw := p.str(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", key, raw))
		return def
	}
	return d
}

func (p *parser) level(key string, def slog.Level) slog.Level {
	raw := p.str(key, "")
	if raw == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid level %q", key, raw))
		return def
	}
	return lvl
}
