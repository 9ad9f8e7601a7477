// Package config loads spockd's runtime configuration: the collaborator
// layer's listen address, signing secret, and backing stores. Adapted
// from the teacher's config.Load, which read a project's conduit.yml
// through viper with environment-variable overrides; the same
// defaults/file/env precedence chain generalizes directly since viper
// doesn't care what the keys mean.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is spockd's complete runtime configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Audit     AuditConfig     `mapstructure:"audit"`
}

// ServerConfig configures the HTTP collaborator.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the host:port pair net/http expects.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AuthConfig configures API-key token issuance.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// RateLimitConfig configures the Redis-backed sliding window.
type RateLimitConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	Limit     int           `mapstructure:"limit"`
	Window    time.Duration `mapstructure:"window"`
}

// AuditConfig configures the audit log's backing database/sql driver.
type AuditConfig struct {
	Driver string `mapstructure:"driver"` // "sqlite3" or "pgx"
	DSN    string `mapstructure:"dsn"`
}

// Load reads spock.yml (if present) from the current directory, layers
// SPOCK_-prefixed environment variables on top, and fills in defaults
// suitable for running spockd against a local Redis and an on-disk
// SQLite audit file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 4747)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("rate_limit.redis_addr", "localhost:6379")
	v.SetDefault("rate_limit.limit", 60)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("audit.driver", "sqlite3")
	v.SetDefault("audit.dsn", "spock-audit.db")

	v.SetConfigName("spock")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("spock")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read spock.yml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret (or SPOCK_AUTH_JWT_SECRET) is required")
	}
	if cfg.Server.Port <= 0 {
		return fmt.Errorf("config: server.port must be positive, got %d", cfg.Server.Port)
	}
	if cfg.Audit.Driver != "sqlite3" && cfg.Audit.Driver != "pgx" {
		return fmt.Errorf("config: audit.driver must be 'sqlite3' or 'pgx', got %q", cfg.Audit.Driver)
	}
	return nil
}
