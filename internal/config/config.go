// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2): defaults, config file, .env, environment.
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Supported values for DatabaseConfig.Driver.
const (
	DriverDuckDB   = "duckdb"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite3"
)

// DatabaseConfig selects and tunes the store holding the bpd table.
//
// Embedded drivers (duckdb, sqlite3) use Path. Server drivers (mysql,
// postgres, pgx) use DSN when set, otherwise Host/Port/User/Password/Name.
type DatabaseConfig struct {
	Driver   string `koanf:"driver"`
	Path     string `koanf:"path"`
	DSN      string `koanf:"dsn"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`

	MaxMemory string `koanf:"max_memory"` // DuckDB only
	Threads   int    `koanf:"threads"`    // DuckDB only, 0 = NumCPU

	MaxOpenConns    int           `koanf:"max_open_conns"` // 0 = NumCPU
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`

	SeedMockData bool `koanf:"seed_mock_data"` // Development rows for an empty table
	SkipSchema   bool `koanf:"skip_schema"`    // Table is managed externally

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the circuit breaker wrapped around store queries.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MinRequests  uint32        `koanf:"min_requests"`  // Requests per interval before the ratio is considered
	FailureRatio float64       `koanf:"failure_ratio"` // Trip when failures/requests reaches this
	Interval     time.Duration `koanf:"interval"`      // Closed-state count reset
	Timeout      time.Duration `koanf:"timeout"`       // Open-state duration before half-open
	MaxRequests  uint32        `koanf:"max_requests"`  // Probes allowed while half-open
}

// IsEmbedded reports whether the driver stores data in a local file.
func (c *DatabaseConfig) IsEmbedded() bool {
	return c.Driver == DriverDuckDB || c.Driver == DriverSQLite
}

// applyDriverDefaults fills the well-known port of server drivers.
func (c *DatabaseConfig) applyDriverDefaults() {
	if c.Port != 0 {
		return
	}
	switch c.Driver {
	case DriverMySQL:
		c.Port = 3306
	case DriverPostgres, DriverPgx:
		c.Port = 5432
	}
}

// Address returns host:port for server drivers.
func (c *DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig holds pagination bounds for /api/bpd-data and the response
// cache lifetime for the filters and players endpoints.
type APIConfig struct {
	DefaultPageSize int           `koanf:"default_page_size"`
	MaxPageSize     int           `koanf:"max_page_size"`
	CacheTTL        time.Duration `koanf:"cache_ttl"` // 0 disables caching
}

// UserConfig is a dashboard account. PasswordHash is a bcrypt hash
// (bpdctl hash-password prints one).
type UserConfig struct {
	Username     string `koanf:"username"`
	PasswordHash string `koanf:"password_hash"`
	Role         string `koanf:"role"`
}

// SecurityConfig holds authentication, CORS, and rate limiting settings.
type SecurityConfig struct {
	AuthMode         string        `koanf:"auth_mode"` // jwt or none
	JWTSecret        string        `koanf:"jwt_secret"`
	SessionTimeout   time.Duration `koanf:"session_timeout"`
	AdminUsername    string        `koanf:"admin_username"`
	AdminPassword    string        `koanf:"admin_password"`
	Users            []UserConfig  `koanf:"users"`
	SeedDefaultUsers bool          `koanf:"seed_default_users"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig mirrors logging.Config.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads configuration from defaults, config file, .env, and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
