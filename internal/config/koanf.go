// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/bpd-dashboard/config.yaml",
	"/etc/bpd-dashboard/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar overrides the .env file location.
const DotEnvPathEnvVar = "DOTENV_PATH"

// defaultConfig returns the built-in defaults. Config file and environment
// values are layered on top.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          DriverDuckDB,
			Path:            "/data/bpd.duckdb",
			MaxMemory:       "1GB",
			Threads:         0,
			MaxOpenConns:    0,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Hour,
			QueryTimeout:    30 * time.Second,
			SeedMockData:    false,
			SkipSchema:      false,
			Breaker: BreakerConfig{
				Enabled:      true,
				MinRequests:  10,
				FailureRatio: 0.6,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MaxRequests:  3,
			},
		},
		Server: ServerConfig{
			Port:        3001,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			DefaultPageSize: 50,
			MaxPageSize:     100,
			CacheTTL:        30 * time.Second,
		},
		Security: SecurityConfig{
			AuthMode:          "jwt",
			SessionTimeout:    24 * time.Hour,
			SeedDefaultUsers:  false,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"http://localhost:3000", "http://localhost:5173"},
			TrustedProxies:    []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration with clear precedence:
// environment > .env > config file > defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	// Unset unless a file or the environment names it; see below.
	k.Delete(seedDefaultUsersPath)

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Database.applyDriverDefaults()
	if !k.Exists(seedDefaultUsersPath) {
		cfg.Security.SeedDefaultUsers = !cfg.IsProduction()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadDotEnv copies a .env file into the process environment. Variables
// that are already set keep their value. A missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(DotEnvPathEnvVar)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// seedDefaultUsersPath defaults to true outside production.
const seedDefaultUsersPath = "security.seed_default_users"

// sliceConfigPaths are read from comma-separated environment values.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// processSliceFields splits comma-separated strings for known slice fields.
// YAML lists are left untouched.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercase environment variable names to koanf paths.
// The DB_* names are the ones existing deployments already export.
var envMappings = map[string]string{
	// Server
	"http_port":      "server.port",
	"port":           "server.port",
	"http_host":      "server.host",
	"server_timeout": "server.timeout",
	"environment":    "server.environment",

	// Database
	"db_driver":          "database.driver",
	"duckdb_path":        "database.path",
	"db_path":            "database.path",
	"db_dsn":             "database.dsn",
	"db_host":            "database.host",
	"db_port":            "database.port",
	"db_user":            "database.user",
	"db_password":        "database.password",
	"db_name":            "database.name",
	"duckdb_max_memory":  "database.max_memory",
	"duckdb_threads":     "database.threads",
	"db_max_open_conns":  "database.max_open_conns",
	"db_max_idle_conns":  "database.max_idle_conns",
	"db_query_timeout":   "database.query_timeout",
	"seed_mock_data":     "database.seed_mock_data",
	"db_skip_schema":     "database.skip_schema",
	"db_breaker_enabled": "database.breaker.enabled",
	"db_breaker_timeout": "database.breaker.timeout",

	// API
	"api_default_page_size": "api.default_page_size",
	"api_max_page_size":     "api.max_page_size",
	"api_cache_ttl":         "api.cache_ttl",

	// Security
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"session_timeout":     "security.session_timeout",
	"admin_username":      "security.admin_username",
	"admin_password":      "security.admin_password",
	"seed_default_users":  "security.seed_default_users",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped names return "" so unrelated variables never reach the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
