// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and consistent.
// Error messages name the environment variable to change.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validDrivers = map[string]bool{
	DriverDuckDB:   true,
	DriverMySQL:    true,
	DriverPostgres: true,
	DriverPgx:      true,
	DriverSQLite:   true,
}

func (c *Config) validateDatabase() error {
	db := &c.Database
	if !validDrivers[db.Driver] {
		return fmt.Errorf("DB_DRIVER must be one of: duckdb, mysql, postgres, pgx, sqlite3")
	}

	if db.IsEmbedded() {
		if db.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=%s", db.Driver)
		}
	} else if db.DSN == "" {
		if err := c.validateDatabaseServer(); err != nil {
			return err
		}
	}

	if db.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	if db.MaxOpenConns < 0 || db.MaxIdleConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must not be negative")
	}
	if db.QueryTimeout < 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must not be negative")
	}

	return c.validateBreaker()
}

// validateDatabaseServer checks the host fields used when DB_DSN is empty.
func (c *Config) validateDatabaseServer() error {
	db := &c.Database
	if db.Host == "" {
		return fmt.Errorf("DB_HOST is required when DB_DRIVER=%s and DB_DSN is not set", db.Driver)
	}
	if db.Name == "" {
		return fmt.Errorf("DB_NAME is required when DB_DRIVER=%s and DB_DSN is not set", db.Driver)
	}
	if db.User == "" {
		return fmt.Errorf("DB_USER is required when DB_DRIVER=%s and DB_DSN is not set", db.Driver)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("DB_PORT must be between 1 and 65535")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	b := &c.Database.Breaker
	if !b.Enabled {
		return nil
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("database.breaker.failure_ratio must be in (0, 1]")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("DB_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	return nil
}

// maxPageSize is the largest page the dashboard table accepts.
const maxPageSize = 100

func (c *Config) validateAPI() error {
	if c.API.MaxPageSize < 1 || c.API.MaxPageSize > maxPageSize {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be between 1 and %d", maxPageSize)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and API_MAX_PAGE_SIZE (%d)", c.API.MaxPageSize)
	}
	if c.API.CacheTTL < 0 {
		return fmt.Errorf("API_CACHE_TTL must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if err := c.validateAuthMode(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	if err := c.validateUsers(); err != nil {
		return err
	}

	if c.Security.AuthMode == "jwt" {
		return c.validateJWTAuth()
	}
	return nil
}

var validAuthModes = map[string]bool{
	"none": true,
	"jwt":  true,
}

func (c *Config) validateAuthMode() error {
	if !validAuthModes[c.Security.AuthMode] {
		return fmt.Errorf("AUTH_MODE must be one of: none, jwt")
	}
	if c.Security.AuthMode == "none" && c.IsProduction() {
		return fmt.Errorf("AUTH_MODE=none is not allowed when ENVIRONMENT=production. " +
			"Set AUTH_MODE=jwt or use ENVIRONMENT=development for local testing")
	}
	return nil
}

// validateCORS rejects wildcard origins in production with authentication,
// since the dashboard sends credentials on every request.
func (c *Config) validateCORS() error {
	if c.Security.AuthMode != "none" && c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production with authentication enabled. " +
			"Set specific origins, e.g. CORS_ORIGINS=https://dashboard.example.com")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports a wildcard origin combined with authentication.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.Security.AuthMode != "none" && c.hasWildcardCORS()
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validRoles = map[string]bool{
	"admin":  true,
	"player": true,
}

// validateUsers checks configured accounts. The built-in development
// accounts use well-known passwords and are refused in production.
func (c *Config) validateUsers() error {
	if c.Security.SeedDefaultUsers && c.IsProduction() {
		return fmt.Errorf("SEED_DEFAULT_USERS=true is not allowed when ENVIRONMENT=production")
	}

	seen := make(map[string]bool, len(c.Security.Users))
	for i, u := range c.Security.Users {
		if u.Username == "" {
			return fmt.Errorf("security.users[%d].username is required", i)
		}
		if seen[u.Username] {
			return fmt.Errorf("security.users[%d].username %q is duplicated", i, u.Username)
		}
		seen[u.Username] = true
		if !strings.HasPrefix(u.PasswordHash, "$2") {
			return fmt.Errorf("security.users[%d].password_hash must be a bcrypt hash (see bpdctl hash-password)", i)
		}
		if !validRoles[u.Role] {
			return fmt.Errorf("security.users[%d].role must be one of: admin, player", i)
		}
	}

	if (c.Security.AdminUsername == "") != (c.Security.AdminPassword == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	if c.Security.AdminPassword != "" && containsPlaceholder(c.Security.AdminPassword) {
		return fmt.Errorf("ADMIN_PASSWORD contains a placeholder value - set a secure password")
	}
	return nil
}

// IsProduction reports ENVIRONMENT=production (or prod).
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

func (c *Config) validateJWTAuth() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_MODE is jwt")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters for security")
	}
	if containsPlaceholder(c.Security.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	if c.Security.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns mark values copied from an example file unchanged.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"YOUR_PASSWORD",
	"PLACEHOLDER",
	"EXAMPLE",
}

func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
