// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package auth

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
	"github.com/marcelmaino/bpd-dashboard/internal/models"
)

type contextKey string

// ClaimsContextKey holds the *Claims of an authenticated request.
const ClaimsContextKey contextKey = "claims"

// TokenCookieName is the HttpOnly cookie set at login.
const TokenCookieName = "token"

// Authentication modes.
const (
	AuthModeJWT  = "jwt"
	AuthModeNone = "none"
)

// Middleware provides authentication and rate limiting middleware
type Middleware struct {
	jwtManager        *JWTManager
	authMode          string
	rateLimiter       *RateLimiter
	rateLimitDisabled bool
	trustedProxies    map[string]bool
}

// NewMiddleware creates the authentication middleware. jwtManager may be
// nil when cfg.AuthMode is none.
func NewMiddleware(jwtManager *JWTManager, cfg *config.SecurityConfig) *Middleware {
	trustedMap := make(map[string]bool)
	for _, proxy := range cfg.TrustedProxies {
		trustedMap[proxy] = true
	}

	m := &Middleware{
		jwtManager:        jwtManager,
		authMode:          cfg.AuthMode,
		rateLimiter:       NewRateLimiter(cfg.RateLimitReqs, cfg.RateLimitWindow),
		rateLimitDisabled: cfg.RateLimitDisabled,
		trustedProxies:    trustedMap,
	}

	// Start periodic cleanup for rate limiter (only if not disabled)
	if !cfg.RateLimitDisabled {
		go m.rateLimiter.startCleanup(5 * time.Minute)
	}

	return m
}

// AuthMode returns the configured authentication mode.
func (m *Middleware) AuthMode() string {
	return m.authMode
}

// Authenticate rejects requests without a valid token. The token comes
// from "Authorization: Bearer <token>", or the token cookie when the header
// is absent. With AUTH_MODE=none every request passes.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == AuthModeNone {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.ClaimsFromRequest(r)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			WriteUnauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// ClaimsFromRequest extracts and validates the request token, recording the
// outcome in auth_token_validations_total.
func (m *Middleware) ClaimsFromRequest(r *http.Request) (*Claims, error) {
	token, err := extractToken(r)
	if err != nil {
		metrics.RecordTokenValidation("missing")
		return nil, err
	}
	if m.jwtManager == nil {
		metrics.RecordTokenValidation("invalid")
		return nil, errNoJWT
	}

	claims, err := m.jwtManager.ValidateToken(token)
	if err != nil {
		metrics.RecordTokenValidation("invalid")
		return nil, err
	}
	metrics.RecordTokenValidation("valid")
	return claims, nil
}

type authError string

func (e authError) Error() string { return string(e) }

const (
	errMissingToken  authError = "unauthorized: missing token"
	errInvalidHeader authError = "unauthorized: invalid authorization header"
	errNoJWT         authError = "unauthorized: token authentication is not configured"
)

// extractToken reads the bearer token, falling back to the cookie.
func extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		cookie, err := r.Cookie(TokenCookieName)
		if err != nil || cookie.Value == "" {
			return "", errMissingToken
		}
		return cookie.Value, nil
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errInvalidHeader
	}
	return strings.TrimSpace(token), nil
}

// ContextWithClaims stores claims in ctx.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// WriteUnauthorized writes the 401 envelope.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck // response already committed
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Success: false,
		Error:   &models.APIError{Code: "UNAUTHORIZED", Message: message},
		Message: message,
	})
}

// RateLimit is middleware that enforces the global per-client limit
// (RATE_LIMIT_REQUESTS per RATE_LIMIT_WINDOW).
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip rate limiting if disabled (for CI/CD tests)
		if m.rateLimitDisabled {
			next.ServeHTTP(w, r)
			return
		}

		ip := m.ClientIP(r)
		if !m.rateLimiter.Allow(ip) {
			metrics.RecordRateLimitHit("global")
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the client address. Forwarding headers are honored only
// when the direct peer is a trusted proxy. X-Forwarded-For is read right to
// left and the first address that is not a trusted proxy wins; entries to
// its left were written by the client and are ignored.
func (m *Middleware) ClientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !m.trustedProxies[remoteIP] {
		return remoteIP
	}

	if ip := m.forwardedFor(r); ip != "" {
		return ip
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}

	return remoteIP
}

// forwardedFor returns the rightmost untrusted X-Forwarded-For address, or
// "" when the header is missing, malformed, or lists only trusted proxies.
func (m *Middleware) forwardedFor(r *http.Request) string {
	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		ip := strings.TrimSpace(hops[i])
		if ip == "" {
			continue
		}
		if net.ParseIP(ip) == nil {
			return ""
		}
		if !m.trustedProxies[ip] {
			return ip
		}
	}
	return ""
}

// Stop ends the rate limiter cleanup goroutine.
func (m *Middleware) Stop() {
	if !m.rateLimitDisabled {
		m.rateLimiter.Stop()
	}
}

// RateLimiter implements per-IP rate limiting with automatic cleanup
type RateLimiter struct {
	limiters  map[string]*rateLimiterEntry
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	stopClean chan struct{}
	stopOnce  sync.Once
}

// rateLimiterEntry wraps a rate limiter with last access time
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows reqsPerWindow requests per window per client, as a
// token bucket refilling evenly across the window.
func NewRateLimiter(reqsPerWindow int, window time.Duration) *RateLimiter {
	if reqsPerWindow < 1 {
		reqsPerWindow = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		limiters:  make(map[string]*rateLimiterEntry),
		rate:      rate.Every(window / time.Duration(reqsPerWindow)),
		burst:     reqsPerWindow,
		stopClean: make(chan struct{}),
	}
}

// Allow checks if a request from the given IP is allowed
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	entry, exists := rl.limiters[ip]
	if !exists {
		entry = &rateLimiterEntry{
			limiter: rate.NewLimiter(rl.rate, rl.burst),
		}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = time.Now()
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// startCleanup periodically removes stale rate limiters
func (rl *RateLimiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Hour)
		case <-rl.stopClean:
			return
		}
	}
}

// cleanup removes limiters idle for longer than maxIdle.
func (rl *RateLimiter) cleanup(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := time.Now().Add(-maxIdle)
	for ip, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, ip)
		}
	}
}

// Stop stops the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopClean) })
}
