// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

/*
Package auth provides login, token validation, and per-client rate limiting.

Key Components:

  - JWTManager: HS256 token generation and validation (golang-jwt/jwt/v5)
  - UserStore: credential verification; MemoryUserStore holds bcrypt hashes
  - Middleware: Authenticate and RateLimit HTTP middleware
  - RateLimiter: token bucket per client IP (golang.org/x/time/rate)

Authentication Modes (AUTH_MODE):

 1. jwt (default): data routes require a token, sent as
    "Authorization: Bearer <token>" or the HttpOnly "token" cookie set at login.
 2. none: data routes are open. Refused when ENVIRONMENT=production.

Accounts:

Accounts come from security.users (bcrypt hashes, see bpdctl hash-password),
ADMIN_USERNAME/ADMIN_PASSWORD, and, in development only, the built-in
admin/player1/player2 accounts enabled by SEED_DEFAULT_USERS.

Usage:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	users, err := auth.NewMemoryUserStore(&cfg.Security)
	mw := auth.NewMiddleware(jwtManager, &cfg.Security)

	r.Group(func(r chi.Router) {
	    r.Use(mw.Authenticate)
	    r.Get("/api/bpd-data", h.BPDData)
	})

	// In a handler
	claims, ok := auth.ClaimsFromContext(r.Context())

Unknown usernames and wrong passwords both yield a 401 with the same
message; VerifyCredentials spends one bcrypt comparison either way.
*/
package auth
