// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
)

// tokenIssuer is the iss claim of every dashboard token.
const tokenIssuer = "bpd-dashboard"

// Claims represents JWT claims
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager handles JWT token creation and validation
type JWTManager struct {
	secret  []byte
	timeout time.Duration
	now     func() time.Time
}

// NewJWTManager creates a JWT manager signing with HMAC-SHA256.
//
// Security Requirements:
//   - JWT_SECRET must be at least 32 characters (enforced by config.Validate)
//   - Secret is stored as []byte
//   - Tokens expire after SESSION_TIMEOUT (default 24h)
func NewJWTManager(cfg *config.SecurityConfig) (*JWTManager, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	timeout := cfg.SessionTimeout
	if timeout <= 0 {
		timeout = 24 * time.Hour
	}

	return &JWTManager{
		secret:  []byte(secret),
		timeout: timeout,
		now:     time.Now,
	}, nil
}

// GenerateToken creates a signed token for an authenticated user and
// returns it with its expiry time.
//
// Token Claims:
//   - username, role: identify the dashboard account
//   - sub: the username
//   - iss: bpd-dashboard
//   - exp, iat, nbf: now + session timeout, now, now
//
// Tokens are stateless and cannot be revoked before expiration.
func (m *JWTManager) GenerateToken(username, role string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.timeout)

	claims := &Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, expiresAt, nil
}

// ValidateToken validates a JWT token and extracts the user claims.
//
// Validation Steps:
//  1. Parse token structure and extract claims
//  2. Check the signing algorithm is HS256 (rejects "none" and RS256 confusion)
//  3. Verify the HMAC signature
//  4. Verify exp, nbf, and iss
//
// Common Errors:
//   - "token is expired": the user must log in again
//   - "unexpected signing method": algorithm confusion attempt
//   - "failed to parse token": malformed token or wrong secret
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Username == "" {
		return nil, fmt.Errorf("invalid token claims: missing username")
	}

	return claims, nil
}
