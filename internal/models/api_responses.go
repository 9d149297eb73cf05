// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package models

// APIError carries machine-readable error details inside the error envelope.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters or request body
//   - UNAUTHORIZED: Missing, invalid, or expired token; bad credentials
//   - NOT_FOUND: Unknown route
//   - METHOD_NOT_ALLOWED: Route exists for another method
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - SERVICE_UNAVAILABLE: Store circuit open
//   - INTERNAL_ERROR: Query failure or unexpected error
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every failed request. Message repeats the
// error message at the top level for clients that only read message.
//
// Example:
//
//	{
//	  "success": false,
//	  "error": {"code": "VALIDATION_ERROR", "message": "invalid startDate \"x\": expected a date in YYYY-MM-DD format"},
//	  "message": "invalid startDate \"x\": expected a date in YYYY-MM-DD format"
//	}
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error,omitempty"`
	Message string    `json:"message"`
}

// RecordsResponse is the /api/bpd-data envelope.
// TotalPages is ceil(Total/Limit).
type RecordsResponse struct {
	Success    bool         `json:"success"`
	Data       []HandRecord `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int64        `json:"totalPages"`
}

// MetricsResponse is the envelope of /api/metrics and
// /api/dashboard/metrics. The dashboard route also fills Data with the same
// object.
type MetricsResponse struct {
	Success bool     `json:"success"`
	Data    *Metrics `json:"data,omitempty"`
	Metrics *Metrics `json:"metrics"`
}

// PlayersResponse is the /api/players envelope.
type PlayersResponse struct {
	Success bool     `json:"success"`
	Players []string `json:"players"`
}

// FiltersResponse is the /api/dashboard/filters envelope.
type FiltersResponse struct {
	Success bool           `json:"success"`
	Data    *FilterOptions `json:"data"`
}

// HealthResponse is returned by /, /health and /api/health.
type HealthResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Version   string  `json:"version"`
	Uptime    float64 `json:"uptime"` // seconds
}

// ProbeResponse is returned by the liveness and readiness probes.
type ProbeResponse struct {
	Status  string `json:"status"`
	Breaker string `json:"breaker,omitempty"` // store circuit breaker: closed, half-open, open, disabled
	Error   string `json:"error,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
//
// The dashboard login form historically posted playerName instead of
// username; PlayerName is accepted as a fallback.
//
// Example:
//
//	{
//	  "username": "admin",
//	  "password": "admin123"
//	}
type LoginRequest struct {
	Username   string `json:"username" validate:"required,notblank,max=100"`
	PlayerName string `json:"playerName,omitempty"`
	Password   string `json:"password" validate:"required,max=200"`
}

// Normalize copies PlayerName into an empty Username.
func (r *LoginRequest) Normalize() {
	if r.Username == "" {
		r.Username = r.PlayerName
	}
}

// UserInfo is the public view of an authenticated account.
// ID and PlayerName are both the username.
type UserInfo struct {
	ID         string `json:"id"`
	PlayerName string `json:"playerName"`
	Role       string `json:"role"`
}

// LoginData is the data member of a successful login.
type LoginData struct {
	Token     string   `json:"token"`
	User      UserInfo `json:"user"`
	ExpiresAt string   `json:"expiresAt"`
}

// LoginResponse is returned by a successful login.
//
// Token usage:
//   - Sent as Authorization: Bearer <token> on every data request
//   - Also set as an HttpOnly "token" cookie
type LoginResponse struct {
	Success bool      `json:"success"`
	Data    LoginData `json:"data"`
	Message string    `json:"message"`
}

// ValidateData is the data member of /api/auth/validate.
type ValidateData struct {
	User UserInfo `json:"user"`
}

// ValidateResponse is returned for a valid token.
type ValidateResponse struct {
	Success bool         `json:"success"`
	Data    ValidateData `json:"data"`
}
