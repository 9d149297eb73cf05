// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/marcelmaino/bpd-dashboard/internal/auth"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
	"github.com/marcelmaino/bpd-dashboard/internal/models"
	"github.com/marcelmaino/bpd-dashboard/internal/validation"
)

// maxLoginBodyBytes caps the login body; a credential pair is tiny.
const maxLoginBodyBytes = 4 << 10

const (
	msgCredentialsRequired = "Username and password are required"
	msgInvalidCredentials  = "Invalid credentials"
	msgLoginSuccessful     = "Login successful"
	msgInvalidToken        = "Invalid or expired token"
)

// anonymousUser is reported by /api/auth/validate when AUTH_MODE=none and
// the request carries no usable token.
var anonymousUser = models.UserInfo{ID: "anonymous", PlayerName: "anonymous", Role: auth.RoleAdmin}

// Login handles POST /api/auth/login and POST /login.
//
// The body is {"username", "password"}; "playerName" is accepted in place
// of username. Unknown users and wrong passwords both produce the same 401.
// On success the token is returned in the body and set as an HttpOnly
// cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseLoginRequest(w, r)
	if !ok {
		return
	}

	user, err := h.users.VerifyCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrUserNotFound) {
			metrics.RecordAuthAttempt("invalid_credentials")
			logging.Ctx(r.Context()).Info().
				Str("username", sanitizeLogValue(req.Username)).
				Msg("Login rejected")
			respondError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, msgInvalidCredentials, nil)
			return
		}
		metrics.RecordAuthAttempt("error")
		logging.Ctx(r.Context()).Error().Err(err).Msg("Credential check failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, msgInternalError, nil)
		return
	}

	data := models.LoginData{User: userInfo(user.Username, user.Role)}
	if h.jwtManager != nil {
		token, expiresAt, err := h.jwtManager.GenerateToken(user.Username, user.Role)
		if err != nil {
			metrics.RecordAuthAttempt("error")
			logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to sign token")
			respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, msgInternalError, nil)
			return
		}
		data.Token = token
		data.ExpiresAt = expiresAt.UTC().Format(time.RFC3339)
		setAuthCookie(w, r, token, expiresAt)
	}

	metrics.RecordAuthAttempt("success")
	logging.Ctx(r.Context()).Info().
		Str("username", sanitizeLogValue(user.Username)).
		Str("role", user.Role).
		Msg("Login successful")

	respondJSON(w, r, http.StatusOK, models.LoginResponse{
		Success: true,
		Data:    data,
		Message: msgLoginSuccessful,
	})
}

// parseLoginRequest decodes and validates the login body. It writes the 400
// response itself and reports false when the request cannot proceed.
func (h *Handler) parseLoginRequest(w http.ResponseWriter, r *http.Request) (*models.LoginRequest, bool) {
	var req models.LoginRequest
	body := http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		message := "Invalid request body"
		if errors.Is(err, io.EOF) {
			message = msgCredentialsRequired
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, message, nil)
		return nil, false
	}
	req.Normalize()

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		message := apiErr.Message
		if strings.TrimSpace(req.Username) == "" || req.Password == "" {
			message = msgCredentialsRequired
		}
		respondError(w, r, http.StatusBadRequest, apiErr.Code, message, apiErr.Details)
		return nil, false
	}
	return &req, true
}

// Validate handles GET /api/auth/validate.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	claims, err := h.authMW.ClaimsFromRequest(r)
	if err != nil {
		if h.authMW.AuthMode() == auth.AuthModeNone {
			respondJSON(w, r, http.StatusOK, models.ValidateResponse{
				Success: true,
				Data:    models.ValidateData{User: anonymousUser},
			})
			return
		}
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
		auth.WriteUnauthorized(w, msgInvalidToken)
		return
	}

	respondJSON(w, r, http.StatusOK, models.ValidateResponse{
		Success: true,
		Data:    models.ValidateData{User: userInfo(claims.Username, claims.Role)},
	})
}

// userInfo is the public view of an account. The dashboard uses the
// username as both id and display name.
func userInfo(username, role string) models.UserInfo {
	return models.UserInfo{ID: username, PlayerName: username, Role: role}
}

// setAuthCookie sets the HttpOnly token cookie read by auth.Middleware when
// no Authorization header is sent.
func setAuthCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	})
}
