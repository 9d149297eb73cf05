// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

// Package validation validates request bodies with go-playground/validator v10.
//
// A single validator is built on first use and shared; it caches struct
// metadata and is safe for concurrent use. Field errors name the JSON key the
// client sent, so a missing username reports "username is required".
//
// # Custom Tags
//
//   - notblank: string must contain a non-space character
//
// # Usage
//
//	var req models.LoginRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
