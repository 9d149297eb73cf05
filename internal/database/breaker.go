// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
)

const breakerName = "bpd-store"

// newBreaker builds the circuit breaker guarding store queries.
//
// Circuit breaker configuration (defaults):
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 30 second open state before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
func newBreaker(name string, cfg config.BreakerConfig) *gobreaker.CircuitBreaker[struct{}] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		// A canceled request says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, sql.ErrNoRows)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
}

// execute runs one store query under the query timeout and the circuit
// breaker, recording its duration and outcome.
func (db *DB) execute(ctx context.Context, operation string, fn func(context.Context) error) error {
	start := time.Now()
	err := db.guard(ctx, fn)
	metrics.RecordDBQuery(operation, db.cfg.Driver, time.Since(start), err)

	if err != nil && isConnectionError(err) {
		logging.Ctx(ctx).Error().Err(err).Str("operation", operation).Msg("Database connection error")
	}
	return err
}

func (db *DB) guard(ctx context.Context, fn func(context.Context) error) error {
	if db.breaker == nil {
		return fn(ctx)
	}

	_, err := db.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
			return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		counts := db.breaker.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(float64(counts.ConsecutiveFailures))
		return err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)
	return nil
}

// BreakerState reports the circuit breaker state ("disabled" when off).
func (db *DB) BreakerState() string {
	if db.breaker == nil {
		return "disabled"
	}
	return stateToString(db.breaker.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
