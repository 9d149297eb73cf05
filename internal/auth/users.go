// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package auth

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/marcelmaino/bpd-dashboard/internal/config"
	"github.com/marcelmaino/bpd-dashboard/internal/logging"
)

// Roles understood by the dashboard.
const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)

var (
	// ErrInvalidCredentials is returned for a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned for an unknown username.
	ErrUserNotFound = errors.New("user not found")
)

// PasswordHashCost is the bcrypt cost used by HashPassword.
var PasswordHashCost = 12

// User is an authenticated dashboard account.
type User struct {
	Username string
	Role     string
}

// UserStore verifies login credentials.
//
// Implementations return ErrUserNotFound or ErrInvalidCredentials; callers
// report both as the same 401 so usernames cannot be enumerated.
type UserStore interface {
	VerifyCredentials(ctx context.Context, username, password string) (*User, error)
}

// defaultUsers are the development accounts enabled by SEED_DEFAULT_USERS.
// They are only loaded with SEED_DEFAULT_USERS, which production refuses.
var defaultUsers = []struct {
	username, password, role string
}{
	{"admin", "admin123", RoleAdmin},
	{"player1", "player123", RolePlayer},
	{"player2", "player123", RolePlayer},
}

type storedUser struct {
	role string
	hash []byte
}

// MemoryUserStore keeps bcrypt-hashed accounts in memory. It is safe for
// concurrent use.
type MemoryUserStore struct {
	mu        sync.RWMutex
	users     map[string]storedUser
	dummyHash []byte
}

// NewMemoryUserStore builds the account set from configuration:
//
//  1. Development accounts when SeedDefaultUsers is set
//  2. security.users entries (already bcrypt-hashed)
//  3. ADMIN_USERNAME / ADMIN_PASSWORD as an admin account
//
// Later sources replace earlier accounts with the same username.
func NewMemoryUserStore(cfg *config.SecurityConfig) (*MemoryUserStore, error) {
	s := &MemoryUserStore{users: make(map[string]storedUser)}

	dummy, err := bcrypt.GenerateFromPassword([]byte("bpd-dashboard-dummy"), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash dummy password: %w", err)
	}
	s.dummyHash = dummy

	if cfg.SeedDefaultUsers {
		for _, u := range defaultUsers {
			if err := s.AddUser(u.username, u.password, u.role); err != nil {
				return nil, err
			}
		}
		logging.Warn().Msg("Development accounts admin, player1, player2 are enabled (SEED_DEFAULT_USERS)")
	}

	for _, u := range cfg.Users {
		if _, err := bcrypt.Cost([]byte(u.PasswordHash)); err != nil {
			return nil, fmt.Errorf("user %q: invalid bcrypt hash: %w", u.Username, err)
		}
		s.setHash(u.Username, u.Role, []byte(u.PasswordHash))
	}

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := s.AddUser(cfg.AdminUsername, cfg.AdminPassword, RoleAdmin); err != nil {
			return nil, err
		}
	}

	if s.Len() == 0 {
		logging.Warn().Msg("No dashboard accounts configured; every login will fail")
	}
	return s, nil
}

// AddUser hashes password and stores the account.
func (s *MemoryUserStore) AddUser(username, password, role string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("user %q: %w", username, err)
	}
	s.setHash(username, role, hash)
	return nil
}

func (s *MemoryUserStore) setHash(username, role string, hash []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = storedUser{role: role, hash: hash}
}

// VerifyCredentials implements UserStore. An unknown username still costs
// one bcrypt comparison.
func (s *MemoryUserStore) VerifyCredentials(_ context.Context, username, password string) (*User, error) {
	s.mu.RLock()
	u, ok := s.users[username]
	s.mu.RUnlock()

	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password)) //nolint:errcheck
		return nil, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &User{Username: username, Role: u.role}, nil
}

// Len returns the number of accounts.
func (s *MemoryUserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Usernames returns the account names in order.
func (s *MemoryUserStore) Usernames() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names
}

// HashPassword returns a bcrypt hash of password at PasswordHashCost.
func HashPassword(password string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}
