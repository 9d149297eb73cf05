// BPD Dashboard - Poker Club Performance Analytics
// Copyright 2026 Marcel Maino
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/marcelmaino/bpd-dashboard

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/marcelmaino/bpd-dashboard/internal/metrics"
)

// cleanupInterval is how often expired entries are swept.
const cleanupInterval = time.Minute

// entry represents a cached item with expiration
type entry struct {
	data      interface{}
	expiresAt time.Time
}

// Cache is a thread-safe in-memory cache with a single TTL for all entries.
// A Cache with a zero TTL stores nothing, so callers need no separate
// "caching disabled" branch.
type Cache struct {
	name    string
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time

	statsMu sync.Mutex
	stats   Stats

	stop     chan struct{}
	stopOnce sync.Once
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Keys      int
}

// New creates a cache whose entries expire after ttl and starts the
// background sweep. name labels the bpd_cache_* metrics. Call Close to
// stop the sweep.
func New(name string, ttl time.Duration) *Cache {
	return newWithClock(name, ttl, time.Now)
}

func newWithClock(name string, ttl time.Duration, now func() time.Time) *Cache {
	c := &Cache{
		name:    name,
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
		stop:    make(chan struct{}),
	}
	if ttl > 0 {
		go c.cleanupLoop()
	}
	return c
}

// Enabled reports whether the cache stores entries.
func (c *Cache) Enabled() bool {
	return c != nil && c.ttl > 0
}

// Get returns the value under key unless it is missing or expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	if !c.Enabled() {
		return nil, false
	}

	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.record(false, 0)
		return nil, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.record(false, 1)
		return nil, false
	}

	c.record(true, 0)
	return e.data, true
}

// Set stores value under key for the cache TTL, replacing any entry.
func (c *Cache) Set(key string, value interface{}) {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	c.entries[key] = entry{data: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Clear drops every entry, e.g. after new rows were loaded.
func (c *Cache) Clear() {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	evicted := len(c.entries)
	c.entries = make(map[string]entry)
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += int64(evicted)
	c.statsMu.Unlock()
}

// GetStats returns a snapshot of the counters.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	keys := len(c.entries)
	c.mu.RUnlock()

	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	s := c.stats
	s.Keys = keys
	return s
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the background sweep. The cache stays usable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *Cache) cleanup() {
	now := c.now()

	c.mu.Lock()
	evicted := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	c.mu.Unlock()

	c.statsMu.Lock()
	c.stats.Evictions += int64(evicted)
	c.statsMu.Unlock()
}

func (c *Cache) record(hit bool, evicted int) {
	c.statsMu.Lock()
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.stats.Evictions += int64(evicted)
	c.statsMu.Unlock()

	metrics.RecordCacheLookup(c.name, hit)
}

// GenerateKey creates a cache key from the method name and parameters
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
