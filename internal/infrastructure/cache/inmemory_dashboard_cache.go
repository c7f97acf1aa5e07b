package cache

import (
	"context"
	"sync"
	"time"

	"github.com/backoffice/server/internal/application/analytics"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// InMemoryDashboardCache stores dashboard snapshots in a local map. Suitable
// for single-instance deployments and testing.
type InMemoryDashboardCache struct {
	mu        sync.RWMutex
	entries   map[string]entry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryDashboardCache creates an in-memory cache and starts a
// background goroutine that removes expired entries.
func NewInMemoryDashboardCache() *InMemoryDashboardCache {
	c := &InMemoryDashboardCache{
		entries:  make(map[string]entry),
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

// Get returns the cached value, or (nil, nil) when the key is absent or the
// entry has expired.
func (c *InMemoryDashboardCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[key]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, nil
	}
	return e.value, nil
}

// Set stores the value with the given TTL.
func (c *InMemoryDashboardCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *InMemoryDashboardCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

func (c *InMemoryDashboardCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *InMemoryDashboardCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Size returns the number of entries in the cache (for testing/monitoring)
func (c *InMemoryDashboardCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ analytics.DashboardCache = (*InMemoryDashboardCache)(nil)
