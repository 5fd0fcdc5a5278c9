package weather

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/observability"
)

// CachedSource wraps a Source with a TTL cache keyed by date range, so
// repeated dashboard updates over the same range do not hammer the proxy.
type CachedSource struct {
	inner   Source
	clock   clockwork.Clock
	ttl     time.Duration
	metrics *observability.Metrics

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	observations []models.WeatherObservation
	fetchedAt    time.Time
}

// NewCachedSource creates a cache decorator. clock is injectable for tests;
// pass clockwork.NewRealClock() in production. metrics may be nil.
func NewCachedSource(inner Source, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedSource {
	return &CachedSource{
		inner:   inner,
		clock:   clock,
		ttl:     ttl,
		metrics: metrics,
		entries: make(map[string]cacheEntry),
	}
}

// DailyObservations serves from cache when a fresh entry exists, otherwise
// delegates to the inner source. Errors are never cached so a transient
// proxy failure can be retried on the next update.
func (c *CachedSource) DailyObservations(ctx context.Context, startDate, endDate string) ([]models.WeatherObservation, error) {
	key := fmt.Sprintf("%s|%s", startDate, endDate)

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()

	if ok && c.clock.Since(entry.fetchedAt) < c.ttl {
		c.countCache("hit")
		return entry.observations, nil
	}
	c.countCache("miss")

	observations, err := c.inner.DailyObservations(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{observations: observations, fetchedAt: c.clock.Now()}
	c.mu.Unlock()
	return observations, nil
}

func (c *CachedSource) countCache(result string) {
	if c.metrics != nil {
		c.metrics.WeatherCache.WithLabelValues(result).Inc()
	}
}
