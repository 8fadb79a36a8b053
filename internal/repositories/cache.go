package repositories

import (
	"context"
	"sync"
	"time"

	"kma-forecast/internal/models"
	"kma-forecast/pkg/kmagrid"
	"kma-forecast/pkg/logger"
)

type cacheKey struct {
	bulletin models.Bulletin
	point    kmagrid.Point
}

type cacheEntry struct {
	items     []models.Item
	expiresAt time.Time
}

// CachedRepository serves repeated requests for the same bulletin and grid cell from memory.
// Empty results are not cached: the portal answers NO_DATA for a short while after each release.
type CachedRepository struct {
	repo  ForecastRepository
	ttl   time.Duration
	now   func() time.Time
	l     *logger.Logger
	mutex sync.RWMutex
	items map[cacheKey]cacheEntry

	hits   int
	misses int
}

func NewCachedRepository(repo ForecastRepository, ttl time.Duration, l *logger.Logger) *CachedRepository {
	return &CachedRepository{
		repo:  repo,
		ttl:   ttl,
		now:   time.Now,
		l:     l,
		items: make(map[cacheKey]cacheEntry),
	}
}

func (c *CachedRepository) Name() string {
	return c.repo.Name() + " [Cached]"
}

func (c *CachedRepository) FetchItems(ctx context.Context, bulletin models.Bulletin, point kmagrid.Point) ([]models.Item, error) {
	key := cacheKey{bulletin: bulletin, point: point}

	c.mutex.RLock()
	entry, found := c.items[key]
	c.mutex.RUnlock()

	if found && c.now().Before(entry.expiresAt) {
		c.mutex.Lock()
		c.hits++
		c.mutex.Unlock()

		c.l.Debug("cache hit", map[string]any{"bulletin": bulletin.String(), "grid": point.String()})
		return entry.items, nil
	}

	c.mutex.Lock()
	c.misses++
	c.mutex.Unlock()

	items, err := c.repo.FetchItems(ctx, bulletin, point)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		c.mutex.Lock()
		c.evictExpired()
		c.items[key] = cacheEntry{items: items, expiresAt: c.now().Add(c.ttl)}
		c.mutex.Unlock()
	}

	return items, nil
}

// evictExpired must be called with the write lock held.
func (c *CachedRepository) evictExpired() {
	now := c.now()
	for k, e := range c.items {
		if !now.Before(e.expiresAt) {
			delete(c.items, k)
		}
	}
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedRepository) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.hits, c.misses
}

var _ ForecastRepository = (*CachedRepository)(nil)
