// Package cache is a small TTL cache in front of the read-heavy trades and
// portfolio endpoints. Entries are dropped whenever a placement commits, so
// cached responses never outlive the state they were computed from.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// Keys for the two cached query results.
const (
	KeyTrades    = "trades"
	KeyPortfolio = "portfolio"
)

type Cache struct {
	c   *ristretto.Cache
	ttl time.Duration
}

func New(maxCost int64, ttl time.Duration) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c, ttl: ttl}, nil
}

func (c *Cache) Get(key string) (any, bool) { return c.c.Get(key) }

// Set stores a value and waits for it to become visible, so a request that
// populated the cache is immediately served from it on the next hit.
func (c *Cache) Set(key string, val any) {
	c.c.SetWithTTL(key, val, 1, c.ttl)
	c.c.Wait()
}

// Del drops the given keys.
func (c *Cache) Del(keys ...string) {
	for _, k := range keys {
		c.c.Del(k)
	}
}
