package ccache

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"massnet.org/rsha/wire"
)

// CCache is a concurrent safe lru cache of digests.
type CCache struct {
	l     sync.Mutex
	cache *lru.Cache
}

// NewCCache creates a cache holding at most maxEntries digests.
// Zero means no limit.
func NewCCache(maxEntries int) *CCache {
	return &CCache{
		cache: lru.New(maxEntries),
	}
}

// Get looks up the digest stored under key.
func (c *CCache) Get(key string) (hash wire.Hash, ok bool) {
	c.l.Lock()
	defer c.l.Unlock()
	v, ok := c.cache.Get(key)
	if !ok {
		return wire.Hash{}, false
	}
	return v.(wire.Hash), true
}

func (c *CCache) Add(key string, hash wire.Hash) {
	c.l.Lock()
	c.cache.Add(key, hash)
	c.l.Unlock()
}

func (c *CCache) Remove(key string) {
	c.l.Lock()
	c.cache.Remove(key)
	c.l.Unlock()
}

func (c *CCache) Clear() {
	c.l.Lock()
	c.cache.Clear()
	c.l.Unlock()
}

func (c *CCache) Len() int {
	c.l.Lock()
	defer c.l.Unlock()
	return c.cache.Len()
}
