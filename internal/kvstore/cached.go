package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"
)

type cachedValue struct {
	value string
	found bool
}

// Cached puts an in-process ccache in front of a slower Store. Writes go
// through to the backend and refresh the cached entry.
//
// Every write bumps a per-key generation. A miss only fills the cache when
// no write landed between its backend read and the fill, so a slow reader
// never parks an overwritten value in the cache.
type Cached struct {
	next  Store
	cache *ccache.Cache[cachedValue]
	ttl   time.Duration

	mu  sync.Mutex
	gen map[string]uint64
}

func NewCached(next Store, size int64, ttl time.Duration) *Cached {
	if size <= 0 {
		size = 1000
	}
	return &Cached{
		next:  next,
		cache: ccache.New(ccache.Configure[cachedValue]().MaxSize(size)),
		ttl:   ttl,
		gen:   map[string]uint64{},
	}
}

func (c *Cached) Get(ctx context.Context, key string) (string, bool, error) {
	if item := c.cache.Get(key); item != nil && !item.Expired() {
		v := item.Value()
		return v.value, v.found, nil
	}

	c.mu.Lock()
	seen := c.gen[key]
	c.mu.Unlock()

	value, found, err := c.next.Get(ctx, key)
	if err != nil {
		return "", false, err
	}

	c.mu.Lock()
	if c.gen[key] == seen {
		c.cache.Set(key, cachedValue{value: value, found: found}, c.ttl)
	}
	c.mu.Unlock()
	return value, found, nil
}

func (c *Cached) Set(ctx context.Context, key, value string) error {
	err := c.next.Set(ctx, key, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen[key]++
	if err != nil {
		c.cache.Delete(key)
		return err
	}
	c.cache.Set(key, cachedValue{value: value, found: true}, c.ttl)
	return nil
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	err := c.next.Delete(ctx, key)

	c.mu.Lock()
	c.gen[key]++
	c.cache.Delete(key)
	c.mu.Unlock()
	return err
}

func (c *Cached) Close() error {
	c.cache.Stop()
	return c.next.Close()
}

var _ Store = (*Cached)(nil)
