package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

var _ ReportCache = (*MemoryCache)(nil)

// MemoryCache is an in-process cache for single instance deployments.
type MemoryCache struct {
	cache *freecache.Cache
}

func NewMemoryCache(sizeMegabytes int) *MemoryCache {
	if sizeMegabytes <= 0 {
		sizeMegabytes = 16
	}
	megabyte := 1024 * 1024
	return &MemoryCache{
		cache: freecache.NewCache(sizeMegabytes * megabyte),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, err := c.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("memory cache get %s: %w", key, err)
	}
	return val, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	// freecache expires in whole seconds, 0 means never
	expireSeconds := int(ttl.Seconds())
	if ttl > 0 && expireSeconds == 0 {
		expireSeconds = 1
	}
	if err := c.cache.Set([]byte(key), value, expireSeconds); err != nil {
		return fmt.Errorf("memory cache set %s: %w", key, err)
	}
	return nil
}
