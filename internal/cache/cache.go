package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	KindRedis  = "redis"
	KindMemory = "memory"
	KindNone   = "none"
)

// ReportCache keeps serialized report payloads for a limited time.
// A miss is reported with ok == false and a nil error.
type ReportCache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// New picks the cache implementation by kind; rdb is only used for KindRedis.
func New(kind string, rdb *redis.Client, memorySizeMB int) (ReportCache, error) {
	switch kind {
	case KindRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis report cache needs a redis client")
		}
		return NewRedisCache(rdb, "gym:report:"), nil
	case KindMemory:
		return NewMemoryCache(memorySizeMB), nil
	case KindNone, "":
		return NopCache{}, nil
	default:
		return nil, fmt.Errorf("unknown report cache: %s", kind)
	}
}

type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}
