package dataset_cache

import (
	"context"
	"log"
	"time"

	"github.com/orlantha/e-commerce/config"
)

// TTL bounds how long a fetched payload is reused before the source is hit
// again. The published table is effectively static, so a day is generous.
const TTL = 24 * time.Hour

const keyPrefix = "dataset:payload:"

// Get returns the cached raw CSV payload for source. Always a miss when no
// Redis client is configured.
func Get(ctx context.Context, source string) ([]byte, bool) {
	if config.RedisClient == nil {
		return nil, false
	}
	payload, err := config.RedisClient.Get(ctx, keyPrefix+source).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the raw payload for source. A no-op without Redis; storage
// errors only log, a cold cache is never fatal.
func Set(ctx context.Context, source string, payload []byte) {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Set(ctx, keyPrefix+source, payload, TTL).Err(); err != nil {
		log.Printf("[dataset.cache] ERROR store source=%s err=%v", source, err)
	}
}
