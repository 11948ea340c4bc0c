package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the optional Redis client. The dashboard works without
// it (no payload cache, no rate limiting), so a missing or unreachable Redis
// degrades instead of aborting startup.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, running without Redis cache and rate limiting")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opt)

	// test connection
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("⚠️  Redis unreachable, continuing without it: %v", err)
		return
	}

	RedisClient = client
	log.Println("✅ Connected to Redis")
}
