package utils

import (
	"context"
	"log"
	"time"

	"meetly/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client used for the availability read-model cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// SlotsVersionKey holds a counter folded into availability cache keys. Bumping
// it invalidates every cached slot window at once.
const SlotsVersionKey = "slots:ver"

// BumpSlotsVersion invalidates the availability cache after a booking or
// settings write.
func BumpSlotsVersion(ctx context.Context, client *redis.Client) error {
	return client.Incr(ctx, SlotsVersionKey).Err()
}
