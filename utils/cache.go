// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"skyretail/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated client for shopping session storage.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for shopping sessions
// (using DB from AppConfig for session caching).
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for shopping sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// SessionTTL returns the configured shopping session lifetime.
func SessionTTL() time.Duration {
	return time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
}
