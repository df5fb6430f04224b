package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The first check runs immediately so /health never serves the
// zero-value snapshot while waiting for the first tick.
func StartHealthMonitor(redisClient *redis.Client) {
	go func() {
		ctx := context.Background()

		check := func() {
			err := redisClient.Ping(ctx).Err()

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     err == nil,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
		check()

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
