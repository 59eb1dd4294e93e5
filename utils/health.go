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
	FleetAPI  bool      `json:"fleetApi"`
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
// upstreamPing is nil when the service runs against the static catalog.
func StartHealthMonitor(draftClient *redis.Client, upstreamPing func(ctx context.Context) error) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			redisOK := false
			if draftClient != nil {
				redisOK = draftClient.Ping(ctx).Err() == nil
			}

			upstreamOK := upstreamPing == nil
			if upstreamPing != nil {
				upstreamOK = upstreamPing(ctx) == nil
			}
			cancel()

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisOK,
				FleetAPI:  upstreamOK,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
