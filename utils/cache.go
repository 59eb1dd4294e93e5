// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"fleethq/config"
)

// DraftClient is the Redis client backing the per-client draft store.
var DraftClient *redis.Client

// InitDraftStore initializes the Redis client used for draft bookings, draft
// agreements and the session-scoped policy-acceptance flags.
func InitDraftStore() {
	DraftClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := DraftClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Draft Store): %v", err)
	}
}

// GetDraftStoreClient returns the Redis client for the draft store.
func GetDraftStoreClient() *redis.Client {
	if DraftClient == nil {
		InitDraftStore()
	}
	return DraftClient
}
