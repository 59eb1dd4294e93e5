package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"fleethq/models"
	"fleethq/utils"
)

// RedisBridge keeps drafts in Redis, serialized as JSON under well-known
// per-client keys. Last write wins; exactly one booking flow is active per
// client at a time by construction.
type RedisBridge struct {
	Client *redis.Client
	Logger *zap.Logger
}

// NewRedisBridge wires the Redis-backed draft store.
func NewRedisBridge(client *redis.Client, logger *zap.Logger) *RedisBridge {
	return &RedisBridge{Client: client, Logger: logger}
}

func (r *RedisBridge) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := r.Client.Set(ctx, key, data, utils.DraftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

// load fetches and decodes a draft. Absent keys and corrupt payloads both
// yield a miss, not an error: the stored value may have been tampered with
// and this layer is only a best-effort cache.
func (r *RedisBridge) load(ctx context.Context, key string, out any) (bool, error) {
	data, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read draft: %w", err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		r.Logger.Warn("Discarding corrupt draft", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (r *RedisBridge) SaveDraftBooking(ctx context.Context, clientID string, booking *models.Booking) error {
	return r.save(ctx, utils.DraftBookingKeyPrefix+clientID, booking)
}

func (r *RedisBridge) LoadDraftBooking(ctx context.Context, clientID string) (*models.Booking, error) {
	var booking models.Booking
	ok, err := r.load(ctx, utils.DraftBookingKeyPrefix+clientID, &booking)
	if err != nil || !ok {
		return nil, err
	}
	return &booking, nil
}

func (r *RedisBridge) SaveDraftAgreement(ctx context.Context, clientID string, agreement *models.Agreement) error {
	return r.save(ctx, utils.DraftAgreementKeyPrefix+clientID, agreement)
}

func (r *RedisBridge) LoadDraftAgreement(ctx context.Context, clientID string) (*models.Agreement, error) {
	var agreement models.Agreement
	ok, err := r.load(ctx, utils.DraftAgreementKeyPrefix+clientID, &agreement)
	if err != nil || !ok {
		return nil, err
	}
	return &agreement, nil
}

func (r *RedisBridge) MarkTermsAccepted(ctx context.Context, clientID, kind string) error {
	key := utils.TermsAcceptedKeyPrefix + clientID
	if err := r.Client.Set(ctx, key, kind, utils.TermsAcceptedTTL).Err(); err != nil {
		return fmt.Errorf("failed to store acceptance flag: %w", err)
	}
	return nil
}

func (r *RedisBridge) ConsumeTermsAccepted(ctx context.Context, clientID string) (string, error) {
	key := utils.TermsAcceptedKeyPrefix + clientID
	kind, err := r.Client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to consume acceptance flag: %w", err)
	}
	return kind, nil
}
