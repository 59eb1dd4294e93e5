package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fleethq/models"
	"fleethq/utils"
)

// MemoryBridge is the in-process draft store used by the static/demo build
// and by tests. Values are kept serialized, exactly as the Redis bridge
// stores them, so decode behavior matches.
type MemoryBridge struct {
	mu     sync.Mutex
	values map[string][]byte
	Logger *zap.Logger
}

// NewMemoryBridge returns an empty in-memory draft store.
func NewMemoryBridge(logger *zap.Logger) *MemoryBridge {
	return &MemoryBridge{
		values: make(map[string][]byte),
		Logger: logger,
	}
}

// Put stores a raw value under a key. Exposed for tests that need to corrupt
// a stored draft.
func (m *MemoryBridge) Put(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryBridge) save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	m.Put(key, data)
	return nil
}

func (m *MemoryBridge) load(key string, out any) bool {
	m.mu.Lock()
	data, ok := m.values[key]
	m.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		m.Logger.Warn("Discarding corrupt draft", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (m *MemoryBridge) SaveDraftBooking(ctx context.Context, clientID string, booking *models.Booking) error {
	return m.save(utils.DraftBookingKeyPrefix+clientID, booking)
}

func (m *MemoryBridge) LoadDraftBooking(ctx context.Context, clientID string) (*models.Booking, error) {
	var booking models.Booking
	if !m.load(utils.DraftBookingKeyPrefix+clientID, &booking) {
		return nil, nil
	}
	return &booking, nil
}

func (m *MemoryBridge) SaveDraftAgreement(ctx context.Context, clientID string, agreement *models.Agreement) error {
	return m.save(utils.DraftAgreementKeyPrefix+clientID, agreement)
}

func (m *MemoryBridge) LoadDraftAgreement(ctx context.Context, clientID string) (*models.Agreement, error) {
	var agreement models.Agreement
	if !m.load(utils.DraftAgreementKeyPrefix+clientID, &agreement) {
		return nil, nil
	}
	return &agreement, nil
}

func (m *MemoryBridge) MarkTermsAccepted(ctx context.Context, clientID, kind string) error {
	m.Put(utils.TermsAcceptedKeyPrefix+clientID, []byte(kind))
	return nil
}

func (m *MemoryBridge) ConsumeTermsAccepted(ctx context.Context, clientID string) (string, error) {
	key := utils.TermsAcceptedKeyPrefix + clientID
	m.mu.Lock()
	defer m.mu.Unlock()
	kind, ok := m.values[key]
	if !ok {
		return "", nil
	}
	delete(m.values, key)
	return string(kind), nil
}
