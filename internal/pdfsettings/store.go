package pdfsettings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"go.uber.org/zap"
)

// DefaultKey is the store key settings are saved under
const DefaultKey = "pdf-settings"

// Store is a key-value string store. A missing key reports ok=false with a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Load reads settings from store. It never fails: a missing, unreadable or
// malformed value falls back to Default() and the reason is logged.
func Load(ctx context.Context, store Store, key string, logger *zap.Logger) PdfSettings {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("failed to read pdf settings, using defaults", zap.String("key", key), zap.Error(err))
		return Default()
	}
	if !ok || raw == "" {
		return Default()
	}

	s, err := Unmarshal([]byte(raw))
	if err != nil {
		logger.Warn("stored pdf settings are malformed, using defaults", zap.String("key", key), zap.Error(err))
		return Default()
	}
	return s
}

// Save validates and writes s to store.
func Save(ctx context.Context, store Store, key string, s PdfSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return &domain.ExternalServiceError{Service: "settings-store", Op: "set", Err: err}
	}
	return nil
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// RedisStore keeps values in Redis under a key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
