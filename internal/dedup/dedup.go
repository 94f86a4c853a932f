package dedup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "webhook:event:"
	ttl       = 72 * time.Hour
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore хранит id обработанных событий в Redis.
// Stripe повторяет доставку до трёх суток, ключи живут столько же.
func NewRedisStore(client *redis.Client) *redisStore {
	return &redisStore{client: client}
}

func (s *redisStore) Seen(ctx context.Context, eventID string) (bool, error) {
	err := s.client.Get(ctx, keyPrefix+eventID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check event: %w", err)
	}
	return true, nil
}

func (s *redisStore) MarkSeen(ctx context.Context, eventID string) error {
	if err := s.client.Set(ctx, keyPrefix+eventID, time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark event: %w", err)
	}
	return nil
}

type ttlCache interface {
	Get(key string) ([]byte, bool)
	SetWithTTL(key string, value []byte, ttl time.Duration)
}

type memoryStore struct {
	cache ttlCache
}

// NewMemoryStore используется без Redis. Дубликаты ловятся только в пределах одного процесса.
func NewMemoryStore(cache ttlCache) *memoryStore {
	return &memoryStore{cache: cache}
}

func (s *memoryStore) Seen(_ context.Context, eventID string) (bool, error) {
	_, ok := s.cache.Get(keyPrefix + eventID)
	return ok, nil
}

func (s *memoryStore) MarkSeen(_ context.Context, eventID string) error {
	s.cache.SetWithTTL(keyPrefix+eventID, []byte{1}, ttl)
	return nil
}
