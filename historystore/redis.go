package historystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists records in Redis as JSON strings under a
// "duskcrawl:run:" prefix, with a TTL so abandoned runs age out rather than
// accumulating forever.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore builds a RedisStore against the given client. Callers
// wanting a test double should point client at a miniredis instance.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(id string) string {
	return "duskcrawl:run:" + id
}

func (s *RedisStore) Save(ctx context.Context, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("historystore: marshal record: %w", err)
	}
	if err := s.client.Set(ctx, s.key(r.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("historystore: redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (Record, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("historystore: redis get: %w", err)
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("historystore: unmarshal record: %w", err)
	}
	return r, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("historystore: redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("historystore: redis ping: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
