package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"watchdog/pkg/platform/sentinel"
)

// RedisStore keeps TLD lists as JSON arrays in Redis. A zero TTL keeps
// entries until they are invalidated.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]string, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrCacheMiss
		}
		return nil, fmt.Errorf("find tld list: %w", err)
	}

	var tlds []string
	if err := json.Unmarshal(data, &tlds); err != nil {
		return nil, fmt.Errorf("decode tld list: %w", err)
	}
	return tlds, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, tlds []string) error {
	payload, err := json.Marshal(tlds)
	if err != nil {
		return fmt.Errorf("encode tld list: %w", err)
	}
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save tld list: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete tld list: %w", err)
	}
	return nil
}
