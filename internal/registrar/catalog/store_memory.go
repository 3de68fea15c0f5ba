package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"

	"watchdog/pkg/platform/sentinel"
)

// MemoryStore keeps TLD lists in a process-local bigcache. Entries are
// evicted once lifeWindow has elapsed.
type MemoryStore struct {
	cache *bigcache.BigCache
}

func NewMemoryStore(ctx context.Context, lifeWindow time.Duration) (*MemoryStore, error) {
	if lifeWindow <= 0 {
		lifeWindow = 24 * time.Hour
	}
	cfg := bigcache.DefaultConfig(lifeWindow)
	cfg.Shards = 16
	cfg.Verbose = false

	cache, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create tld memory cache: %w", err)
	}
	return &MemoryStore{cache: cache}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]string, error) {
	data, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
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

func (s *MemoryStore) Set(_ context.Context, key string, tlds []string) error {
	payload, err := json.Marshal(tlds)
	if err != nil {
		return fmt.Errorf("encode tld list: %w", err)
	}
	return s.cache.Set(key, payload)
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	if err := s.cache.Delete(key); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return fmt.Errorf("delete tld list: %w", err)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return s.cache.Close()
}
