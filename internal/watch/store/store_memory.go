package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"watchdog/internal/watch/models"
	"watchdog/pkg/platform/sentinel"
)

// InMemoryStore serves watch lists and domains from process memory. It backs
// local runs without a database and the service tests.
type InMemoryStore struct {
	mu         sync.RWMutex
	watchLists map[string]*models.WatchList
	domains    map[string]*models.Domain
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		watchLists: make(map[string]*models.WatchList),
		domains:    make(map[string]*models.Domain),
	}
}

func (s *InMemoryStore) SaveWatchList(_ context.Context, wl *models.WatchList) error {
	if wl == nil || wl.Token == "" {
		return fmt.Errorf("watch list token is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchLists[wl.Token] = cloneWatchList(wl)
	return nil
}

func (s *InMemoryStore) SaveDomain(_ context.Context, d *models.Domain) error {
	if d == nil || d.LDHName == "" {
		return fmt.Errorf("domain name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domains[d.LDHName] = models.NewDomain(d.LDHName, d.Deleted, d.StatusCodes, d.Events, d.Entities)
	return nil
}

func (s *InMemoryStore) FindWatchListByToken(_ context.Context, token string) (*models.WatchList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wl, ok := s.watchLists[token]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return cloneWatchList(wl), nil
}

func (s *InMemoryStore) FindDomainByLDHName(_ context.Context, ldhName string) (*models.Domain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.domains[ldhName]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return models.NewDomain(d.LDHName, d.Deleted, d.StatusCodes, d.Events, d.Entities), nil
}

func cloneWatchList(wl *models.WatchList) *models.WatchList {
	out := *wl
	out.Triggers = slices.Clone(wl.Triggers)
	return &out
}
