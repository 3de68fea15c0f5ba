// Package catalog caches the TLD lists registrars sell.
package catalog

import (
	"context"
	"errors"
	"log/slog"

	"watchdog/internal/registrar/metrics"
	"watchdog/internal/registrar/providers"
	"watchdog/pkg/platform/sentinel"
	pstrings "watchdog/pkg/platform/strings"
)

// Store persists TLD lists by key. Get returns sentinel.ErrCacheMiss when
// nothing is cached under the key.
type Store interface {
	Get(ctx context.Context, key string) ([]string, error)
	Set(ctx context.Context, key string, tlds []string) error
	Delete(ctx context.Context, key string) error
}

// Catalog is a read-through cache in front of Provider.SupportedTLDs.
// Concurrent misses for the same provider may both reach the registrar; the
// last write wins.
type Catalog struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Catalog)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Catalog) {
		c.metrics = m
	}
}

func New(store Store, opts ...Option) (*Catalog, error) {
	if store == nil {
		return nil, errors.New("catalog store is required")
	}
	c := &Catalog{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SupportedTLDs returns the cached list, or fetches it from the provider and
// caches it. Credentials are only verified on a miss. A failed cache write is
// logged and the fetched list is still returned.
func (c *Catalog) SupportedTLDs(ctx context.Context, provider providers.Provider, authData providers.CredentialBag) ([]string, error) {
	key := provider.TLDCacheKey()

	tlds, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		if c.metrics != nil {
			c.metrics.RecordCatalogHit(provider.Name())
		}
		return tlds, nil
	case !errors.Is(err, sentinel.ErrCacheMiss):
		c.logger.WarnContext(ctx, "tld catalog read failed, falling back to registrar",
			"provider", provider.Name(),
			"error", err,
		)
	}
	if c.metrics != nil {
		c.metrics.RecordCatalogMiss(provider.Name())
	}

	tlds, err = provider.SupportedTLDs(ctx, authData)
	if err != nil {
		return nil, err
	}
	tlds = pstrings.NormalizeLabels(tlds)

	if err := c.store.Set(ctx, key, tlds); err != nil {
		c.logger.ErrorContext(ctx, "failed to cache tld list",
			"provider", provider.Name(),
			"error", err,
		)
		if c.metrics != nil {
			c.metrics.RecordCatalogStoreError(provider.Name())
		}
	}
	return tlds, nil
}

// Invalidate drops the cached list so the next read refetches it.
func (c *Catalog) Invalidate(ctx context.Context, provider providers.Provider) error {
	if err := c.store.Delete(ctx, provider.TLDCacheKey()); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.RecordCatalogInvalidation(provider.Name())
	}
	c.logger.InfoContext(ctx, "tld catalog invalidated", "provider", provider.Name())
	return nil
}
