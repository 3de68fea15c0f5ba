//go:build integration

package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"watchdog/internal/registrar/catalog"
	"watchdog/pkg/platform/sentinel"
	"watchdog/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *catalog.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = catalog.NewRedisStore(s.redis.Client, time.Minute)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTripAndDelete() {
	ctx := context.Background()

	_, err := s.store.Get(ctx, "registrar:tlds:ovh")
	s.ErrorIs(err, sentinel.ErrCacheMiss)

	s.Require().NoError(s.store.Set(ctx, "registrar:tlds:ovh", []string{"com", "fr"}))
	tlds, err := s.store.Get(ctx, "registrar:tlds:ovh")
	s.Require().NoError(err)
	s.Equal([]string{"com", "fr"}, tlds)

	ttl, err := s.redis.Client.TTL(ctx, "registrar:tlds:ovh").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))

	s.Require().NoError(s.store.Delete(ctx, "registrar:tlds:ovh"))
	_, err = s.store.Get(ctx, "registrar:tlds:ovh")
	s.ErrorIs(err, sentinel.ErrCacheMiss)
}

func (s *RedisStoreSuite) TestZeroTTLKeepsEntry() {
	ctx := context.Background()
	store := catalog.NewRedisStore(s.redis.Client, 0)

	s.Require().NoError(store.Set(ctx, "registrar:tlds:gandi", []string{"dev"}))

	ttl, err := s.redis.Client.TTL(ctx, "registrar:tlds:gandi").Result()
	s.Require().NoError(err)
	s.Equal(time.Duration(-1), ttl)
}

func (s *RedisStoreSuite) TestProvidersUseDistinctKeys() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "registrar:tlds:ovh", []string{"fr"}))
	s.Require().NoError(s.store.Set(ctx, "registrar:tlds:gandi", []string{"dev"}))

	keys, err := s.redis.CatalogKeys(ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"registrar:tlds:ovh", "registrar:tlds:gandi"}, keys)
}
