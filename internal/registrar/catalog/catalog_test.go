package catalog

//go:generate mockgen -source=../providers/provider.go -destination=../providers/mocks/mocks.go -package=mocks Provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"watchdog/internal/registrar/providers"
	"watchdog/internal/registrar/providers/mocks"
	"watchdog/pkg/platform/sentinel"
)

// failingStore misses every read and fails every write.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]string, error) { return nil, sentinel.ErrCacheMiss }
func (failingStore) Set(context.Context, string, []string) error {
	return errors.New("redis: connection refused")
}
func (failingStore) Delete(context.Context, string) error { return nil }

type CatalogSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	provider *mocks.MockProvider
	store    *MemoryStore
	catalog  *Catalog
	ctx      context.Context
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.provider = mocks.NewMockProvider(s.ctrl)
	s.provider.EXPECT().Name().Return("ovh").AnyTimes()
	s.provider.EXPECT().TLDCacheKey().Return("registrar:tlds:ovh").AnyTimes()

	store, err := NewMemoryStore(s.ctx, time.Hour)
	s.Require().NoError(err)
	s.store = store

	s.catalog, err = New(s.store)
	s.Require().NoError(err)
}

func (s *CatalogSuite) TearDownTest() {
	s.ctrl.Finish()
	_ = s.store.Close()
}

func (s *CatalogSuite) TestReadThrough() {
	authData := providers.CredentialBag{"appKey": "k"}
	s.provider.EXPECT().SupportedTLDs(gomock.Any(), authData).Return([]string{"com", "fr"}, nil).Times(1)

	first, err := s.catalog.SupportedTLDs(s.ctx, s.provider, authData)
	s.Require().NoError(err)
	second, err := s.catalog.SupportedTLDs(s.ctx, s.provider, authData)
	s.Require().NoError(err)

	s.Equal([]string{"com", "fr"}, first)
	s.Equal(first, second)
}

func (s *CatalogSuite) TestUpstreamErrorIsNotCached() {
	rejected := providers.NewError(providers.ErrorExpiredCredential, "ovh", "These credentials have expired", nil)
	gomock.InOrder(
		s.provider.EXPECT().SupportedTLDs(gomock.Any(), gomock.Any()).Return(nil, rejected),
		s.provider.EXPECT().SupportedTLDs(gomock.Any(), gomock.Any()).Return([]string{"com"}, nil),
	)

	_, err := s.catalog.SupportedTLDs(s.ctx, s.provider, providers.CredentialBag{})
	s.True(providers.IsKind(err, providers.ErrorExpiredCredential))

	tlds, err := s.catalog.SupportedTLDs(s.ctx, s.provider, providers.CredentialBag{})
	s.Require().NoError(err)
	s.Equal([]string{"com"}, tlds)
}

func (s *CatalogSuite) TestInvalidateForcesRefetch() {
	s.provider.EXPECT().SupportedTLDs(gomock.Any(), gomock.Any()).Return([]string{"com"}, nil).Times(2)

	_, err := s.catalog.SupportedTLDs(s.ctx, s.provider, providers.CredentialBag{})
	s.Require().NoError(err)
	s.Require().NoError(s.catalog.Invalidate(s.ctx, s.provider))
	_, err = s.catalog.SupportedTLDs(s.ctx, s.provider, providers.CredentialBag{})
	s.Require().NoError(err)
}

func (s *CatalogSuite) TestKeysArePerProvider() {
	gandi := mocks.NewMockProvider(s.ctrl)
	gandi.EXPECT().Name().Return("gandi").AnyTimes()
	gandi.EXPECT().TLDCacheKey().Return("registrar:tlds:gandi").AnyTimes()
	gandi.EXPECT().SupportedTLDs(gomock.Any(), gomock.Any()).Return([]string{"dev"}, nil)
	s.provider.EXPECT().SupportedTLDs(gomock.Any(), gomock.Any()).Return([]string{"fr"}, nil)

	ovhTLDs, err := s.catalog.SupportedTLDs(s.ctx, s.provider, providers.CredentialBag{})
	s.Require().NoError(err)
	gandiTLDs, err := s.catalog.SupportedTLDs(s.ctx, gandi, providers.CredentialBag{})
	s.Require().NoError(err)

	s.Equal([]string{"fr"}, ovhTLDs)
	s.Equal([]string{"dev"}, gandiTLDs)
}

func (s *CatalogSuite) TestStoreWriteFailureDoesNotFailRead() {
	c, err := New(failingStore{})
	s.Require().NoError(err)
	s.provider.EXPECT().SupportedTLDs(gomock.Any(), gomock.Any()).Return([]string{"com"}, nil)

	tlds, err := c.SupportedTLDs(s.ctx, s.provider, providers.CredentialBag{})

	s.Require().NoError(err)
	s.Equal([]string{"com"}, tlds)
}

func (s *CatalogSuite) TestMemoryStoreMiss() {
	_, err := s.store.Get(s.ctx, "registrar:tlds:unknown")
	s.ErrorIs(err, sentinel.ErrCacheMiss)
	s.NoError(s.store.Delete(s.ctx, "registrar:tlds:unknown"))
}

func (s *CatalogSuite) TestNewRequiresStore() {
	_, err := New(nil)
	s.Error(err)
}

func (s *CatalogSuite) TestNormalizesFetchedList() {
	s.provider.EXPECT().SupportedTLDs(gomock.Any(), gomock.Any()).Return([]string{".COM", "fr", "com", " "}, nil)

	tlds, err := s.catalog.SupportedTLDs(s.ctx, s.provider, nil)
	s.Require().NoError(err)
	s.Equal([]string{"com", "fr"}, tlds)

	cached, err := s.store.Get(s.ctx, "registrar:tlds:ovh")
	s.Require().NoError(err)
	s.Equal([]string{"com", "fr"}, cached)
}
