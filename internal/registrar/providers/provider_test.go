package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchdog/internal/watch/models"
)

type stubProvider struct {
	name string
}

func (p *stubProvider) Name() string { return p.name }
func (p *stubProvider) Verify(context.Context, CredentialBag) (CredentialBag, error) {
	return nil, nil
}
func (p *stubProvider) Order(context.Context, *models.Domain, CredentialBag, bool) error {
	return nil
}
func (p *stubProvider) SupportedTLDs(context.Context, CredentialBag) ([]string, error) {
	return nil, nil
}
func (p *stubProvider) TLDCacheKey() string { return "registrar:tlds:" + p.name }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubProvider{name: "ovh"}))
	require.NoError(t, r.Register(&stubProvider{name: "gandi"}))

	t.Run("duplicate names are rejected", func(t *testing.T) {
		assert.Error(t, r.Register(&stubProvider{name: "ovh"}))
	})

	t.Run("get returns registered provider", func(t *testing.T) {
		p, err := r.Get("gandi")
		require.NoError(t, err)
		assert.Equal(t, "gandi", p.Name())
	})

	t.Run("unknown provider wraps ErrProviderNotFound", func(t *testing.T) {
		_, err := r.Get("namecheap")
		assert.True(t, errors.Is(err, ErrProviderNotFound))
	})

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"gandi", "ovh"}, r.Names())
	})
}

func TestCheckOrderable(t *testing.T) {
	t.Run("registered domain is rejected", func(t *testing.T) {
		err := CheckOrderable("ovh", &models.Domain{LDHName: "example.com", Deleted: false})
		assert.True(t, IsKind(err, ErrorDomainStillRegistered))
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		err := CheckOrderable("ovh", &models.Domain{Deleted: true})
		assert.True(t, IsKind(err, ErrorInvalidDomain))
	})

	t.Run("deleted named domain passes", func(t *testing.T) {
		assert.NoError(t, CheckOrderable("ovh", &models.Domain{LDHName: "example.com", Deleted: true}))
	})
}

func TestCredentialBag(t *testing.T) {
	consenting := CredentialBag{
		FieldAcceptConditions:        true,
		FieldOwnerLegalAge:           true,
		FieldWaiveRetractationPeriod: true,
	}

	t.Run("consent requires literal true on every flag", func(t *testing.T) {
		require.NoError(t, consenting.RequireConsent("gandi"))

		for _, field := range ConsentFields {
			for _, bad := range []any{false, "true", 1, nil} {
				bag := consenting.Pick(ConsentFields...)
				bag[field] = bad
				err := bag.RequireConsent("gandi")
				assert.True(t, IsKind(err, ErrorConsent), "field %s value %v", field, bad)
			}
			bag := consenting.Pick(ConsentFields...)
			delete(bag, field)
			assert.True(t, IsKind(bag.RequireConsent("gandi"), ErrorConsent))
		}
	})

	t.Run("required strings must be non-empty strings", func(t *testing.T) {
		bag := CredentialBag{"token": "abc", "empty": "", "num": 42}
		assert.NoError(t, bag.RequireStrings("gandi", "token"))
		assert.True(t, IsKind(bag.RequireStrings("gandi", "token", "empty"), ErrorSchema))
		assert.True(t, IsKind(bag.RequireStrings("gandi", "num"), ErrorSchema))
		assert.True(t, IsKind(bag.RequireStrings("gandi", "missing"), ErrorSchema))
	})

	t.Run("pick drops absent and extraneous fields", func(t *testing.T) {
		bag := CredentialBag{"token": "abc", "extra": "x"}
		assert.Equal(t, CredentialBag{"token": "abc"}, bag.Pick("token", "sharingId"))
	})

	t.Run("redacted masks secrets without touching the original", func(t *testing.T) {
		bag := CredentialBag{"token": "abc", "sharingId": "org"}
		red := bag.Redacted("token")
		assert.Equal(t, "********", red["token"])
		assert.Equal(t, "org", red["sharingId"])
		assert.Equal(t, "abc", bag["token"])
	})
}

func TestErrorTaxonomy(t *testing.T) {
	err := NewError(ErrorExpiredCredential, "ovh", "These credentials have expired", nil)

	assert.Equal(t, ErrorExpiredCredential, KindOf(err))
	assert.Equal(t, "These credentials have expired", MessageOf(err))
	assert.Equal(t, ErrorTransport, KindOf(errors.New("dial tcp: refused")))

	inner := errors.New("connection reset")
	wrapped := NewError(ErrorTransport, "gandi", "failed to execute request", inner)
	assert.ErrorIs(t, wrapped, inner)
	assert.Contains(t, wrapped.Error(), "provider gandi [transport]")
}
