package providers

import (
	"context"
	"fmt"
	"sort"

	"watchdog/internal/watch/models"
)

// Provider is the capability set every registrar integration implements:
// credential verification, TLD listing and the ordering workflow.
type Provider interface {
	// Name returns the registry key of this provider (e.g. "ovh").
	Name() string

	// Verify validates the credential bag and returns its normalized form,
	// stripped of any field the workflow does not need.
	Verify(ctx context.Context, authData CredentialBag) (CredentialBag, error)

	// Order purchases the domain. With dryRun every step runs except the
	// final financial commit.
	Order(ctx context.Context, domain *models.Domain, authData CredentialBag, dryRun bool) error

	// SupportedTLDs lists the TLDs the registrar can order, uncached.
	SupportedTLDs(ctx context.Context, authData CredentialBag) ([]string, error)

	// TLDCacheKey is the stable key under which the TLD list is cached.
	TLDCacheKey() string
}

// Registry maintains all registered providers indexed by name.
// Not thread-safe for writes; register every provider during initialization.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider keyed by its name.
// Returns an error if a provider with the same name is already registered.
func (r *Registry) Register(p Provider) error {
	name := p.Name()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}
	r.providers[name] = p
	return nil
}

// Get returns the provider registered under name, or ErrProviderNotFound.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckOrderable enforces the ordering preconditions shared by every provider.
// It runs before any network call.
func CheckOrderable(provider string, domain *models.Domain) error {
	if domain == nil || !domain.Deleted {
		return NewError(ErrorDomainStillRegistered, provider,
			"The domain name still appears in the WHOIS database", nil)
	}
	if domain.LDHName == "" {
		return NewError(ErrorInvalidDomain, provider, "Domain name cannot be null", nil)
	}
	return nil
}

// Redactor is implemented by providers whose credential bags carry secrets
// that must never be echoed back to a caller.
type Redactor interface {
	SecretFields() []string
}
