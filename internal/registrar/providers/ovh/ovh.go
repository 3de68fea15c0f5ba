// Package ovh integrates the OVHcloud API. Credentials are an application
// key pair plus a consumer key; orders go through a cart that is created,
// filled, configured and checked out.
package ovh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	goovh "github.com/ovh/go-ovh/ovh"

	"watchdog/internal/registrar/providers"
)

const (
	Name = "ovh"

	FieldAppKey        = "appKey"
	FieldAppSecret     = "appSecret"
	FieldAPIEndpoint   = "apiEndpoint"
	FieldConsumerKey   = "consumerKey"
	FieldOvhSubsidiary = "ovhSubsidiary"
	FieldPricingMode   = "pricingMode"
)

var requiredFields = []string{
	FieldAppKey,
	FieldAppSecret,
	FieldAPIEndpoint,
	FieldConsumerKey,
	FieldOvhSubsidiary,
	FieldPricingMode,
}

// Provider orders domains through the signed OVH API.
type Provider struct {
	httpClient *http.Client
	now        func() time.Time
	logger     *slog.Logger
}

type Option func(*Provider)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithHTTPClient sets the client used for every OVH call.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// WithClock overrides the clock used to check credential expiration.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

func New(timeout time.Duration, opts ...Option) *Provider {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	p := &Provider{
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string { return Name }

func (p *Provider) TLDCacheKey() string { return "registrar:tlds:" + Name }

// SecretFields lists the credential fields masked in API responses.
func (p *Provider) SecretFields() []string {
	return []string{FieldAppSecret, FieldConsumerKey}
}

type currentCredential struct {
	Status     string     `json:"status"`
	Expiration *time.Time `json:"expiration"`
	Rules      []Route    `json:"rules"`
}

// Verify checks the credential status, expiration and granted routes.
func (p *Provider) Verify(ctx context.Context, authData providers.CredentialBag) (providers.CredentialBag, error) {
	if err := authData.RequireStrings(Name, requiredFields...); err != nil {
		return nil, err
	}
	if err := authData.RequireConsent(Name); err != nil {
		return nil, err
	}

	client, err := p.client(authData)
	if err != nil {
		return nil, err
	}

	var cred currentCredential
	if err := client.GetWithContext(ctx, "/auth/currentCredential", &cred); err != nil {
		var apiErr *goovh.APIError
		if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 {
			return nil, providers.NewError(providers.ErrorInvalidCredential, Name, apiErr.Message, err)
		}
		return nil, transportError(err)
	}

	if cred.Expiration != nil && cred.Expiration.Before(p.now()) {
		return nil, providers.NewError(providers.ErrorExpiredCredential, Name, "These credentials have expired", nil)
	}
	if cred.Status != "validated" {
		return nil, providers.NewError(providers.ErrorInvalidCredential, Name,
			fmt.Sprintf("The status of these credentials is not valid (%s)", cred.Status), nil)
	}
	if missing := MissingRoutes(cred.Rules); len(missing) > 0 {
		p.logger.WarnContext(ctx, "ovh credential lacks required routes", "missing", len(missing))
		return nil, providers.NewError(providers.ErrorInsufficientPermission, Name,
			"This Connector does not have enough permissions on the Provider API. Please recreate this Connector.", nil)
	}

	return authData.Pick(append(requiredFields, providers.ConsentFields...)...), nil
}

// SupportedTLDs lists the extensions sold to the credential's subsidiary.
func (p *Provider) SupportedTLDs(ctx context.Context, authData providers.CredentialBag) ([]string, error) {
	creds, err := p.Verify(ctx, authData)
	if err != nil {
		return nil, err
	}
	client, err := p.client(creds)
	if err != nil {
		return nil, err
	}

	subsidiary, _ := creds.String(FieldOvhSubsidiary)
	var tlds []string
	if err := client.GetWithContext(ctx, "/domain/extensions?"+url.Values{"ovhSubsidiary": {subsidiary}}.Encode(), &tlds); err != nil {
		return nil, transportError(err)
	}
	return tlds, nil
}

// client builds a signed API client. The endpoint may be an alias such as
// "ovh-eu" or a full API URL.
func (p *Provider) client(creds providers.CredentialBag) (*goovh.Client, error) {
	endpoint, _ := creds.String(FieldAPIEndpoint)
	appKey, _ := creds.String(FieldAppKey)
	appSecret, _ := creds.String(FieldAppSecret)
	consumerKey, _ := creds.String(FieldConsumerKey)

	client, err := goovh.NewClient(endpoint, appKey, appSecret, consumerKey)
	if err != nil {
		return nil, providers.NewError(providers.ErrorInvalidCredential, Name, "Invalid API endpoint", err)
	}
	client.Client = p.httpClient
	return client, nil
}

// classify maps a go-ovh failure during a cart step onto the taxonomy. API
// answers are rejections carrying the OVH message; anything else is transport.
func classify(err error) error {
	var apiErr *goovh.APIError
	if errors.As(err, &apiErr) {
		return providers.NewError(providers.ErrorOrderRejected, Name, apiErr.Message, err)
	}
	return transportError(err)
}

// transportError maps a failure outside the cart saga. Unexpected API
// answers keep the OVH message.
func transportError(err error) error {
	var apiErr *goovh.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return providers.NewError(providers.ErrorTransport, Name, apiErr.Message, err)
	}
	return providers.NewError(providers.ErrorTransport, Name, "OVH API request failed", err)
}

// rejectOrder maps any failure of the final checkout. Once the commit was
// sent the order state on OVH is unknown, so faults are rejections too.
func rejectOrder(err error) error {
	var apiErr *goovh.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return providers.NewError(providers.ErrorOrderRejected, Name, apiErr.Message, err)
	}
	return providers.NewError(providers.ErrorOrderRejected, Name, "Order rejected", err)
}
