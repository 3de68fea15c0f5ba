// Package gandi integrates the Gandi v5 API: a personal access token
// identifies the account and orders are placed in a single call.
package gandi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"watchdog/internal/registrar/providers"
	"watchdog/internal/registrar/providers/adapters"
	"watchdog/internal/watch/models"
)

const (
	Name           = "gandi"
	DefaultBaseURL = "https://api.gandi.net"

	FieldToken     = "token"
	FieldSharingID = "sharingId"

	userInfoPath = "/v5/organization/user-info"
	domainsPath  = "/v5/domain/domains"
	tldsPath     = "/v5/domain/tlds"
)

// Config configures the Gandi provider
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient adapters.HTTPDoer
}

// Provider places orders through the Gandi API.
type Provider struct {
	client *adapters.JSONClient
	logger *slog.Logger
}

type Option func(*Provider)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

func New(cfg Config, opts ...Option) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	p := &Provider{
		client: adapters.NewJSONClient(adapters.JSONClientConfig{
			Provider:   Name,
			BaseURL:    cfg.BaseURL,
			Timeout:    cfg.Timeout,
			HTTPClient: cfg.HTTPClient,
		}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string { return Name }

func (p *Provider) TLDCacheKey() string { return "registrar:tlds:" + Name }

// SecretFields lists the credential fields masked in API responses.
func (p *Provider) SecretFields() []string { return []string{FieldToken} }

// Verify checks the token against the account profile endpoint.
func (p *Provider) Verify(ctx context.Context, authData providers.CredentialBag) (providers.CredentialBag, error) {
	normalized, _, err := p.verify(ctx, authData)
	return normalized, err
}

// verify returns the normalized bag and the account profile fetched while
// checking the token.
func (p *Provider) verify(ctx context.Context, authData providers.CredentialBag) (providers.CredentialBag, gjson.Result, error) {
	if err := authData.RequireStrings(Name, FieldToken); err != nil {
		return nil, gjson.Result{}, err
	}
	if authData.Has(FieldSharingID) {
		if _, ok := authData[FieldSharingID].(string); !ok {
			return nil, gjson.Result{}, providers.NewError(providers.ErrorSchema, Name, "Bad authData schema", nil)
		}
	}
	if err := authData.RequireConsent(Name); err != nil {
		return nil, gjson.Result{}, err
	}

	token, _ := authData.String(FieldToken)
	resp, err := p.client.Do(ctx, adapters.Request{
		Method: http.MethodGet,
		Path:   userInfoPath,
		Bearer: token,
	})
	if err != nil {
		return nil, gjson.Result{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, gjson.Result{}, providers.NewError(providers.ErrorInvalidCredential, Name,
			"The status of these credentials is not valid", nil)
	}

	fields := append([]string{FieldToken, FieldSharingID}, providers.ConsentFields...)
	return authData.Pick(fields...), gjson.ParseBytes(resp.Body), nil
}

// Order registers the domain with the account owner as registrant. Gandi
// answers 200 to a dry run and 202 to an accepted order.
func (p *Provider) Order(ctx context.Context, domain *models.Domain, authData providers.CredentialBag, dryRun bool) error {
	if err := providers.CheckOrderable(Name, domain); err != nil {
		return err
	}

	creds, profile, err := p.verify(ctx, authData)
	if err != nil {
		return err
	}

	token, _ := creds.String(FieldToken)
	dryRunHeader := "0"
	expected := http.StatusAccepted
	if dryRun {
		dryRunHeader = "1"
		expected = http.StatusOK
	}

	req := adapters.Request{
		Method: http.MethodPost,
		Path:   domainsPath,
		Header: http.Header{"Dry-Run": {dryRunHeader}},
		Bearer: token,
		Body: orderRequest{
			FQDN:      domain.LDHName,
			Owner:     ownerFromProfile(profile),
			TLDPeriod: "golive",
		},
	}
	if sharingID, ok := creds[FieldSharingID].(string); ok {
		req.Query = url.Values{"sharing_id": {sharingID}}
	}

	resp, err := p.client.Do(ctx, req)
	if err != nil {
		return err
	}
	if resp.StatusCode != expected {
		message := gjson.GetBytes(resp.Body, "message").String()
		if message == "" {
			message = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		}
		return providers.NewError(providers.ErrorOrderRejected, Name, message, nil)
	}

	p.logger.InfoContext(ctx, "gandi order accepted",
		"ldh_name", domain.LDHName,
		"dry_run", dryRun,
	)
	return nil
}

// SupportedTLDs lists the extensions Gandi sells.
func (p *Provider) SupportedTLDs(ctx context.Context, authData providers.CredentialBag) ([]string, error) {
	creds, _, err := p.verify(ctx, authData)
	if err != nil {
		return nil, err
	}
	token, _ := creds.String(FieldToken)

	resp, err := p.client.Do(ctx, adapters.Request{
		Method: http.MethodGet,
		Path:   tldsPath,
		Bearer: token,
	})
	if err != nil {
		return nil, err
	}
	if err := p.client.Expect(resp, http.StatusOK); err != nil {
		return nil, err
	}

	names := gjson.GetBytes(resp.Body, "#.name").Array()
	tlds := make([]string, 0, len(names))
	for _, n := range names {
		tlds = append(tlds, n.String())
	}
	return tlds, nil
}
