// Package service orchestrates registrar operations for operators: credential
// checks, TLD listing through the catalog and order attempts.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"watchdog/internal/registrar/metrics"
	"watchdog/internal/registrar/providers"
	"watchdog/internal/registrar/tracer"
	"watchdog/internal/watch/models"
	dErrors "watchdog/pkg/domain-errors"
	"watchdog/pkg/platform/sentinel"
)

// DomainRepository loads the watched state of a domain.
type DomainRepository interface {
	FindDomainByLDHName(ctx context.Context, ldhName string) (*models.Domain, error)
}

// TLDCatalog serves cached TLD lists.
type TLDCatalog interface {
	SupportedTLDs(ctx context.Context, provider providers.Provider, authData providers.CredentialBag) ([]string, error)
	Invalidate(ctx context.Context, provider providers.Provider) error
}

// OrderRequest asks for one order attempt.
type OrderRequest struct {
	Provider string
	LDHName  string
	AuthData providers.CredentialBag
	DryRun   bool
}

// OrderResult describes a successful attempt.
type OrderResult struct {
	AttemptID uuid.UUID
	Provider  string
	LDHName   string
	DryRun    bool
}

type Service struct {
	registry *providers.Registry
	catalog  TLDCatalog
	domains  DomainRepository
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   tracer.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(registry *providers.Registry, catalog TLDCatalog, domains DomainRepository, opts ...Option) (*Service, error) {
	if registry == nil {
		return nil, errors.New("provider registry is required")
	}
	if catalog == nil {
		return nil, errors.New("tld catalog is required")
	}
	if domains == nil {
		return nil, errors.New("domain repository is required")
	}
	s := &Service{
		registry: registry,
		catalog:  catalog,
		domains:  domains,
		logger:   slog.Default(),
		tracer:   tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Providers lists the registered provider names.
func (s *Service) Providers() []string {
	return s.registry.Names()
}

// Verify checks the credentials against the registrar and returns the
// normalized bag with secrets masked.
func (s *Service) Verify(ctx context.Context, providerName string, authData providers.CredentialBag) (providers.CredentialBag, error) {
	provider, err := s.provider(providerName)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanVerify, tracer.String(tracer.AttrProvider, provider.Name()))
	start := time.Now()
	normalized, err := provider.Verify(ctx, authData)
	s.finish(ctx, span, provider.Name(), "verify", start, err)
	if err != nil {
		return nil, toDomainError(err)
	}

	if r, ok := provider.(providers.Redactor); ok {
		normalized = normalized.Redacted(r.SecretFields()...)
	}
	return normalized, nil
}

// SupportedTLDs returns the registrar's orderable TLDs, served from cache
// when available.
func (s *Service) SupportedTLDs(ctx context.Context, providerName string, authData providers.CredentialBag) ([]string, error) {
	provider, err := s.provider(providerName)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanSupportedTLDs, tracer.String(tracer.AttrProvider, provider.Name()))
	start := time.Now()
	tlds, err := s.catalog.SupportedTLDs(ctx, provider, authData)
	if err == nil {
		span.SetAttributes(tracer.Int64(tracer.AttrTLDCount, int64(len(tlds))))
	}
	s.finish(ctx, span, provider.Name(), "tlds", start, err)
	if err != nil {
		return nil, toDomainError(err)
	}
	return tlds, nil
}

// InvalidateTLDs drops the cached TLD list of a provider.
func (s *Service) InvalidateTLDs(ctx context.Context, providerName string) error {
	provider, err := s.provider(providerName)
	if err != nil {
		return err
	}
	if err := s.catalog.Invalidate(ctx, provider); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to invalidate tld catalog")
	}
	return nil
}

// Order runs one order attempt for a watched domain. Each attempt is
// independent; a failed attempt leaves no state behind in this service.
func (s *Service) Order(ctx context.Context, req OrderRequest) (*OrderResult, error) {
	provider, err := s.provider(req.Provider)
	if err != nil {
		return nil, err
	}

	ldhName := strings.ToLower(strings.TrimSpace(req.LDHName))
	if ldhName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "ldhName is required")
	}
	domain, err := s.domains.FindDomainByLDHName(ctx, ldhName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "domain not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load domain")
	}

	attemptID := uuid.New()
	ctx, span := s.tracer.Start(ctx, tracer.SpanOrder,
		tracer.String(tracer.AttrProvider, provider.Name()),
		tracer.String(tracer.AttrLDHName, ldhName),
		tracer.Bool(tracer.AttrDryRun, req.DryRun),
		tracer.String(tracer.AttrAttemptID, attemptID.String()),
	)
	s.logger.InfoContext(ctx, "order attempt started",
		"provider", provider.Name(),
		"ldh_name", ldhName,
		"dry_run", req.DryRun,
		"attempt_id", attemptID.String(),
	)

	start := time.Now()
	err = provider.Order(ctx, domain, req.AuthData, req.DryRun)
	s.finish(ctx, span, provider.Name(), "order", start, err)
	if err != nil {
		s.logger.WarnContext(ctx, "order attempt failed",
			"provider", provider.Name(),
			"ldh_name", ldhName,
			"dry_run", req.DryRun,
			"attempt_id", attemptID.String(),
			"error_kind", string(providers.KindOf(err)),
		)
		return nil, toDomainError(err)
	}

	if s.metrics != nil {
		s.metrics.RecordOrder(provider.Name(), req.DryRun)
	}
	s.logger.InfoContext(ctx, "order attempt succeeded",
		"provider", provider.Name(),
		"ldh_name", ldhName,
		"dry_run", req.DryRun,
		"attempt_id", attemptID.String(),
	)
	return &OrderResult{
		AttemptID: attemptID,
		Provider:  provider.Name(),
		LDHName:   ldhName,
		DryRun:    req.DryRun,
	}, nil
}

func (s *Service) provider(name string) (providers.Provider, error) {
	p, err := s.registry.Get(name)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, fmt.Sprintf("unknown provider %q", name))
	}
	return p, nil
}

func (s *Service) finish(ctx context.Context, span tracer.Span, provider, operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = string(providers.KindOf(err))
		span.SetAttributes(tracer.String(tracer.AttrErrorKind, outcome))
		s.logger.DebugContext(ctx, "registrar operation failed",
			"provider", provider,
			"operation", operation,
			"error", err,
		)
	}
	span.End(err)
	if s.metrics != nil {
		s.metrics.RecordOperation(provider, operation, outcome, time.Since(start).Seconds())
	}
}

// toDomainError maps the registrar taxonomy onto transport-agnostic codes,
// keeping the registrar's message for the caller.
func toDomainError(err error) error {
	var code dErrors.Code
	switch providers.KindOf(err) {
	case providers.ErrorConsent:
		code = dErrors.CodeMissingConsent
	case providers.ErrorSchema:
		code = dErrors.CodeValidation
	case providers.ErrorInvalidCredential, providers.ErrorExpiredCredential,
		providers.ErrorInsufficientPermission, providers.ErrorDomainStillRegistered,
		providers.ErrorInvalidDomain:
		code = dErrors.CodeBadRequest
	case providers.ErrorNoOffer:
		code = dErrors.CodeConflict
	default:
		if errors.Is(err, context.DeadlineExceeded) {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "registrar request timed out")
		}
		code = dErrors.CodeUpstream
	}
	return dErrors.Wrap(err, code, providers.MessageOf(err))
}
