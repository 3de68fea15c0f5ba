package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"watchdog/internal/platform/middleware"
	"watchdog/internal/registrar/providers"
	"watchdog/internal/registrar/service"
	dErrors "watchdog/pkg/domain-errors"
	"watchdog/pkg/platform/httputil"
)

// Service is the registrar use-case surface exposed over HTTP.
type Service interface {
	Providers() []string
	Verify(ctx context.Context, provider string, authData providers.CredentialBag) (providers.CredentialBag, error)
	SupportedTLDs(ctx context.Context, provider string, authData providers.CredentialBag) ([]string, error)
	InvalidateTLDs(ctx context.Context, provider string) error
	Order(ctx context.Context, req service.OrderRequest) (*service.OrderResult, error)
}

// Handler serves the operator registrar API.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register mounts the registrar routes. Authentication is applied by the
// caller's router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/providers", h.handleListProviders)
	r.Post("/providers/{provider}/verify", h.handleVerify)
	r.Post("/providers/{provider}/tlds", h.handleSupportedTLDs)
	r.Delete("/providers/{provider}/tlds", h.handleInvalidateTLDs)
	r.Post("/providers/{provider}/orders", h.handleOrder)
}

type credentialsRequest struct {
	AuthData providers.CredentialBag `json:"authData"`
}

type orderRequest struct {
	AuthData providers.CredentialBag `json:"authData"`
	LDHName  string                  `json:"ldhName"`
	DryRun   bool                    `json:"dryRun"`
}

type providersResponse struct {
	Providers []string `json:"providers"`
}

type verifyResponse struct {
	Provider string                  `json:"provider"`
	AuthData providers.CredentialBag `json:"authData"`
}

type tldsResponse struct {
	Provider string   `json:"provider"`
	TLDs     []string `json:"tlds"`
}

type orderResponse struct {
	AttemptID string `json:"attemptId"`
	Provider  string `json:"provider"`
	LDHName   string `json:"ldhName"`
	DryRun    bool   `json:"dryRun"`
	Status    string `json:"status"`
}

func (h *Handler) handleListProviders(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, providersResponse{Providers: h.service.Providers()})
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := chi.URLParam(r, "provider")

	req, ok := h.decodeCredentials(ctx, w, r)
	if !ok {
		return
	}

	normalized, err := h.service.Verify(ctx, provider, req.AuthData)
	if err != nil {
		h.writeError(ctx, w, "verify", provider, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, verifyResponse{Provider: provider, AuthData: normalized})
}

func (h *Handler) handleSupportedTLDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := chi.URLParam(r, "provider")

	req, ok := h.decodeCredentials(ctx, w, r)
	if !ok {
		return
	}

	tlds, err := h.service.SupportedTLDs(ctx, provider, req.AuthData)
	if err != nil {
		h.writeError(ctx, w, "tlds", provider, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tldsResponse{Provider: provider, TLDs: tlds})
}

func (h *Handler) handleInvalidateTLDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := chi.URLParam(r, "provider")

	if err := h.service.InvalidateTLDs(ctx, provider); err != nil {
		h.writeError(ctx, w, "invalidate_tlds", provider, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	provider := chi.URLParam(r, "provider")

	req, ok := httputil.DecodeJSON[orderRequest](ctx, w, r, h.logger)
	if !ok {
		return
	}
	if req.AuthData == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "authData is required"))
		return
	}
	if strings.TrimSpace(req.LDHName) == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "ldhName is required"))
		return
	}

	h.logger.InfoContext(ctx, "order requested",
		"request_id", middleware.GetRequestID(ctx),
		"operator_id", middleware.GetOperatorID(ctx),
		"provider", provider,
		"ldh_name", req.LDHName,
		"dry_run", req.DryRun,
	)

	result, err := h.service.Order(ctx, service.OrderRequest{
		Provider: provider,
		LDHName:  req.LDHName,
		AuthData: req.AuthData,
		DryRun:   req.DryRun,
	})
	if err != nil {
		h.writeError(ctx, w, "order", provider, err)
		return
	}

	status, label := http.StatusAccepted, "committed"
	if result.DryRun {
		status, label = http.StatusOK, "dry_run"
	}
	httputil.WriteJSON(w, status, orderResponse{
		AttemptID: result.AttemptID.String(),
		Provider:  result.Provider,
		LDHName:   result.LDHName,
		DryRun:    result.DryRun,
		Status:    label,
	})
}

func (h *Handler) decodeCredentials(ctx context.Context, w http.ResponseWriter, r *http.Request) (*credentialsRequest, bool) {
	req, ok := httputil.DecodeJSON[credentialsRequest](ctx, w, r, h.logger)
	if !ok {
		return nil, false
	}
	if req.AuthData == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "authData is required"))
		return nil, false
	}
	return req, true
}

// writeError logs at a level matching the failure origin. Credential values
// are never part of the log record.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, operation, provider string, err error) {
	attrs := []any{
		"request_id", middleware.GetRequestID(ctx),
		"operation", operation,
		"provider", provider,
		"error", err.Error(),
	}
	if dErrors.HasCode(err, dErrors.CodeUpstream) || dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, "registrar request failed", attrs...)
	} else {
		h.logger.WarnContext(ctx, "registrar request rejected", attrs...)
	}
	httputil.WriteError(w, err)
}
