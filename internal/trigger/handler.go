package trigger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"watchdog/internal/trigger/metrics"
	"watchdog/internal/watch/models"
	"watchdog/pkg/platform/sentinel"
)

// ErrSkipped marks a message that cannot be processed and must not be
// redelivered, such as one referencing a deleted watch list.
var ErrSkipped = errors.New("trigger message skipped")

// WatchListRepository loads watch lists with their owner and triggers.
type WatchListRepository interface {
	FindWatchListByToken(ctx context.Context, token string) (*models.WatchList, error)
}

// DomainRepository loads a domain with its ordered events.
type DomainRepository interface {
	FindDomainByLDHName(ctx context.Context, ldhName string) (*models.Domain, error)
}

// ProcessDomainTrigger asks for the triggers of one watch list to be evaluated
// against a domain that was just refreshed. UpdatedAt is the domain's
// previous refresh time; only events after it fire.
type ProcessDomainTrigger struct {
	WatchListToken string
	LDHName        string
	UpdatedAt      time.Time
}

// Handler evaluates and dispatches triggers for a single message.
type Handler struct {
	watchLists WatchListRepository
	domains    DomainRepository
	dispatcher *Dispatcher
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type HandlerOption func(*Handler)

func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) HandlerOption {
	return func(h *Handler) {
		h.metrics = m
	}
}

func NewHandler(watchLists WatchListRepository, domains DomainRepository, dispatcher *Dispatcher, opts ...HandlerOption) (*Handler, error) {
	if watchLists == nil || domains == nil {
		return nil, fmt.Errorf("watch list and domain repositories are required")
	}
	if dispatcher == nil {
		return nil, fmt.Errorf("dispatcher is required")
	}
	h := &Handler{
		watchLists: watchLists,
		domains:    domains,
		dispatcher: dispatcher,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Handle dispatches matches sequentially and stops at the first delivery
// failure. A redelivered message may notify twice for matches that were sent
// before the failure.
func (h *Handler) Handle(ctx context.Context, cmd ProcessDomainTrigger) error {
	start := time.Now()

	watchList, err := h.watchLists.FindWatchListByToken(ctx, cmd.WatchListToken)
	if err != nil {
		return h.skipOrFail(ctx, cmd, "watch list", err)
	}
	domain, err := h.domains.FindDomainByLDHName(ctx, cmd.LDHName)
	if err != nil {
		return h.skipOrFail(ctx, cmd, "domain", err)
	}

	matches := Evaluate(domain, watchList, cmd.UpdatedAt)
	for _, match := range matches {
		if err := h.dispatcher.Dispatch(ctx, domain, match, watchList.Owner); err != nil {
			h.logger.ErrorContext(ctx, "trigger dispatch failed",
				"watch_list", cmd.WatchListToken,
				"ldh_name", cmd.LDHName,
				"event", string(match.Event.Action),
				"error", err,
			)
			h.observe("failure", start, 0)
			return err
		}
	}

	h.logger.InfoContext(ctx, "triggers processed",
		"watch_list", cmd.WatchListToken,
		"ldh_name", cmd.LDHName,
		"matches", len(matches),
	)
	h.observe("success", start, len(matches))
	return nil
}

func (h *Handler) skipOrFail(ctx context.Context, cmd ProcessDomainTrigger, what string, err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		h.logger.WarnContext(ctx, what+" not found, skipping trigger message",
			"watch_list", cmd.WatchListToken,
			"ldh_name", cmd.LDHName,
		)
		if h.metrics != nil {
			h.metrics.RecordMessage("skipped")
		}
		return fmt.Errorf("%s %w: %w", what, sentinel.ErrNotFound, ErrSkipped)
	}
	h.observe("failure", time.Now(), 0)
	return fmt.Errorf("load %s: %w", what, err)
}

func (h *Handler) observe(outcome string, start time.Time, matches int) {
	if h.metrics == nil {
		return
	}
	h.metrics.RecordMessage(outcome)
	h.metrics.ObserveMatches(matches)
	h.metrics.ObserveDuration(time.Since(start).Seconds())
}
