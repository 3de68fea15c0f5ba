package trigger

import (
	"context"
	"fmt"
	"log/slog"

	"watchdog/internal/notification/email"
	"watchdog/internal/trigger/metrics"
	"watchdog/internal/watch/models"
)

const (
	domainUpdatedSubject  = "A domain name has been changed"
	domainUpdatedTemplate = "domain_updated"
	defaultLocale         = "en"
)

// DeliveryError reports that a matched trigger could not be delivered.
type DeliveryError struct {
	Action  models.TriggerAction
	LDHName string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver %s trigger for %s: %v", e.Action, e.LDHName, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Dispatcher performs the action bound to a matched trigger.
type Dispatcher struct {
	sender  email.Sender
	locale  string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type DispatcherOption func(*Dispatcher)

func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithDispatcherMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithLocale overrides the notification locale.
func WithLocale(locale string) DispatcherOption {
	return func(d *Dispatcher) {
		d.locale = locale
	}
}

func NewDispatcher(sender email.Sender, opts ...DispatcherOption) (*Dispatcher, error) {
	if sender == nil {
		return nil, fmt.Errorf("email sender is required")
	}
	d := &Dispatcher{
		sender: sender,
		locale: defaultLocale,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dispatch runs action for one event. Unknown actions are skipped with a
// warning so that newly introduced trigger kinds never block a message.
func (d *Dispatcher) Dispatch(ctx context.Context, domain *models.Domain, match Match, user models.User) error {
	switch match.Trigger.Action {
	case models.SendEmail:
		return d.sendEmail(ctx, domain, match, user)
	default:
		d.logger.WarnContext(ctx, "unsupported trigger action",
			"action", string(match.Trigger.Action),
			"ldh_name", domain.LDHName,
			"event", string(match.Event.Action),
		)
		if d.metrics != nil {
			d.metrics.RecordUnknownAction(string(match.Trigger.Action))
		}
		return nil
	}
}

func (d *Dispatcher) sendEmail(ctx context.Context, domain *models.Domain, match Match, user models.User) error {
	msg := &email.Message{
		To:       user.Email,
		Subject:  domainUpdatedSubject,
		Template: domainUpdatedTemplate,
		Locale:   d.locale,
		Priority: email.PriorityHigh,
		Context: map[string]any{
			"Event":       match.Event,
			"Domain":      domain.LDHName,
			"Recipient":   user.Email,
			"Registrants": domain.Handles(models.RoleRegistrant),
			"Redemption":  domain.HasStatus(models.StatusRedemptionPeriod),
		},
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		if d.metrics != nil {
			d.metrics.RecordDelivery(string(match.Trigger.Action), "failure")
		}
		return &DeliveryError{Action: match.Trigger.Action, LDHName: domain.LDHName, Err: err}
	}

	if d.metrics != nil {
		d.metrics.RecordDelivery(string(match.Trigger.Action), "success")
	}
	d.logger.InfoContext(ctx, "domain update notification sent",
		"ldh_name", domain.LDHName,
		"event", string(match.Event.Action),
		"user_id", user.ID.String(),
	)
	return nil
}
