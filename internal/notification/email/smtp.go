package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	pkgemail "watchdog/pkg/email"
)

// SMTPConfig configures the SMTP transport.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	SenderEmail string
	SenderName  string
}

// SMTPSender renders messages and delivers them over SMTP.
type SMTPSender struct {
	cfg      SMTPConfig
	renderer *Renderer
	logger   *slog.Logger
}

type Option func(*SMTPSender)

func WithLogger(logger *slog.Logger) Option {
	return func(s *SMTPSender) {
		s.logger = logger
	}
}

func NewSMTPSender(cfg SMTPConfig, renderer *Renderer, opts ...Option) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.SenderEmail == "" {
		return nil, errors.New("smtp host and sender email are required")
	}
	if renderer == nil {
		return nil, errors.New("email renderer is required")
	}
	s := &SMTPSender{
		cfg:      cfg,
		renderer: renderer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send opens a connection per message; notification volume is low and this
// keeps no idle SMTP sessions around.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.InfoContext(ctx, "email sent",
		"template", msg.Template,
		"locale", msg.Locale,
	)
	return nil
}

func (s *SMTPSender) build(msg *Message) (*mail.Msg, error) {
	body, err := s.renderer.Render(msg.Template, msg.Locale, msg.Context)
	if err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if s.cfg.SenderName != "" {
		err = m.FromFormat(s.cfg.SenderName, s.cfg.SenderEmail)
	} else {
		err = m.From(s.cfg.SenderEmail)
	}
	if err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(pkgemail.Normalize(msg.To)); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	m.Subject(msg.Subject)
	if msg.Priority == PriorityHigh {
		m.SetImportance(mail.ImportanceHigh)
	}
	if msg.Locale != "" {
		m.SetGenHeader(mail.Header("Content-Language"), msg.Locale)
	}
	m.SetBodyString(mail.TypeTextHTML, body)
	return m, nil
}

func (s *SMTPSender) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return client, nil
}
