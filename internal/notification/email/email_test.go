package email

//go:generate mockgen -source=email.go -destination=mocks/mocks.go -package=mocks Sender

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchdog/internal/watch/models"
)

func domainUpdatedMessage() *Message {
	return &Message{
		To:       "jane.doe@example.org",
		Subject:  "A domain name has been changed",
		Template: "domain_updated",
		Locale:   "en",
		Priority: PriorityHigh,
		Context: map[string]any{
			"Event":     models.DomainEvent{Action: models.EventExpiration, Date: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
			"Domain":    "example.com",
			"Recipient": "jane.doe@example.org",
		},
	}
}

func TestRenderer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	t.Run("renders the domain updated template", func(t *testing.T) {
		msg := domainUpdatedMessage()
		body, err := r.Render(msg.Template, msg.Locale, msg.Context)
		require.NoError(t, err)

		assert.Contains(t, body, "Hello Jane,")
		assert.Contains(t, body, "example.com")
		assert.Contains(t, body, "expiration")
		assert.Contains(t, body, "2024-06-01 12:00 UTC")
	})

	t.Run("lists registrants and the redemption notice", func(t *testing.T) {
		msg := domainUpdatedMessage()
		msg.Context["Registrants"] = []string{"REG-1", "REG-2"}
		msg.Context["Redemption"] = true
		body, err := r.Render(msg.Template, msg.Locale, msg.Context)
		require.NoError(t, err)

		assert.Contains(t, body, "<td>REG-1</td>")
		assert.Contains(t, body, "<td>REG-2</td>")
		assert.Contains(t, body, "redemption period")
	})

	t.Run("omits the redemption notice by default", func(t *testing.T) {
		msg := domainUpdatedMessage()
		body, err := r.Render(msg.Template, msg.Locale, msg.Context)
		require.NoError(t, err)

		assert.NotContains(t, body, "Registrant</td>")
		assert.NotContains(t, body, "redemption period")
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		msg := domainUpdatedMessage()
		body, err := r.Render(msg.Template, "fr", msg.Context)
		require.NoError(t, err)
		assert.Contains(t, body, "has been changed")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := r.Render("welcome", "en", nil)
		assert.Error(t, err)
	})
}

func TestSMTPSenderBuild(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	sender, err := NewSMTPSender(SMTPConfig{
		Host:        "smtp.example.org",
		Port:        587,
		SenderEmail: "notifications@example.org",
		SenderName:  "Domain Watchdog",
	}, r)
	require.NoError(t, err)

	m, err := sender.build(domainUpdatedMessage())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "Subject: A domain name has been changed")
	assert.Contains(t, raw, "To: <jane.doe@example.org>")
	assert.Contains(t, raw, "notifications@example.org")
	assert.Contains(t, raw, "Importance: High")
	assert.Contains(t, raw, "Content-Language: en")
	assert.Contains(t, raw, "text/html")
}

func TestSMTPSenderNormalizesRecipient(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	sender, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.org", Port: 25, SenderEmail: "n@example.org"}, r)
	require.NoError(t, err)

	msg := domainUpdatedMessage()
	msg.To = "  Jane.Doe@Example.ORG "

	m, err := sender.build(msg)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "To: <jane.doe@example.org>")
}

func TestSMTPSenderRejectsBadRecipient(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	sender, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.org", Port: 25, SenderEmail: "n@example.org"}, r)
	require.NoError(t, err)

	msg := domainUpdatedMessage()
	msg.To = "not an address"

	err = sender.Send(context.Background(), msg)
	assert.Error(t, err)
}

func TestNewSMTPSenderValidation(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = NewSMTPSender(SMTPConfig{SenderEmail: "n@example.org"}, r)
	assert.Error(t, err)
	_, err = NewSMTPSender(SMTPConfig{Host: "smtp.example.org", SenderEmail: "n@example.org"}, nil)
	assert.Error(t, err)
}
