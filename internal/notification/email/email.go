// Package email renders and sends templated notification emails.
package email

import (
	"context"
)

// Priority maps onto the Importance/X-Priority headers.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityHigh
)

// Message is a templated email. The body is rendered from Template in
// Locale with Context as template data.
type Message struct {
	To       string
	Subject  string
	Template string
	Locale   string
	Priority Priority
	Context  map[string]any
}

// Sender delivers a message. Implementations report transport failures as
// errors; delivery guarantees belong to the transport.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
