package trigger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// triggerMessage is the queue payload announcing a refreshed domain.
type triggerMessage struct {
	WatchListToken string    `json:"watchListToken"`
	LDHName        string    `json:"ldhName"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// MessageHandler adapts raw queue records to Handle.
type MessageHandler struct {
	handler *Handler
	logger  *slog.Logger
}

func NewMessageHandler(handler *Handler, logger *slog.Logger) *MessageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageHandler{handler: handler, logger: logger}
}

// HandleMessage decodes value and processes it. Malformed payloads are logged
// and reported as ErrSkipped so the consumer commits past them.
func (m *MessageHandler) HandleMessage(ctx context.Context, key, value []byte) error {
	cmd, err := decodeMessage(value)
	if err != nil {
		m.logger.ErrorContext(ctx, "malformed trigger message",
			"key", string(key),
			"error", err,
		)
		return fmt.Errorf("%w: %w", ErrSkipped, err)
	}
	return m.handler.Handle(ctx, cmd)
}

func decodeMessage(value []byte) (ProcessDomainTrigger, error) {
	var msg triggerMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return ProcessDomainTrigger{}, fmt.Errorf("decode trigger message: %w", err)
	}
	if strings.TrimSpace(msg.WatchListToken) == "" {
		return ProcessDomainTrigger{}, fmt.Errorf("watchListToken is required")
	}
	if strings.TrimSpace(msg.LDHName) == "" {
		return ProcessDomainTrigger{}, fmt.Errorf("ldhName is required")
	}
	if msg.UpdatedAt.IsZero() {
		return ProcessDomainTrigger{}, fmt.Errorf("updatedAt is required")
	}
	return ProcessDomainTrigger{
		WatchListToken: msg.WatchListToken,
		LDHName:        strings.ToLower(msg.LDHName),
		UpdatedAt:      msg.UpdatedAt,
	}, nil
}
