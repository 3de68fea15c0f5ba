// Package consumer reads Kafka topics and routes records to handlers.
package consumer

import (
	"context"
	"log/slog"
)

// PayloadFunc adapts a function over the raw key and value to Handler.
type PayloadFunc func(ctx context.Context, key, value []byte) error

func (f PayloadFunc) Handle(ctx context.Context, msg *Message) error {
	return f(ctx, msg.Key, msg.Value)
}

// Router dispatches messages to topic-specific handlers.
type Router struct {
	handlers map[string]Handler
	skip     func(error) bool
	logger   *slog.Logger
}

type RouterOption func(*Router)

// WithSkip marks handler errors that must be committed instead of retried,
// such as malformed payloads or references to deleted entities.
func WithSkip(skip func(error) bool) RouterOption {
	return func(r *Router) {
		r.skip = skip
	}
}

func NewRouter(logger *slog.Logger, opts ...RouterOption) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a handler for a specific topic.
func (r *Router) Register(topic string, handler Handler) {
	r.handlers[topic] = handler
}

// Topics lists the registered topics.
func (r *Router) Topics() []string {
	topics := make([]string, 0, len(r.handlers))
	for topic := range r.handlers {
		topics = append(topics, topic)
	}
	return topics
}

// Handle routes the message to the appropriate topic handler.
func (r *Router) Handle(ctx context.Context, msg *Message) error {
	handler, ok := r.handlers[msg.Topic]
	if !ok {
		r.logger.WarnContext(ctx, "no handler for topic, skipping message",
			"topic", msg.Topic,
			"key", string(msg.Key),
		)
		return nil
	}

	err := handler.Handle(ctx, msg)
	if err != nil && r.skip != nil && r.skip(err) {
		r.logger.WarnContext(ctx, "message skipped",
			"topic", msg.Topic,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}
	return err
}
