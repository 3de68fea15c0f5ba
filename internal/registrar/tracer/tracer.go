// Package tracer provides a lightweight tracing abstraction for registrar
// operations.
//
// Services depend on the Tracer interface rather than on OpenTelemetry
// directly, so tests can run with NoopTracer and production wires OTelTracer.
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans for distributed tracing.
// Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	// The returned context carries the span for child operations.
	//
	// Example:
	//   ctx, span := tracer.Start(ctx, tracer.SpanOrder,
	//       tracer.String(tracer.AttrProvider, "ovh"),
	//       tracer.Bool(tracer.AttrDryRun, true),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the registrar module.
const (
	SpanVerify        = "registrar.verify"
	SpanOrder         = "registrar.order"
	SpanSupportedTLDs = "registrar.tlds"
)

// Attribute keys used by the registrar module.
const (
	AttrProvider  = "registrar.provider"
	AttrLDHName   = "domain.ldh_name"
	AttrDryRun    = "order.dry_run"
	AttrAttemptID = "order.attempt_id"
	AttrErrorKind = "error.kind"
	AttrTLDCount  = "tld.count"
)
