package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"watchdog/internal/registrar/tracer"
)

func TestNoopTracer(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanOrder,
		tracer.String(tracer.AttrProvider, "ovh"),
		tracer.Bool(tracer.AttrDryRun, true),
	)

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.Int64(tracer.AttrTLDCount, 3))
	span.AddEvent("cart.created")
	span.End(errors.New("order rejected"))
}

func TestOTelTracerWithInjectedTracer(t *testing.T) {
	tr := tracer.NewOTel(tracer.WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), tracer.SpanVerify,
		tracer.String(tracer.AttrProvider, "gandi"),
		tracer.Duration("elapsed_ms", 1500*time.Millisecond),
	)

	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.SetAttributes(tracer.String(tracer.AttrErrorKind, "transport"))
	span.AddEvent("identity.checked", tracer.Bool("ok", true))
	span.End(nil)
}

func TestDurationAttributeIsMilliseconds(t *testing.T) {
	attr := tracer.Duration("latency", 2*time.Second)
	assert.Equal(t, int64(2000), attr.Value)
}
