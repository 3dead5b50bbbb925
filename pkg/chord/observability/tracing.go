package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the chord tracer instance.
// Uses the global OTel tracer provider, which defaults to a no-op.
var tracer = otel.Tracer("chord")

// StartDispatchSpan starts a span covering one tracking dispatch.
func StartDispatchSpan(ctx context.Context, event string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "chord.track",
		trace.WithAttributes(
			attribute.String("event", event),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
