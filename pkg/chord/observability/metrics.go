// Package observability provides opt-in metrics and tracing for the chord
// client: dispatch counters and latency via OpenTelemetry, with no-op
// implementations when disabled.
package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records chord dispatch metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordDispatch records one tracking call. delivered is false when the
	// configured CDP exposed no track capability and the call was a no-op.
	RecordDispatch(ctx context.Context, event string, duration time.Duration, delivered bool)

	// RecordValidation records the outcome of a debug-mode tracking plan
	// check for one event.
	RecordValidation(ctx context.Context, event string, violations int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	dispatched      metric.Int64Counter
	dropped         metric.Int64Counter
	dispatchLatency metric.Float64Histogram
	violations      metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("chord")

	dispatched, err := meter.Int64Counter("chord.events.dispatched",
		metric.WithDescription("Number of events handed to the CDP"),
	)
	if err != nil {
		return nil, err
	}

	dropped, err := meter.Int64Counter("chord.events.dropped",
		metric.WithDescription("Number of events dropped because the CDP exposed no track capability"),
	)
	if err != nil {
		return nil, err
	}

	dispatchLatency, err := meter.Float64Histogram("chord.dispatch.latency_ms",
		metric.WithDescription("Synchronous dispatch latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	violations, err := meter.Int64Counter("chord.validation.violations",
		metric.WithDescription("Number of tracking plan violations observed in debug mode"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		dispatched:      dispatched,
		dropped:         dropped,
		dispatchLatency: dispatchLatency,
		violations:      violations,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordDispatch records one tracking call.
func (m *otelMetrics) RecordDispatch(ctx context.Context, event string, duration time.Duration, delivered bool) {
	attrs := []attribute.KeyValue{
		attribute.String("event", event),
	}

	if delivered {
		m.dispatched.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		m.dropped.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
	m.dispatchLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordValidation records a tracking plan check outcome.
func (m *otelMetrics) RecordValidation(ctx context.Context, event string, violations int) {
	if violations == 0 {
		return
	}
	m.violations.Add(ctx, int64(violations), metric.WithAttributes(
		attribute.String("event", event),
	))
}
