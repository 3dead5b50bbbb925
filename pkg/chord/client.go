package chord

import (
	"fmt"
	"log/slog"

	"github.com/chordcommerce/analytics-go/pkg/chord/journal"
	"github.com/chordcommerce/analytics-go/pkg/chord/observability"
	"github.com/chordcommerce/analytics-go/pkg/chord/schema"
)

// ErrMissingFormatter is returned by New when a required object formatter
// is absent. Formatters must be supplied up front so builders never fail at
// call time.
var ErrMissingFormatter = fmt.Errorf("chord: missing object formatter")

// Config configures a Client. The type parameters C, K, L and P are the
// caller's own cart, checkout, line item and product types.
type Config[C, K, L, P any] struct {
	// CDP is the customer data platform instance events are dispatched to.
	// Capabilities are probed per call; see package cdp.
	CDP any

	// CDPProvider, when set, takes precedence over CDP and is invoked on
	// every dispatch to resolve the instance. The client never caches the
	// result; supply CDP directly for singleton behavior.
	CDPProvider func() any

	// Debug enables tracking-plan validation. Violations are logged, never
	// returned. Default false.
	Debug bool

	// EnableLogging gates all internal diagnostic output. Default true.
	EnableLogging *bool

	// StripNull removes null-valued fields from payloads before dispatch.
	// Default true.
	StripNull *bool

	// Formatters supplies the required object formatters and optional
	// per-event overrides.
	Formatters Formatters[C, K, L, P]

	// Metadata is attached to every emitted event as the meta block.
	Metadata Metadata

	// Logger receives diagnostics when logging is enabled.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Schemas is the tracking plan used under Debug.
	// Defaults to schema.DefaultRegistry().
	Schemas *schema.Registry

	// Journal, when set, records every dispatched event for debugging.
	Journal journal.Store

	// Metrics records dispatch metrics. Defaults to a no-op recorder; use
	// observability.NewMetricsRecorder() for OpenTelemetry.
	Metrics observability.MetricsRecorder
}

// Client normalizes e-commerce interactions into the chord analytics
// schema and dispatches them to the configured CDP.
//
// A Client is immutable after New and safe for concurrent use. Concurrent
// tracking calls are independent; any ordering guarantee comes from the
// CDP, not from the client.
type Client[C, K, L, P any] struct {
	cfg Config[C, K, L, P]

	enableLogging bool
	stripNull     bool

	logger  *slog.Logger
	schemas *schema.Registry
	journal journal.Store
	metrics observability.MetricsRecorder
}

// New creates a Client. It fails when any of the four object formatters is
// missing; everything else has a default.
func New[C, K, L, P any](cfg Config[C, K, L, P]) (*Client[C, K, L, P], error) {
	objects := cfg.Formatters.Objects
	switch {
	case objects.Cart == nil:
		return nil, fmt.Errorf("%w: cart", ErrMissingFormatter)
	case objects.Checkout == nil:
		return nil, fmt.Errorf("%w: checkout", ErrMissingFormatter)
	case objects.LineItem == nil:
		return nil, fmt.Errorf("%w: lineItem", ErrMissingFormatter)
	case objects.Product == nil:
		return nil, fmt.Errorf("%w: product", ErrMissingFormatter)
	}

	c := &Client[C, K, L, P]{
		cfg:           cfg,
		enableLogging: boolOrDefault(cfg.EnableLogging, true),
		stripNull:     boolOrDefault(cfg.StripNull, true),
		logger:        cfg.Logger,
		schemas:       cfg.Schemas,
		journal:       cfg.Journal,
		metrics:       cfg.Metrics,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.schemas == nil {
		c.schemas = schema.DefaultRegistry()
	}
	if c.metrics == nil {
		c.metrics = observability.NoopMetrics{}
	}
	return c, nil
}

// Debug reports whether tracking-plan validation is enabled.
func (c *Client[C, K, L, P]) Debug() bool {
	return c.cfg.Debug
}

// cdp resolves the configured CDP reference. A provider is invoked on
// every call; a plain value is returned as-is.
func (c *Client[C, K, L, P]) cdp() any {
	if c.cfg.CDPProvider != nil {
		return c.cfg.CDPProvider()
	}
	return c.cfg.CDP
}

// logf emits a diagnostic message when logging is enabled.
func (c *Client[C, K, L, P]) logf(msg string, args ...any) {
	if !c.enableLogging {
		return
	}
	c.logger.Info(msg, args...)
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
