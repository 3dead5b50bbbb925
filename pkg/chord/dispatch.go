package chord

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chordcommerce/analytics-go/pkg/chord/cdp"
	"github.com/chordcommerce/analytics-go/pkg/chord/journal"
	"github.com/chordcommerce/analytics-go/pkg/chord/observability"
	"github.com/chordcommerce/analytics-go/pkg/chord/schema"
)

// Track sends a track event to the CDP with any event name and properties.
// The payload is null-pruned (when enabled), stamped with the meta block,
// validated against the tracking plan under debug, and handed to the CDP's
// track capability.
//
// The returned completion resolves when the CDP invokes its done callback.
// When the CDP exposes no track capability the call is a silent no-op and
// the completion is already resolved. Failures while invoking the CDP are
// logged and swallowed; Track never panics and never returns an error.
func (c *Client[C, K, L, P]) Track(event string, props any, opts *cdp.Options) *Completion {
	if event == "" {
		c.logf("no event name provided")
	}

	ctx, span := observability.StartDispatchSpan(context.Background(), event)
	var invokeErr error
	defer func() { observability.EndSpanWithError(span, invokeErr) }()

	payload, err := toProperties(props)
	if err != nil {
		c.logf("event properties are not serializable", "event", event, "error", err)
		payload = map[string]any{}
	}
	if c.stripNull {
		payload = PruneNulls(payload).(map[string]any)
	}
	payload["meta"] = c.Meta()

	if c.cfg.Debug {
		violations := 0
		for _, result := range c.Validate(event, payload) {
			if !result.Success {
				violations++
				c.logf("chord tracking plan violation", "event", event, "error", result.Err)
			}
		}
		c.metrics.RecordValidation(ctx, event, violations)
	}

	start := time.Now()
	completion := resolvedCompletion
	tracker, ok := c.cdp().(cdp.Tracker)
	if ok {
		completion = newCompletion()
		invokeErr = c.invoke("track", func() error {
			return tracker.Track(event, payload, opts, completion.resolve)
		})
	}
	c.metrics.RecordDispatch(ctx, event, time.Since(start), ok)

	c.record(event, payload)
	return completion
}

// Identify forwards a user id and traits to the CDP's identify capability.
// Arguments are forwarded verbatim; absent capability is a silent no-op.
func (c *Client[C, K, L, P]) Identify(userID string, traits cdp.Traits, opts *cdp.Options) {
	identifier, ok := c.cdp().(cdp.Identifier)
	if !ok {
		return
	}
	c.invoke("identify", func() error {
		return identifier.Identify(userID, traits, opts)
	})
}

// IdentifyAnonymous identifies the current user by traits alone.
func (c *Client[C, K, L, P]) IdentifyAnonymous(traits cdp.Traits, opts *cdp.Options) {
	c.Identify("", traits, opts)
}

// Page forwards a page event carrying the meta block to the CDP's page
// capability.
func (c *Client[C, K, L, P]) Page() {
	pager, ok := c.cdp().(cdp.Pager)
	if !ok {
		return
	}
	c.invoke("page", func() error {
		return pager.Page(map[string]any{"meta": c.Meta()})
	})
}

// Reset forwards to the CDP's reset capability.
func (c *Client[C, K, L, P]) Reset() {
	resetter, ok := c.cdp().(cdp.Resetter)
	if !ok {
		return
	}
	c.invoke("reset", func() error {
		return resetter.Reset()
	})
}

// Validate checks a track payload against the tracking plan. Every schema
// registered for the event is evaluated independently; an event with no
// registered schema yields a single successful result carrying the payload.
func (c *Client[C, K, L, P]) Validate(event string, props map[string]any) []schema.Result {
	if event == "" {
		c.logf("no event name provided")
		return []schema.Result{{}}
	}
	schemas := c.schemas.Lookup(event)
	if len(schemas) == 0 {
		return []schema.Result{{Success: true, Data: props}}
	}
	results := make([]schema.Result, 0, len(schemas))
	for _, s := range schemas {
		results = append(results, s.Validate(props))
	}
	return results
}

// invoke runs a CDP call under the catch-and-log policy: errors and panics
// are logged through the gated logger and never propagate to the caller.
// The failure is returned so Track can record it on the dispatch span.
func (c *Client[C, K, L, P]) invoke(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cdp %s panicked: %v", op, r)
			c.logf("cdp call panicked", "operation", op, "panic", r)
		}
	}()
	if err = fn(); err != nil {
		c.logf("cdp call failed", "operation", op, "error", err)
	}
	return err
}

// record writes the dispatched payload to the journal, when configured.
func (c *Client[C, K, L, P]) record(event string, payload map[string]any) {
	if c.journal == nil {
		return
	}
	err := c.journal.Record(&journal.Entry{Event: event, Properties: payload})
	if err != nil {
		c.logf("journal write failed", "event", event, "error", err)
	}
}

// toProperties converts a payload value to its map form via JSON. A nil
// payload becomes an empty map; a map is shallow-copied so pruning and the
// meta key never touch the caller's own map.
func toProperties(props any) (map[string]any, error) {
	switch p := props.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		out := make(map[string]any, len(p)+1)
		for k, v := range p {
			out[k] = v
		}
		return out, nil
	}

	raw, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("marshal properties: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal properties: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
