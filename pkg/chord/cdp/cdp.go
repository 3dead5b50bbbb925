// Package cdp defines the capability contract between the chord client and
// the customer data platform it dispatches to.
//
// A CDP is any value. The client never requires all capabilities up front;
// each operation probes for the one interface it needs with a type
// assertion, mirroring how browser analytics libraries probe for methods at
// call time. A CDP that implements none of them is a valid (if useless)
// collaborator: every dispatch becomes a silent no-op.
//
// All delivery semantics (batching, retries, ordering, offline queuing)
// belong to the CDP implementation, not to this contract.
package cdp

// Options carries per-call options passed through to the CDP untouched.
// The shape follows the Segment-style options object: destination routing
// plus arbitrary context.
type Options struct {
	// Integrations toggles delivery per destination, keyed by destination
	// name. The special key "All" sets the default.
	Integrations map[string]bool `json:"integrations,omitempty"`

	// Context holds extra contextual fields (page, campaign, device, ...)
	// forwarded verbatim.
	Context map[string]any `json:"context,omitempty"`
}

// Traits are user traits for identify calls. Arbitrary keys are allowed
// alongside the well-known ones (email, firstName, ...).
type Traits map[string]any

// Tracker receives track events.
//
// Implementations must invoke done exactly once when the event has been
// handed to the transport layer (or dropped); the client's returned
// completion resolves at that point. An error return indicates the call
// itself failed and is logged by the client, never surfaced to callers.
type Tracker interface {
	Track(event string, props map[string]any, opts *Options, done func()) error
}

// Identifier receives identify calls. An empty userID identifies the
// anonymous user by traits alone.
type Identifier interface {
	Identify(userID string, traits Traits, opts *Options) error
}

// Pager receives page calls.
type Pager interface {
	Page(props map[string]any) error
}

// Resetter clears any user state the CDP holds (typically on sign-out).
type Resetter interface {
	Reset() error
}
