// Package schema implements tracking-plan validation for chord events.
//
// A tracking plan maps an event name to zero or more schemas. Each schema
// is checked independently against the event payload so that every
// violation can be reported, not just the first. Validation is a debug
// aid: the client logs failures and dispatches anyway.
//
// Field-level rules are evaluated with go-playground/validator tags via
// Rules; cross-field refinements that tags cannot express are written as
// Func schemas.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of checking one schema against a payload.
type Result struct {
	// Success is true when the payload satisfied the schema.
	Success bool

	// Err carries the violation detail when Success is false. Multiple
	// field violations are joined.
	Err error

	// Data echoes the payload on trivial success (no schema registered).
	Data map[string]any
}

// Schema checks an event payload against one tracking-plan rule set.
type Schema interface {
	Validate(props map[string]any) Result
}

// Func adapts a function to the Schema interface, for refinements that
// field tags cannot express.
type Func func(props map[string]any) Result

// Validate implements Schema.
func (f Func) Validate(props map[string]any) Result {
	return f(props)
}

// Violation is a single field-level schema violation.
type Violation struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("field %q: %v", v.Field, v.Err)
}

// Unwrap returns the underlying validator error.
func (v *Violation) Unwrap() error {
	return v.Err
}

// validate is the shared validator instance. go-playground validators are
// safe for concurrent use and cache struct metadata, so one is enough.
var validate = validator.New()

// Rules is a field-tag schema: payload key to go-playground/validator tag
// (for example, "currency": "omitempty,iso4217").
type Rules map[string]string

// Validate implements Schema by running every field tag against the
// payload. All field violations are collected and joined.
func (r Rules) Validate(props map[string]any) Result {
	rules := make(map[string]any, len(r))
	for field, tag := range r {
		rules[field] = tag
	}

	failed := validate.ValidateMap(props, rules)
	if len(failed) == 0 {
		return Result{Success: true, Data: props}
	}

	fields := make([]string, 0, len(failed))
	for field := range failed {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	violations := make([]error, 0, len(fields))
	for _, field := range fields {
		err, ok := failed[field].(error)
		if !ok {
			err = fmt.Errorf("%v", failed[field])
		}
		violations = append(violations, &Violation{Field: field, Err: err})
	}
	return Result{Err: errors.Join(violations...)}
}

// Registry maps event names to their tracking-plan schemas.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string][]Schema
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string][]Schema)}
}

// Register appends a schema for an event name. Multiple schemas per event
// are checked independently.
func (r *Registry) Register(event string, s Schema) error {
	if event == "" {
		return errors.New("event name is required")
	}
	if s == nil {
		return errors.New("schema is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[event] = append(r.schemas[event], s)
	return nil
}

// MustRegister registers a schema, panicking on error.
func (r *Registry) MustRegister(event string, s Schema) {
	if err := r.Register(event, s); err != nil {
		panic(err)
	}
}

// Lookup returns the schemas registered for an event name, or nil.
func (r *Registry) Lookup(event string) []Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas[event]
}

// Events returns all event names with at least one registered schema.
func (r *Registry) Events() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
