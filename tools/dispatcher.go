// Tool dispatcher.
//
// Dispatch validates and routes one tool call to its adapter and
// normalizes the outcome into the bounded result envelope. Steps other
// than the handler invocation are pure: no side effects occur on the
// validation and authorization paths.

package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lexkeep/lexkeep/session"
)

// Config holds dispatch execution configuration.
// The zero value is safe: the handler timeout defaults to 30 seconds.
type Config struct {
	TimeoutSecs uint64
}

// Timeout returns the configured handler timeout, defaulting to 30 seconds.
func (c *Config) Timeout() time.Duration {
	if c == nil || c.TimeoutSecs == 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSecs) * time.Second
}

// Dispatcher routes tool calls through the registry to their adapters.
// Stateless apart from the read-only registry; safe for concurrent use
// from independent conversations.
type Dispatcher struct {
	registry *Registry
	config   Config
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// WithConfig overrides the execution configuration.
func (d *Dispatcher) WithConfig(config Config) *Dispatcher {
	d.config = config
	return d
}

// Registry returns the catalogue this dispatcher serves.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch runs one tool call:
//
//  1. Resolve the descriptor; unknown names fail without touching the
//     session.
//  2. Validate the raw arguments against the parameter schema; failures
//     never invoke the adapter.
//  3. Check the session; adapters are never called unauthenticated.
//  4. Invoke the handler under the configured timeout. The handler
//     context is detached from conversation cancellation so an in-flight
//     backend write is never aborted midway; if the conversation was
//     cancelled while the handler ran, the computed result is discarded.
//  5. Wrap the outcome into the result envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, rawArgs json.RawMessage, sess session.Session) Result {
	desc, ok := d.registry.Resolve(name)
	if !ok {
		return failure(KindUnknownTool, fmt.Sprintf("unknown tool: %s", name))
	}

	args, err := validateArgs(desc, rawArgs)
	if err != nil {
		return failure(KindValidation, err.Error())
	}

	if !sess.Active() {
		return failure(KindUnauthorized, "no active session")
	}

	payload, message, err := d.invoke(ctx, desc, sess, args)

	if cancelled := ctx.Err(); cancelled != nil && !errors.Is(cancelled, context.DeadlineExceeded) {
		// Conversation cancelled while the handler ran; the handler was
		// allowed to finish to avoid partial writes, but its result is
		// discarded.
		return failure(KindBackend, "conversation cancelled before the result was delivered")
	}

	if err != nil {
		return failure(classify(err), err.Error())
	}
	return success(payload, message)
}

// invoke runs the handler with panic recovery and the bounded, detached
// context described in Dispatch.
func (d *Dispatcher) invoke(ctx context.Context, desc Descriptor, sess session.Session, args Args) (payload interface{}, message string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Errorf(KindBackend, "tool %s failed unexpectedly: %v", desc.Name, r)
		}
	}()

	hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.config.Timeout())
	defer cancel()

	payload, message, err = desc.Handler(hctx, sess, args)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		err = Errorf(KindTimeout, "tool %s timed out after %s", desc.Name, d.config.Timeout())
	}
	return payload, message, err
}
