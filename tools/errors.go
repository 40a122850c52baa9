// Tool error taxonomy.
//
// Every failure a dispatch can produce falls into one of the kinds below.
// Adapters raise *Error values (or backend sentinels); the dispatcher maps
// them into the Failure side of the result envelope. Failure messages are
// safe to surface verbatim to the end user.

package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/session"
)

// ErrorKind classifies a tool failure.
type ErrorKind string

const (
	// KindValidation marks an argument that is missing, of the wrong
	// type, or outside its enum. Never reaches the backend.
	KindValidation ErrorKind = "validation_error"
	// KindUnknownTool marks a tool name absent from the registry.
	KindUnknownTool ErrorKind = "unknown_tool"
	// KindUnauthorized marks a call made without an active session.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindNotFound marks a backend report of a missing entity.
	KindNotFound ErrorKind = "not_found"
	// KindBackend marks a backend failure or an adapter-level exception.
	KindBackend ErrorKind = "backend_error"
	// KindTimeout marks a bounded call that exceeded its deadline.
	KindTimeout ErrorKind = "timeout"
	// KindUnimplemented marks a tool whose handler intentionally
	// refuses to run.
	KindUnimplemented ErrorKind = "unimplemented"
)

// String returns the string representation of the kind.
func (k ErrorKind) String() string {
	return string(k)
}

// Error is a typed tool failure raised by adapters.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf creates a typed tool failure with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// classify maps an adapter error to its kind. Backend sentinels and
// context errors get their dedicated kinds; everything unexpected is a
// backend error so a handler can never crash the dispatch loop.
func classify(err error) ErrorKind {
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return toolErr.Kind
	}
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return KindNotFound
	case errors.Is(err, backend.ErrUnauthorized), errors.Is(err, session.ErrMissingSession):
		return KindUnauthorized
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	default:
		return KindBackend
	}
}
