// Package session provides the per-conversation authorization context.
//
// The session token is resolved once per conversation and passed explicitly
// into every adapter invocation. It is never exposed as a tool argument, so
// the calling model can neither forge nor omit it.
package session

import (
	"errors"

	"github.com/google/uuid"
)

// ErrMissingSession is returned when no session is active.
var ErrMissingSession = errors.New("no active session")

// Session carries the opaque authorization token for one conversation.
// The zero value means no session is active.
type Session struct {
	token string
}

// New mints a session with a fresh opaque token.
func New() Session {
	return Session{token: uuid.NewString()}
}

// FromToken wraps an existing token, e.g. one issued by the host application.
func FromToken(token string) Session {
	return Session{token: token}
}

// Active reports whether a session token is present.
func (s Session) Active() bool {
	return s.token != ""
}

// Token returns the session token, or ErrMissingSession when no session
// is active.
func (s Session) Token() (string, error) {
	if s.token == "" {
		return "", ErrMissingSession
	}
	return s.token, nil
}
