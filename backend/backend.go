// Package backend provides the gateway to the case-management stores.
//
// The backend is the sole owner of persistent state. Every operation takes
// the conversation's session and refuses to run without one. Implementations
// can use different engines (SQLite, memory) behind the same interface.
package backend

import (
	"context"
	"errors"

	"github.com/lexkeep/lexkeep/model"
	"github.com/lexkeep/lexkeep/session"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned when an operation is attempted without an
// active session.
var ErrUnauthorized = errors.New("unauthorized: no active session")

// Store is the backend gateway contract for cases, evidence, and fact
// memory. Methods return ErrNotFound (wrapped with the entity id) for
// missing entities and ErrUnauthorized when the session is empty.
type Store interface {
	// CreateCase creates a new case in the active status.
	CreateCase(ctx context.Context, sess session.Session, input model.CaseInput) (model.Case, error)

	// GetCaseByID returns a single case.
	GetCaseByID(ctx context.Context, sess session.Session, id int64) (model.Case, error)

	// GetAllCases returns every case. Status filtering happens in the
	// caller, not here.
	GetAllCases(ctx context.Context, sess session.Session) ([]model.Case, error)

	// UpdateCase applies the non-nil fields of update and returns the
	// updated case.
	UpdateCase(ctx context.Context, sess session.Session, id int64, update model.CaseUpdate) (model.Case, error)

	// CreateEvidence attaches evidence to a case. Used by the owning UI
	// and by seeding; the agent-facing tool is not wired to it.
	CreateEvidence(ctx context.Context, sess session.Session, input model.EvidenceInput) (model.Evidence, error)

	// GetEvidenceByCaseID returns all evidence for a case.
	GetEvidenceByCaseID(ctx context.Context, sess session.Session, caseID int64) ([]model.Evidence, error)

	// CreateCaseFact stores a case fact. The owning case is fixed here
	// and cannot change afterwards.
	CreateCaseFact(ctx context.Context, sess session.Session, input model.CaseFactInput) (model.CaseFact, error)

	// GetCaseFacts returns every fact for a case. Category filtering
	// happens in the caller, not here.
	GetCaseFacts(ctx context.Context, sess session.Session, caseID int64) ([]model.CaseFact, error)

	// UpdateCaseFact applies the non-nil fields of update and returns the
	// updated fact.
	UpdateCaseFact(ctx context.Context, sess session.Session, id int64, update model.CaseFactUpdate) (model.CaseFact, error)

	// DeleteCaseFact deletes a fact. Facts have no automatic expiry;
	// deletion is always explicit.
	DeleteCaseFact(ctx context.Context, sess session.Session, id int64) error

	// CreateUserFact stores a user-scoped fact.
	CreateUserFact(ctx context.Context, sess session.Session, input model.UserFactInput) (model.UserFact, error)

	// GetUserFacts returns every fact for a user.
	GetUserFacts(ctx context.Context, sess session.Session, userID string) ([]model.UserFact, error)

	// UpdateUserFact updates the content and category of a user fact.
	UpdateUserFact(ctx context.Context, sess session.Session, id int64, content string, category model.UserFactCategory) (model.UserFact, error)

	// DeleteUserFact deletes a user fact.
	DeleteUserFact(ctx context.Context, sess session.Session, id int64) error
}

// authorize rejects operations made without an active session.
func authorize(sess session.Session) error {
	if !sess.Active() {
		return ErrUnauthorized
	}
	return nil
}
