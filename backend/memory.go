// In-memory implementation of the backend gateway.
//
// Information Hiding:
// - Map storage structure hidden from users
// - Thread-safe access via RWMutex hidden behind the interface
// - Suitable for testing and ephemeral sessions

package backend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lexkeep/lexkeep/llm"
	"github.com/lexkeep/lexkeep/model"
	"github.com/lexkeep/lexkeep/session"
)

// MemoryStore implements Store and ConversationStore using in-memory maps.
// Data is lost when the process terminates.
type MemoryStore struct {
	mu            sync.RWMutex
	nextCaseID    int64
	nextEvID      int64
	nextFactID    int64
	nextUserID    int64
	cases         map[int64]model.Case
	evidence      map[int64]model.Evidence
	caseFacts     map[int64]model.CaseFact
	userFacts     map[int64]model.UserFact
	conversations map[string][]llm.ChatMessage
}

// NewMemoryStore creates a new empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextCaseID:    1,
		nextEvID:      1,
		nextFactID:    1,
		nextUserID:    1,
		cases:         make(map[int64]model.Case),
		evidence:      make(map[int64]model.Evidence),
		caseFacts:     make(map[int64]model.CaseFact),
		userFacts:     make(map[int64]model.UserFact),
		conversations: make(map[string][]llm.ChatMessage),
	}
}

// CreateCase creates a new case in the active status.
func (s *MemoryStore) CreateCase(ctx context.Context, sess session.Session, input model.CaseInput) (model.Case, error) {
	if err := authorize(sess); err != nil {
		return model.Case{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c := model.Case{
		ID:          s.nextCaseID,
		Title:       input.Title,
		CaseType:    input.CaseType,
		Description: input.Description,
		Status:      model.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextCaseID++
	s.cases[c.ID] = c
	return c, nil
}

// GetCaseByID returns a single case.
func (s *MemoryStore) GetCaseByID(ctx context.Context, sess session.Session, id int64) (model.Case, error) {
	if err := authorize(sess); err != nil {
		return model.Case{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return model.Case{}, fmt.Errorf("case %d: %w", id, ErrNotFound)
	}
	return c, nil
}

// GetAllCases returns every case, newest first.
func (s *MemoryStore) GetAllCases(ctx context.Context, sess session.Session) ([]model.Case, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cases := make([]model.Case, 0, len(s.cases))
	for _, c := range s.cases {
		cases = append(cases, c)
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].ID > cases[j].ID })
	return cases, nil
}

// UpdateCase applies the non-nil fields of update and returns the result.
func (s *MemoryStore) UpdateCase(ctx context.Context, sess session.Session, id int64, update model.CaseUpdate) (model.Case, error) {
	if err := authorize(sess); err != nil {
		return model.Case{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[id]
	if !ok {
		return model.Case{}, fmt.Errorf("case %d: %w", id, ErrNotFound)
	}
	if update.Title != nil {
		c.Title = *update.Title
	}
	if update.CaseType != nil {
		c.CaseType = *update.CaseType
	}
	if update.Description != nil {
		c.Description = *update.Description
	}
	if update.Status != nil {
		c.Status = *update.Status
	}
	c.UpdatedAt = time.Now()
	s.cases[id] = c
	return c, nil
}

// CreateEvidence attaches evidence to a case.
func (s *MemoryStore) CreateEvidence(ctx context.Context, sess session.Session, input model.EvidenceInput) (model.Evidence, error) {
	if err := authorize(sess); err != nil {
		return model.Evidence{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[input.CaseID]; !ok {
		return model.Evidence{}, fmt.Errorf("case %d: %w", input.CaseID, ErrNotFound)
	}

	e := model.Evidence{
		ID:           s.nextEvID,
		CaseID:       input.CaseID,
		Title:        input.Title,
		EvidenceType: input.EvidenceType,
		Content:      input.Content,
		FilePath:     input.FilePath,
		ObtainedDate: input.ObtainedDate,
		CreatedAt:    time.Now(),
	}
	s.nextEvID++
	s.evidence[e.ID] = e
	return e, nil
}

// GetEvidenceByCaseID returns all evidence for a case, oldest first.
func (s *MemoryStore) GetEvidenceByCaseID(ctx context.Context, sess session.Session, caseID int64) ([]model.Evidence, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.cases[caseID]; !ok {
		return nil, fmt.Errorf("case %d: %w", caseID, ErrNotFound)
	}

	items := []model.Evidence{}
	for _, e := range s.evidence {
		if e.CaseID == caseID {
			items = append(items, e)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// CreateCaseFact stores a case fact.
func (s *MemoryStore) CreateCaseFact(ctx context.Context, sess session.Session, input model.CaseFactInput) (model.CaseFact, error) {
	if err := authorize(sess); err != nil {
		return model.CaseFact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[input.CaseID]; !ok {
		return model.CaseFact{}, fmt.Errorf("case %d: %w", input.CaseID, ErrNotFound)
	}

	importance := input.Importance
	if importance == "" {
		importance = model.ImportanceMedium
	}

	now := time.Now()
	f := model.CaseFact{
		ID:         s.nextFactID,
		CaseID:     input.CaseID,
		Content:    input.Content,
		Category:   input.Category,
		Importance: importance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.nextFactID++
	s.caseFacts[f.ID] = f
	return f, nil
}

// GetCaseFacts returns every fact for a case, oldest first.
func (s *MemoryStore) GetCaseFacts(ctx context.Context, sess session.Session, caseID int64) ([]model.CaseFact, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.cases[caseID]; !ok {
		return nil, fmt.Errorf("case %d: %w", caseID, ErrNotFound)
	}

	facts := []model.CaseFact{}
	for _, f := range s.caseFacts {
		if f.CaseID == caseID {
			facts = append(facts, f)
		}
	}
	sort.Slice(facts, func(i, j int) bool { return facts[i].ID < facts[j].ID })
	return facts, nil
}

// UpdateCaseFact applies the non-nil fields of update and returns the result.
func (s *MemoryStore) UpdateCaseFact(ctx context.Context, sess session.Session, id int64, update model.CaseFactUpdate) (model.CaseFact, error) {
	if err := authorize(sess); err != nil {
		return model.CaseFact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.caseFacts[id]
	if !ok {
		return model.CaseFact{}, fmt.Errorf("fact %d: %w", id, ErrNotFound)
	}
	if update.Content != nil {
		f.Content = *update.Content
	}
	if update.Category != nil {
		f.Category = *update.Category
	}
	if update.Importance != nil {
		f.Importance = *update.Importance
	}
	f.UpdatedAt = time.Now()
	s.caseFacts[id] = f
	return f, nil
}

// DeleteCaseFact deletes a fact.
func (s *MemoryStore) DeleteCaseFact(ctx context.Context, sess session.Session, id int64) error {
	if err := authorize(sess); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.caseFacts[id]; !ok {
		return fmt.Errorf("fact %d: %w", id, ErrNotFound)
	}
	delete(s.caseFacts, id)
	return nil
}

// CreateUserFact stores a user-scoped fact.
func (s *MemoryStore) CreateUserFact(ctx context.Context, sess session.Session, input model.UserFactInput) (model.UserFact, error) {
	if err := authorize(sess); err != nil {
		return model.UserFact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	f := model.UserFact{
		ID:        s.nextUserID,
		UserID:    input.UserID,
		Content:   input.Content,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextUserID++
	s.userFacts[f.ID] = f
	return f, nil
}

// GetUserFacts returns every fact for a user, oldest first.
func (s *MemoryStore) GetUserFacts(ctx context.Context, sess session.Session, userID string) ([]model.UserFact, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	facts := []model.UserFact{}
	for _, f := range s.userFacts {
		if f.UserID == userID {
			facts = append(facts, f)
		}
	}
	sort.Slice(facts, func(i, j int) bool { return facts[i].ID < facts[j].ID })
	return facts, nil
}

// UpdateUserFact updates the content and category of a user fact.
func (s *MemoryStore) UpdateUserFact(ctx context.Context, sess session.Session, id int64, content string, category model.UserFactCategory) (model.UserFact, error) {
	if err := authorize(sess); err != nil {
		return model.UserFact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.userFacts[id]
	if !ok {
		return model.UserFact{}, fmt.Errorf("user fact %d: %w", id, ErrNotFound)
	}
	f.Content = content
	f.Category = category
	f.UpdatedAt = time.Now()
	s.userFacts[id] = f
	return f, nil
}

// DeleteUserFact deletes a user fact.
func (s *MemoryStore) DeleteUserFact(ctx context.Context, sess session.Session, id int64) error {
	if err := authorize(sess); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userFacts[id]; !ok {
		return fmt.Errorf("user fact %d: %w", id, ErrNotFound)
	}
	delete(s.userFacts, id)
	return nil
}

// SaveConversation replaces the stored history for a conversation.
func (s *MemoryStore) SaveConversation(ctx context.Context, conversationID string, history []llm.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy to avoid external mutations
	copied := make([]llm.ChatMessage, len(history))
	copy(copied, history)
	s.conversations[conversationID] = copied
	return nil
}

// LoadConversation loads history for a conversation.
// Returns an empty slice if the conversation doesn't exist.
func (s *MemoryStore) LoadConversation(ctx context.Context, conversationID string) ([]llm.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.conversations[conversationID]
	if !ok {
		return []llm.ChatMessage{}, nil
	}

	copied := make([]llm.ChatMessage, len(history))
	copy(copied, history)
	return copied, nil
}

// DeleteConversation deletes a conversation and its history.
func (s *MemoryStore) DeleteConversation(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, conversationID)
	return nil
}

// ListConversations lists all conversation ids.
func (s *MemoryStore) ListConversations(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.conversations))
	for id := range s.conversations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Verify interface compliance
var (
	_ Store             = (*MemoryStore)(nil)
	_ ConversationStore = (*MemoryStore)(nil)
)
