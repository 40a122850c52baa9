// SQLite implementation of the backend gateway.
//
// Information Hiding:
// - SQLite connection management hidden behind the Store interface
// - Schema and migration details encapsulated
// - Thread-safe via sql.DB's built-in connection pooling

package backend

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lexkeep/lexkeep/llm"
	"github.com/lexkeep/lexkeep/model"
	"github.com/lexkeep/lexkeep/session"
)

// SqliteStore implements Store and ConversationStore using SQLite.
// Thread-safe: sql.DB handles connection pooling and concurrent access.
type SqliteStore struct {
	db *sql.DB
}

// OpenSqlite opens or creates a SQLite database at the given path.
// Creates parent directories if they don't exist.
func OpenSqlite(path string) (*SqliteStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// NewSqliteInMemory creates an in-memory database (useful for testing).
func NewSqliteInMemory() (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}

	store := &SqliteStore{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS cases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			case_type TEXT NOT NULL CHECK (case_type IN
				('employment','housing','consumer','family','debt','other')),
			description TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active' CHECK (status IN
				('active','closed','pending')),
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS evidence (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			case_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			evidence_type TEXT NOT NULL CHECK (evidence_type IN
				('document','photo','email','recording','note')),
			content TEXT NOT NULL DEFAULT '',
			file_path TEXT NOT NULL DEFAULT '',
			obtained_date TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			FOREIGN KEY (case_id) REFERENCES cases(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_evidence_case
		ON evidence(case_id);

		CREATE TABLE IF NOT EXISTS case_facts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			case_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			category TEXT NOT NULL CHECK (category IN
				('timeline','evidence','witness','location','communication','other')),
			importance TEXT NOT NULL DEFAULT 'medium' CHECK (importance IN
				('low','medium','high','critical')),
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			FOREIGN KEY (case_id) REFERENCES cases(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_case_facts_case
		ON case_facts(case_id, category);

		CREATE TABLE IF NOT EXISTS user_facts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			content TEXT NOT NULL,
			category TEXT NOT NULL CHECK (category IN
				('personal','employment','financial','contact','medical','other')),
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_user_facts_user
		ON user_facts(user_id, category);

		CREATE TABLE IF NOT EXISTS conversations (
			conversation_id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			conversation_id TEXT NOT NULL,
			message_index INTEGER NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			tool_calls TEXT NOT NULL DEFAULT '',
			tool_call_id TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (conversation_id) REFERENCES conversations(conversation_id) ON DELETE CASCADE,
			UNIQUE(conversation_id, message_index)
		);

		CREATE INDEX IF NOT EXISTS idx_messages_conversation
		ON messages(conversation_id, message_index);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// CreateCase creates a new case in the active status.
func (s *SqliteStore) CreateCase(ctx context.Context, sess session.Session, input model.CaseInput) (model.Case, error) {
	if err := authorize(sess); err != nil {
		return model.Case{}, err
	}

	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO cases (title, case_type, description, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		input.Title, string(input.CaseType), input.Description, string(model.StatusActive), now, now,
	)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to create case: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to read new case id: %w", err)
	}

	return s.GetCaseByID(ctx, sess, id)
}

// GetCaseByID returns a single case.
func (s *SqliteStore) GetCaseByID(ctx context.Context, sess session.Session, id int64) (model.Case, error) {
	if err := authorize(sess); err != nil {
		return model.Case{}, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, case_type, description, status, created_at, updated_at
		 FROM cases WHERE id = ?`, id)

	c, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Case{}, fmt.Errorf("case %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to load case %d: %w", id, err)
	}
	return c, nil
}

// GetAllCases returns every case, newest first.
func (s *SqliteStore) GetAllCases(ctx context.Context, sess session.Session) ([]model.Case, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, case_type, description, status, created_at, updated_at
		 FROM cases ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	cases := []model.Case{}
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cases: %w", err)
	}
	return cases, nil
}

// UpdateCase applies the non-nil fields of update and returns the result.
func (s *SqliteStore) UpdateCase(ctx context.Context, sess session.Session, id int64, update model.CaseUpdate) (model.Case, error) {
	if err := authorize(sess); err != nil {
		return model.Case{}, err
	}

	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().Unix()}

	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.CaseType != nil {
		sets = append(sets, "case_type = ?")
		args = append(args, string(*update.CaseType))
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE cases SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to update case %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Case{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.Case{}, fmt.Errorf("case %d: %w", id, ErrNotFound)
	}

	return s.GetCaseByID(ctx, sess, id)
}

// CreateEvidence attaches evidence to a case.
func (s *SqliteStore) CreateEvidence(ctx context.Context, sess session.Session, input model.EvidenceInput) (model.Evidence, error) {
	if err := authorize(sess); err != nil {
		return model.Evidence{}, err
	}

	if _, err := s.GetCaseByID(ctx, sess, input.CaseID); err != nil {
		return model.Evidence{}, err
	}

	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO evidence (case_id, title, evidence_type, content, file_path, obtained_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.CaseID, input.Title, string(input.EvidenceType),
		input.Content, input.FilePath, input.ObtainedDate, now,
	)
	if err != nil {
		return model.Evidence{}, fmt.Errorf("failed to create evidence: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Evidence{}, fmt.Errorf("failed to read new evidence id: %w", err)
	}

	return model.Evidence{
		ID:           id,
		CaseID:       input.CaseID,
		Title:        input.Title,
		EvidenceType: input.EvidenceType,
		Content:      input.Content,
		FilePath:     input.FilePath,
		ObtainedDate: input.ObtainedDate,
		CreatedAt:    time.Unix(now, 0),
	}, nil
}

// GetEvidenceByCaseID returns all evidence for a case, oldest first.
func (s *SqliteStore) GetEvidenceByCaseID(ctx context.Context, sess session.Session, caseID int64) ([]model.Evidence, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}

	if _, err := s.GetCaseByID(ctx, sess, caseID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, case_id, title, evidence_type, content, file_path, obtained_date, created_at
		 FROM evidence WHERE case_id = ? ORDER BY id`, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query evidence: %w", err)
	}
	defer rows.Close()

	items := []model.Evidence{}
	for rows.Next() {
		var e model.Evidence
		var evidenceType string
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.CaseID, &e.Title, &evidenceType,
			&e.Content, &e.FilePath, &e.ObtainedDate, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan evidence: %w", err)
		}
		e.EvidenceType = model.EvidenceType(evidenceType)
		e.CreatedAt = time.Unix(createdAt, 0)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evidence: %w", err)
	}
	return items, nil
}

// CreateCaseFact stores a case fact. The owning case is fixed here.
func (s *SqliteStore) CreateCaseFact(ctx context.Context, sess session.Session, input model.CaseFactInput) (model.CaseFact, error) {
	if err := authorize(sess); err != nil {
		return model.CaseFact{}, err
	}

	if _, err := s.GetCaseByID(ctx, sess, input.CaseID); err != nil {
		return model.CaseFact{}, err
	}

	importance := input.Importance
	if importance == "" {
		importance = model.ImportanceMedium
	}

	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO case_facts (case_id, content, category, importance, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		input.CaseID, input.Content, string(input.Category), string(importance), now, now,
	)
	if err != nil {
		return model.CaseFact{}, fmt.Errorf("failed to store fact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.CaseFact{}, fmt.Errorf("failed to read new fact id: %w", err)
	}

	return model.CaseFact{
		ID:         id,
		CaseID:     input.CaseID,
		Content:    input.Content,
		Category:   input.Category,
		Importance: importance,
		CreatedAt:  time.Unix(now, 0),
		UpdatedAt:  time.Unix(now, 0),
	}, nil
}

// GetCaseFacts returns every fact for a case, oldest first.
func (s *SqliteStore) GetCaseFacts(ctx context.Context, sess session.Session, caseID int64) ([]model.CaseFact, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}

	if _, err := s.GetCaseByID(ctx, sess, caseID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, case_id, content, category, importance, created_at, updated_at
		 FROM case_facts WHERE case_id = ? ORDER BY id`, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query facts: %w", err)
	}
	defer rows.Close()

	facts := []model.CaseFact{}
	for rows.Next() {
		f, err := scanCaseFact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fact: %w", err)
		}
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate facts: %w", err)
	}
	return facts, nil
}

// UpdateCaseFact applies the non-nil fields of update and returns the result.
// The owning case never changes.
func (s *SqliteStore) UpdateCaseFact(ctx context.Context, sess session.Session, id int64, update model.CaseFactUpdate) (model.CaseFact, error) {
	if err := authorize(sess); err != nil {
		return model.CaseFact{}, err
	}

	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().Unix()}

	if update.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *update.Content)
	}
	if update.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, string(*update.Category))
	}
	if update.Importance != nil {
		sets = append(sets, "importance = ?")
		args = append(args, string(*update.Importance))
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE case_facts SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return model.CaseFact{}, fmt.Errorf("failed to update fact %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.CaseFact{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.CaseFact{}, fmt.Errorf("fact %d: %w", id, ErrNotFound)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, case_id, content, category, importance, created_at, updated_at
		 FROM case_facts WHERE id = ?`, id)
	f, err := scanCaseFact(row)
	if err != nil {
		return model.CaseFact{}, fmt.Errorf("failed to load fact %d: %w", id, err)
	}
	return f, nil
}

// DeleteCaseFact deletes a fact.
func (s *SqliteStore) DeleteCaseFact(ctx context.Context, sess session.Session, id int64) error {
	if err := authorize(sess); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM case_facts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete fact %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("fact %d: %w", id, ErrNotFound)
	}
	return nil
}

// CreateUserFact stores a user-scoped fact.
func (s *SqliteStore) CreateUserFact(ctx context.Context, sess session.Session, input model.UserFactInput) (model.UserFact, error) {
	if err := authorize(sess); err != nil {
		return model.UserFact{}, err
	}

	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO user_facts (user_id, content, category, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		input.UserID, input.Content, string(input.Category), now, now,
	)
	if err != nil {
		return model.UserFact{}, fmt.Errorf("failed to store user fact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.UserFact{}, fmt.Errorf("failed to read new user fact id: %w", err)
	}

	return model.UserFact{
		ID:        id,
		UserID:    input.UserID,
		Content:   input.Content,
		Category:  input.Category,
		CreatedAt: time.Unix(now, 0),
		UpdatedAt: time.Unix(now, 0),
	}, nil
}

// GetUserFacts returns every fact for a user, oldest first.
func (s *SqliteStore) GetUserFacts(ctx context.Context, sess session.Session, userID string) ([]model.UserFact, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, content, category, created_at, updated_at
		 FROM user_facts WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user facts: %w", err)
	}
	defer rows.Close()

	facts := []model.UserFact{}
	for rows.Next() {
		var f model.UserFact
		var category string
		var createdAt, updatedAt int64
		if err := rows.Scan(&f.ID, &f.UserID, &f.Content, &category, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user fact: %w", err)
		}
		f.Category = model.UserFactCategory(category)
		f.CreatedAt = time.Unix(createdAt, 0)
		f.UpdatedAt = time.Unix(updatedAt, 0)
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user facts: %w", err)
	}
	return facts, nil
}

// UpdateUserFact updates the content and category of a user fact.
func (s *SqliteStore) UpdateUserFact(ctx context.Context, sess session.Session, id int64, content string, category model.UserFactCategory) (model.UserFact, error) {
	if err := authorize(sess); err != nil {
		return model.UserFact{}, err
	}

	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE user_facts SET content = ?, category = ?, updated_at = ? WHERE id = ?`,
		content, string(category), now, id)
	if err != nil {
		return model.UserFact{}, fmt.Errorf("failed to update user fact %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.UserFact{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.UserFact{}, fmt.Errorf("user fact %d: %w", id, ErrNotFound)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, content, category, created_at, updated_at
		 FROM user_facts WHERE id = ?`, id)
	var f model.UserFact
	var cat string
	var createdAt, updatedAt int64
	if err := row.Scan(&f.ID, &f.UserID, &f.Content, &cat, &createdAt, &updatedAt); err != nil {
		return model.UserFact{}, fmt.Errorf("failed to load user fact %d: %w", id, err)
	}
	f.Category = model.UserFactCategory(cat)
	f.CreatedAt = time.Unix(createdAt, 0)
	f.UpdatedAt = time.Unix(updatedAt, 0)
	return f, nil
}

// DeleteUserFact deletes a user fact.
func (s *SqliteStore) DeleteUserFact(ctx context.Context, sess session.Session, id int64) error {
	if err := authorize(sess); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM user_facts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user fact %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user fact %d: %w", id, ErrNotFound)
	}
	return nil
}

// SaveConversation replaces the stored history for a conversation.
func (s *SqliteStore) SaveConversation(ctx context.Context, conversationID string, history []llm.ChatMessage) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO conversations (conversation_id) VALUES (?)",
		conversationID,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure conversation: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback after Commit is a no-op
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, "DELETE FROM messages WHERE conversation_id = ?", conversationID)
	if err != nil {
		return fmt.Errorf("failed to clear old messages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO messages (conversation_id, message_index, role, content, tool_calls, tool_call_id)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for i, msg := range history {
		toolCalls := ""
		if len(msg.ToolCalls) > 0 {
			encoded, err := json.Marshal(msg.ToolCalls)
			if err != nil {
				return fmt.Errorf("failed to encode tool calls: %w", err)
			}
			toolCalls = string(encoded)
		}
		_, err = stmt.ExecContext(ctx, conversationID, i, msg.Role, msg.Content, toolCalls, msg.ToolCallID)
		if err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE conversations SET updated_at = datetime('now') WHERE conversation_id = ?",
		conversationID)
	if err != nil {
		return fmt.Errorf("failed to update conversation timestamp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadConversation loads history for a conversation.
func (s *SqliteStore) LoadConversation(ctx context.Context, conversationID string) ([]llm.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT role, content, tool_calls, tool_call_id
		 FROM messages WHERE conversation_id = ? ORDER BY message_index`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	history := []llm.ChatMessage{}
	for rows.Next() {
		var msg llm.ChatMessage
		var toolCalls string
		if err := rows.Scan(&msg.Role, &msg.Content, &toolCalls, &msg.ToolCallID); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if toolCalls != "" {
			if err := json.Unmarshal([]byte(toolCalls), &msg.ToolCalls); err != nil {
				return nil, fmt.Errorf("failed to decode tool calls: %w", err)
			}
		}
		history = append(history, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return history, nil
}

// DeleteConversation deletes a conversation and its history.
func (s *SqliteStore) DeleteConversation(ctx context.Context, conversationID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM conversations WHERE conversation_id = ?", conversationID)
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}

// ListConversations lists all conversation ids.
func (s *SqliteStore) ListConversations(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT conversation_id FROM conversations ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan conversation id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversations: %w", err)
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCase(row rowScanner) (model.Case, error) {
	var c model.Case
	var caseType, status string
	var createdAt, updatedAt int64
	if err := row.Scan(&c.ID, &c.Title, &caseType, &c.Description, &status, &createdAt, &updatedAt); err != nil {
		return model.Case{}, err
	}
	c.CaseType = model.CaseType(caseType)
	c.Status = model.CaseStatus(status)
	c.CreatedAt = time.Unix(createdAt, 0)
	c.UpdatedAt = time.Unix(updatedAt, 0)
	return c, nil
}

func scanCaseFact(row rowScanner) (model.CaseFact, error) {
	var f model.CaseFact
	var category, importance string
	var createdAt, updatedAt int64
	if err := row.Scan(&f.ID, &f.CaseID, &f.Content, &category, &importance, &createdAt, &updatedAt); err != nil {
		return model.CaseFact{}, err
	}
	f.Category = model.FactCategory(category)
	f.Importance = model.Importance(importance)
	f.CreatedAt = time.Unix(createdAt, 0)
	f.UpdatedAt = time.Unix(updatedAt, 0)
	return f, nil
}

// Verify interface compliance
var (
	_ Store             = (*SqliteStore)(nil)
	_ ConversationStore = (*SqliteStore)(nil)
)
