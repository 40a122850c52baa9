// Package model provides domain types shared across packages.
package model

import (
	"fmt"
	"strings"
	"time"
)

// CaseType classifies the legal matter a case concerns.
type CaseType string

const (
	CaseEmployment CaseType = "employment"
	CaseHousing    CaseType = "housing"
	CaseConsumer   CaseType = "consumer"
	CaseFamily     CaseType = "family"
	CaseDebt       CaseType = "debt"
	CaseOther      CaseType = "other"
)

// String returns the string representation of the case type.
func (c CaseType) String() string {
	return string(c)
}

// ParseCaseType parses a string into a CaseType.
func ParseCaseType(s string) (CaseType, error) {
	switch strings.ToLower(s) {
	case "employment":
		return CaseEmployment, nil
	case "housing":
		return CaseHousing, nil
	case "consumer":
		return CaseConsumer, nil
	case "family":
		return CaseFamily, nil
	case "debt":
		return CaseDebt, nil
	case "other":
		return CaseOther, nil
	default:
		return "", fmt.Errorf("unknown case type: %s", s)
	}
}

// CaseStatus is the lifecycle state of a case.
type CaseStatus string

const (
	StatusActive  CaseStatus = "active"
	StatusClosed  CaseStatus = "closed"
	StatusPending CaseStatus = "pending"
)

// String returns the string representation of the status.
func (s CaseStatus) String() string {
	return string(s)
}

// ParseCaseStatus parses a string into a CaseStatus.
func ParseCaseStatus(s string) (CaseStatus, error) {
	switch strings.ToLower(s) {
	case "active":
		return StatusActive, nil
	case "closed":
		return StatusClosed, nil
	case "pending":
		return StatusPending, nil
	default:
		return "", fmt.Errorf("unknown case status: %s", s)
	}
}

// Case is a legal case tracked by the application.
type Case struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	CaseType    CaseType   `json:"case_type"`
	Description string     `json:"description"`
	Status      CaseStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CaseInput holds the fields needed to create a case.
// New cases start in the active status.
type CaseInput struct {
	Title       string   `json:"title"`
	CaseType    CaseType `json:"case_type"`
	Description string   `json:"description"`
}

// CaseUpdate holds optional field updates for an existing case.
// Nil fields are left unchanged.
type CaseUpdate struct {
	Title       *string     `json:"title,omitempty"`
	CaseType    *CaseType   `json:"case_type,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *CaseStatus `json:"status,omitempty"`
}

// EvidenceType classifies a piece of evidence.
type EvidenceType string

const (
	EvidenceDocument  EvidenceType = "document"
	EvidencePhoto     EvidenceType = "photo"
	EvidenceEmail     EvidenceType = "email"
	EvidenceRecording EvidenceType = "recording"
	EvidenceNote      EvidenceType = "note"
)

// String returns the string representation of the evidence type.
func (e EvidenceType) String() string {
	return string(e)
}

// ParseEvidenceType parses a string into an EvidenceType.
func ParseEvidenceType(s string) (EvidenceType, error) {
	switch strings.ToLower(s) {
	case "document":
		return EvidenceDocument, nil
	case "photo":
		return EvidencePhoto, nil
	case "email":
		return EvidenceEmail, nil
	case "recording":
		return EvidenceRecording, nil
	case "note":
		return EvidenceNote, nil
	default:
		return "", fmt.Errorf("unknown evidence type: %s", s)
	}
}

// Evidence is a piece of evidence attached to a case.
type Evidence struct {
	ID           int64        `json:"id"`
	CaseID       int64        `json:"case_id"`
	Title        string       `json:"title"`
	EvidenceType EvidenceType `json:"evidence_type"`
	Content      string       `json:"content,omitempty"`
	FilePath     string       `json:"file_path,omitempty"`
	ObtainedDate string       `json:"obtained_date,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// EvidenceInput holds the fields needed to create evidence.
type EvidenceInput struct {
	CaseID       int64        `json:"case_id"`
	Title        string       `json:"title"`
	EvidenceType EvidenceType `json:"evidence_type"`
	Content      string       `json:"content,omitempty"`
	FilePath     string       `json:"file_path,omitempty"`
	ObtainedDate string       `json:"obtained_date,omitempty"`
}

// FactCategory classifies a case-scoped memory entry.
type FactCategory string

const (
	FactTimeline      FactCategory = "timeline"
	FactEvidence      FactCategory = "evidence"
	FactWitness       FactCategory = "witness"
	FactLocation      FactCategory = "location"
	FactCommunication FactCategory = "communication"
	FactOther         FactCategory = "other"
)

// String returns the string representation of the category.
func (c FactCategory) String() string {
	return string(c)
}

// ParseFactCategory parses a string into a FactCategory.
func ParseFactCategory(s string) (FactCategory, error) {
	switch strings.ToLower(s) {
	case "timeline":
		return FactTimeline, nil
	case "evidence":
		return FactEvidence, nil
	case "witness":
		return FactWitness, nil
	case "location":
		return FactLocation, nil
	case "communication":
		return FactCommunication, nil
	case "other":
		return FactOther, nil
	default:
		return "", fmt.Errorf("unknown fact category: %s", s)
	}
}

// Importance ranks how much weight a fact carries for the case.
type Importance string

const (
	ImportanceLow      Importance = "low"
	ImportanceMedium   Importance = "medium"
	ImportanceHigh     Importance = "high"
	ImportanceCritical Importance = "critical"
)

// String returns the string representation of the importance.
func (i Importance) String() string {
	return string(i)
}

// ParseImportance parses a string into an Importance.
func ParseImportance(s string) (Importance, error) {
	switch strings.ToLower(s) {
	case "low":
		return ImportanceLow, nil
	case "medium":
		return ImportanceMedium, nil
	case "high":
		return ImportanceHigh, nil
	case "critical":
		return ImportanceCritical, nil
	default:
		return "", fmt.Errorf("unknown importance: %s", s)
	}
}

// MaxFactContentLen is the maximum length of fact content after trimming.
const MaxFactContentLen = 5000

// CaseFact is a case-scoped memory entry written by the agent or the UI.
// The case it belongs to is fixed at creation; a fact never moves between
// cases.
type CaseFact struct {
	ID         int64        `json:"id"`
	CaseID     int64        `json:"case_id"`
	Content    string       `json:"content"`
	Category   FactCategory `json:"category"`
	Importance Importance   `json:"importance"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// CaseFactInput holds the fields needed to store a case fact.
// Importance defaults to medium when empty.
type CaseFactInput struct {
	CaseID     int64        `json:"case_id"`
	Content    string       `json:"content"`
	Category   FactCategory `json:"category"`
	Importance Importance   `json:"importance,omitempty"`
}

// CaseFactUpdate holds optional field updates for an existing fact.
// Nil fields are left unchanged. The owning case cannot be changed.
type CaseFactUpdate struct {
	Content    *string       `json:"content,omitempty"`
	Category   *FactCategory `json:"category,omitempty"`
	Importance *Importance   `json:"importance,omitempty"`
}

// UserFactCategory classifies a user-scoped memory entry.
type UserFactCategory string

const (
	UserFactPersonal   UserFactCategory = "personal"
	UserFactEmployment UserFactCategory = "employment"
	UserFactFinancial  UserFactCategory = "financial"
	UserFactContact    UserFactCategory = "contact"
	UserFactMedical    UserFactCategory = "medical"
	UserFactOther      UserFactCategory = "other"
)

// String returns the string representation of the category.
func (c UserFactCategory) String() string {
	return string(c)
}

// ParseUserFactCategory parses a string into a UserFactCategory.
func ParseUserFactCategory(s string) (UserFactCategory, error) {
	switch strings.ToLower(s) {
	case "personal":
		return UserFactPersonal, nil
	case "employment":
		return UserFactEmployment, nil
	case "financial":
		return UserFactFinancial, nil
	case "contact":
		return UserFactContact, nil
	case "medical":
		return UserFactMedical, nil
	case "other":
		return UserFactOther, nil
	default:
		return "", fmt.Errorf("unknown user fact category: %s", s)
	}
}

// UserFact is a user-scoped memory entry. Unlike case facts, user facts
// carry no importance ranking.
type UserFact struct {
	ID        int64            `json:"id"`
	UserID    string           `json:"user_id"`
	Content   string           `json:"content"`
	Category  UserFactCategory `json:"category"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UserFactInput holds the fields needed to store a user fact.
type UserFactInput struct {
	UserID   string           `json:"user_id"`
	Content  string           `json:"content"`
	Category UserFactCategory `json:"category"`
}
