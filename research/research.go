// Package research composes keyword extraction, question classification,
// and corpus search into the legal-research operations the assistant
// exposes. The three underlying services are pluggable; this package
// ships local defaults and the orchestrator that sequences them.
package research

import (
	"context"
	"fmt"
	"strings"
)

// Legal question categories, as produced by classification and accepted
// by case-law search.
const (
	CategoryEmployment     = "employment"
	CategoryDiscrimination = "discrimination"
	CategoryHousing        = "housing"
	CategoryFamily         = "family"
	CategoryConsumer       = "consumer"
	CategoryCriminal       = "criminal"
	CategoryCivil          = "civil"
	CategoryGeneral        = "general"
)

// Categories lists every legal question category.
var Categories = []string{
	CategoryEmployment,
	CategoryDiscrimination,
	CategoryHousing,
	CategoryFamily,
	CategoryConsumer,
	CategoryCriminal,
	CategoryCivil,
	CategoryGeneral,
}

// ParseCategory validates a category string.
func ParseCategory(s string) (string, error) {
	s = strings.ToLower(s)
	for _, c := range Categories {
		if c == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown legal category: %s", s)
}

// Keywords is the result of keyword extraction over a raw query.
type Keywords struct {
	All []string `json:"all"`
}

// Document is one corpus search result: a piece of legislation or a
// decided case.
type Document struct {
	Title    string `json:"title"`
	Citation string `json:"citation"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Source   string `json:"source"` // "legislation" or "case_law"
	Matches  int    `json:"matches,omitempty"`
}

// KeywordExtractor reduces a raw query to its searchable keywords.
type KeywordExtractor interface {
	ExtractKeywords(ctx context.Context, text string) (Keywords, error)
}

// Classifier assigns a legal question to one category, falling back to
// "general" when nothing fits.
type Classifier interface {
	ClassifyQuestion(ctx context.Context, text string) (string, error)
}

// LegislationSearcher searches the legislation corpus by keywords.
type LegislationSearcher interface {
	SearchLegislation(ctx context.Context, keywords []string) ([]Document, error)
}

// CaseLawSearcher searches the case-law corpus by keywords within a
// category.
type CaseLawSearcher interface {
	SearchCaseLaw(ctx context.Context, keywords []string, category string) ([]Document, error)
}
