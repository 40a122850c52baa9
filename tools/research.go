// Legal-research adapter.

package tools

import (
	"context"
	"fmt"

	"github.com/lexkeep/lexkeep/research"
	"github.com/lexkeep/lexkeep/session"
)

// ResearchTools returns the legal-research tool descriptors bound to an
// orchestrator.
func ResearchTools(orch *research.Orchestrator) []Descriptor {
	return []Descriptor{
		{
			Name:        "search_legislation",
			Description: "Search legislation relevant to a legal question.",
			Parameters: []ParamSpec{
				{Name: "query", Type: ParamString, Description: "The legal question or topic", Required: true, NotBlank: true},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				report, err := orch.SearchLegislation(ctx, args.String("query"))
				if err != nil {
					return nil, "", err
				}
				return report, fmt.Sprintf("Found %d legislation result(s)", len(report.Results)), nil
			},
		},
		{
			Name:        "search_case_law",
			Description: "Search decided cases relevant to a legal question.",
			Parameters: []ParamSpec{
				{Name: "query", Type: ParamString, Description: "The legal question or topic", Required: true, NotBlank: true},
				{Name: "category", Type: ParamString, Description: "Legal category to search within", Enum: research.Categories},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				report, err := orch.SearchCaseLaw(ctx, args.String("query"), args.String("category"))
				if err != nil {
					return nil, "", err
				}
				return report, fmt.Sprintf("Found %d case(s) in category %s", len(report.Results), report.Category), nil
			},
		},
		{
			Name:        "classify_question",
			Description: "Classify a legal question into a category.",
			Parameters: []ParamSpec{
				{Name: "question", Type: ParamString, Description: "The question to classify", Required: true, NotBlank: true},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				classification, err := orch.ClassifyQuestion(ctx, args.String("question"))
				if err != nil {
					return nil, "", err
				}
				return classification, fmt.Sprintf("Classified as %s (confidence %.1f)", classification.Category, classification.Confidence), nil
			},
		},
	}
}
