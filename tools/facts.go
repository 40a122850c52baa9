// Fact-memory adapter: case-scoped facts the agent stores during a
// conversation and recalls in later turns or later sessions.

package tools

import (
	"context"
	"fmt"

	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/model"
	"github.com/lexkeep/lexkeep/session"
)

// FactTools returns the fact-memory tool descriptors bound to a store.
func FactTools(store backend.Store) []Descriptor {
	return []Descriptor{
		{
			Name:        "store_case_fact",
			Description: "Remember a fact about a case for later conversations.",
			Parameters: []ParamSpec{
				{Name: "caseId", Type: ParamInt, Description: "Id of the case the fact belongs to", Required: true},
				{Name: "factContent", Type: ParamString, Description: "The fact to remember", Required: true, NotBlank: true, MaxLen: model.MaxFactContentLen},
				{Name: "factCategory", Type: ParamString, Description: "What kind of fact this is", Required: true, Enum: []string{"timeline", "evidence", "witness", "location", "communication", "other"}},
				{Name: "importance", Type: ParamString, Description: "How much weight the fact carries", Enum: []string{"low", "medium", "high", "critical"}, Default: "medium"},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				input := model.CaseFactInput{
					CaseID:     args.Int("caseId"),
					Content:    args.String("factContent"),
					Category:   model.FactCategory(args.String("factCategory")),
					Importance: model.Importance(args.String("importance")),
				}
				fact, err := store.CreateCaseFact(ctx, sess, input)
				if err != nil {
					return nil, "", err
				}
				return fact, fmt.Sprintf("Stored %s fact for case %d", fact.Category, fact.CaseID), nil
			},
		},
		{
			Name:        "get_case_facts",
			Description: "Recall facts stored for a case, optionally filtered by category.",
			Parameters: []ParamSpec{
				{Name: "caseId", Type: ParamInt, Description: "Id of the case", Required: true},
				{Name: "factCategory", Type: ParamString, Description: "Only return facts of this category"},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				facts, err := store.GetCaseFacts(ctx, sess, args.Int("caseId"))
				if err != nil {
					return nil, "", err
				}
				// Category filtering stays in-process, same as list_cases.
				if category := args.String("factCategory"); category != "" {
					filtered := []model.CaseFact{}
					for _, f := range facts {
						if string(f.Category) == category {
							filtered = append(filtered, f)
						}
					}
					facts = filtered
				}
				return facts, fmt.Sprintf("Found %d fact(s) for this case", len(facts)), nil
			},
		},
	}
}
