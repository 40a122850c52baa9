// Case adapter: the agent-facing tools over the case store.

package tools

import (
	"context"
	"fmt"

	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/model"
	"github.com/lexkeep/lexkeep/session"
)

var caseTypeValues = []string{"employment", "housing", "consumer", "family", "debt", "other"}
var caseStatusValues = []string{"active", "closed", "pending"}

// CaseTools returns the case-management tool descriptors bound to a store.
func CaseTools(store backend.Store) []Descriptor {
	return []Descriptor{
		{
			Name:        "create_case",
			Description: "Create a new legal case. New cases start in the active status.",
			Parameters: []ParamSpec{
				{Name: "title", Type: ParamString, Description: "Short title for the case", Required: true, NotBlank: true},
				{Name: "caseType", Type: ParamString, Description: "Kind of legal matter", Required: true, Enum: caseTypeValues},
				{Name: "description", Type: ParamString, Description: "What the case is about", Required: true, NotBlank: true},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				input := model.CaseInput{
					Title: args.String("title"),
					// Enum membership was checked by the schema.
					CaseType:    model.CaseType(args.String("caseType")),
					Description: args.String("description"),
				}
				created, err := store.CreateCase(ctx, sess, input)
				if err != nil {
					return nil, "", err
				}
				return created, fmt.Sprintf("Created case %d: %s", created.ID, created.Title), nil
			},
		},
		{
			Name:        "get_case",
			Description: "Get a single case by its id.",
			Parameters: []ParamSpec{
				{Name: "caseId", Type: ParamInt, Description: "Id of the case", Required: true},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				found, err := store.GetCaseByID(ctx, sess, args.Int("caseId"))
				if err != nil {
					return nil, "", err
				}
				return found, fmt.Sprintf("Case %d: %s (%s)", found.ID, found.Title, found.Status), nil
			},
		},
		{
			Name:        "list_cases",
			Description: "List cases, optionally filtered by status.",
			Parameters: []ParamSpec{
				{Name: "filterStatus", Type: ParamString, Description: "Status to filter by", Enum: []string{"all", "active", "closed", "pending"}, Default: "all"},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				all, err := store.GetAllCases(ctx, sess)
				if err != nil {
					return nil, "", err
				}
				filtered := filterCasesByStatus(all, args.String("filterStatus"))
				return filtered, fmt.Sprintf("Found %d case(s)", len(filtered)), nil
			},
		},
		{
			Name:        "update_case",
			Description: "Update a case. Only the supplied fields change.",
			Parameters: []ParamSpec{
				{Name: "caseId", Type: ParamInt, Description: "Id of the case", Required: true},
				{Name: "title", Type: ParamString, Description: "New title", NotBlank: true},
				{Name: "caseType", Type: ParamString, Description: "New case type", Enum: caseTypeValues},
				{Name: "description", Type: ParamString, Description: "New description"},
				{Name: "status", Type: ParamString, Description: "New status", Enum: caseStatusValues},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				var update model.CaseUpdate
				if args.Has("title") {
					title := args.String("title")
					update.Title = &title
				}
				if args.Has("caseType") {
					caseType := model.CaseType(args.String("caseType"))
					update.CaseType = &caseType
				}
				if args.Has("description") {
					description := args.String("description")
					update.Description = &description
				}
				if args.Has("status") {
					status := model.CaseStatus(args.String("status"))
					update.Status = &status
				}
				updated, err := store.UpdateCase(ctx, sess, args.Int("caseId"), update)
				if err != nil {
					return nil, "", err
				}
				return updated, fmt.Sprintf("Updated case %d", updated.ID), nil
			},
		},
	}
}

// filterCasesByStatus applies the status filter over the full case list.
// Filtering stays in-process; the store contract has no filter parameter.
func filterCasesByStatus(cases []model.Case, status string) []model.Case {
	if status == "" || status == "all" {
		return cases
	}
	filtered := []model.Case{}
	for _, c := range cases {
		if string(c.Status) == status {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
