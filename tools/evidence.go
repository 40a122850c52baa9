// Evidence adapter.

package tools

import (
	"context"
	"fmt"

	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/session"
)

// EvidenceTools returns the evidence tool descriptors bound to a store.
//
// create_evidence is registered but deliberately refuses to run: the
// store gateway covers evidence reads for the agent while creation stays
// with the owning UI, where file uploads are handled. The tool stays in
// the catalogue so the model gets a clear unimplemented failure instead
// of an unknown-tool error.
func EvidenceTools(store backend.Store) []Descriptor {
	return []Descriptor{
		{
			Name:        "create_evidence",
			Description: "Attach a piece of evidence to a case.",
			Parameters: []ParamSpec{
				{Name: "caseId", Type: ParamInt, Description: "Id of the case", Required: true},
				{Name: "title", Type: ParamString, Description: "Short title for the evidence", Required: true, NotBlank: true},
				{Name: "evidenceType", Type: ParamString, Description: "Kind of evidence", Required: true, Enum: []string{"document", "photo", "email", "recording", "note"}},
				{Name: "content", Type: ParamString, Description: "Text content of the evidence"},
				{Name: "filePath", Type: ParamString, Description: "Path to an attached file"},
				{Name: "obtainedDate", Type: ParamString, Description: "When the evidence was obtained"},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				return nil, "", Errorf(KindUnimplemented, "create_evidence is not yet implemented; add evidence through the case view")
			},
		},
		{
			Name:        "list_evidence",
			Description: "List all evidence attached to a case.",
			Parameters: []ParamSpec{
				{Name: "caseId", Type: ParamInt, Description: "Id of the case", Required: true},
			},
			Handler: func(ctx context.Context, sess session.Session, args Args) (interface{}, string, error) {
				items, err := store.GetEvidenceByCaseID(ctx, sess, args.Int("caseId"))
				if err != nil {
					return nil, "", err
				}
				return items, fmt.Sprintf("Found %d evidence item(s)", len(items)), nil
			},
		},
	}
}
