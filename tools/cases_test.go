package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/model"
	"github.com/lexkeep/lexkeep/research"
	"github.com/lexkeep/lexkeep/session"
)

func newCatalogueDispatcher(t *testing.T, store backend.Store) *Dispatcher {
	t.Helper()
	registry, err := NewCatalogue(store, research.NewDefaultOrchestrator())
	if err != nil {
		t.Fatalf("Failed to build catalogue: %v", err)
	}
	return NewDispatcher(registry)
}

func TestCreateAndGetCase(t *testing.T) {
	d := newCatalogueDispatcher(t, backend.NewMemoryStore())
	sess := session.New()

	result := d.Dispatch(context.Background(), "create_case",
		json.RawMessage(`{"title":"Deposit dispute","caseType":"housing","description":"Landlord withholding deposit"}`), sess)
	if !result.Success {
		t.Fatalf("create_case failed: %s", result.Message)
	}
	created, ok := result.Payload.(model.Case)
	if !ok {
		t.Fatalf("Expected model.Case payload, got %T", result.Payload)
	}
	if created.Status != model.StatusActive {
		t.Errorf("Expected new case to be active, got %s", created.Status)
	}

	result = d.Dispatch(context.Background(), "get_case", json.RawMessage(`{"caseId":1}`), sess)
	if !result.Success {
		t.Fatalf("get_case failed: %s", result.Message)
	}
	fetched := result.Payload.(model.Case)
	if fetched.Title != "Deposit dispute" {
		t.Errorf("Expected title Deposit dispute, got %s", fetched.Title)
	}
}

func TestGetCaseNotFound(t *testing.T) {
	d := newCatalogueDispatcher(t, backend.NewMemoryStore())

	result := d.Dispatch(context.Background(), "get_case", json.RawMessage(`{"caseId":99}`), session.New())
	if result.Success {
		t.Fatal("Expected failure for missing case")
	}
	if result.Kind != KindNotFound {
		t.Errorf("Expected kind %s, got %s", KindNotFound, result.Kind)
	}
}

func TestListCasesStatusFilter(t *testing.T) {
	store := backend.NewMemoryStore()
	d := newCatalogueDispatcher(t, store)
	sess := session.New()

	for _, title := range []string{"First", "Second"} {
		if _, err := store.CreateCase(context.Background(), sess, model.CaseInput{
			Title: title, CaseType: model.CaseEmployment, Description: "d",
		}); err != nil {
			t.Fatalf("CreateCase failed: %v", err)
		}
	}
	closedCase, err := store.CreateCase(context.Background(), sess, model.CaseInput{
		Title: "Third", CaseType: model.CaseHousing, Description: "d",
	})
	if err != nil {
		t.Fatalf("CreateCase failed: %v", err)
	}
	closed := model.StatusClosed
	if _, err := store.UpdateCase(context.Background(), sess, closedCase.ID, model.CaseUpdate{Status: &closed}); err != nil {
		t.Fatalf("UpdateCase failed: %v", err)
	}

	result := d.Dispatch(context.Background(), "list_cases", json.RawMessage(`{"filterStatus":"closed"}`), sess)
	if !result.Success {
		t.Fatalf("list_cases failed: %s", result.Message)
	}
	cases := result.Payload.([]model.Case)
	if len(cases) != 1 {
		t.Fatalf("Expected 1 closed case, got %d", len(cases))
	}
	if result.Message != "Found 1 case(s)" {
		t.Errorf("Expected message 'Found 1 case(s)', got %q", result.Message)
	}

	result = d.Dispatch(context.Background(), "list_cases", json.RawMessage(`{}`), sess)
	if len(result.Payload.([]model.Case)) != 3 {
		t.Errorf("Expected 3 cases without filter, got %d", len(result.Payload.([]model.Case)))
	}
	if result.Message != "Found 3 case(s)" {
		t.Errorf("Expected message 'Found 3 case(s)', got %q", result.Message)
	}
}

func TestUpdateCase(t *testing.T) {
	store := backend.NewMemoryStore()
	d := newCatalogueDispatcher(t, store)
	sess := session.New()

	if _, err := store.CreateCase(context.Background(), sess, model.CaseInput{
		Title: "Old title", CaseType: model.CaseConsumer, Description: "d",
	}); err != nil {
		t.Fatalf("CreateCase failed: %v", err)
	}

	result := d.Dispatch(context.Background(), "update_case",
		json.RawMessage(`{"caseId":1,"title":"New title","status":"pending"}`), sess)
	if !result.Success {
		t.Fatalf("update_case failed: %s", result.Message)
	}
	updated := result.Payload.(model.Case)
	if updated.Title != "New title" {
		t.Errorf("Expected updated title, got %s", updated.Title)
	}
	if updated.Status != model.StatusPending {
		t.Errorf("Expected pending status, got %s", updated.Status)
	}
	if updated.CaseType != model.CaseConsumer {
		t.Errorf("Case type changed unexpectedly to %s", updated.CaseType)
	}
}

func TestCreateEvidenceUnimplemented(t *testing.T) {
	d := newCatalogueDispatcher(t, backend.NewMemoryStore())

	result := d.Dispatch(context.Background(), "create_evidence",
		json.RawMessage(`{"caseId":1,"title":"Contract","evidenceType":"document"}`), session.New())
	if result.Success {
		t.Fatal("Expected create_evidence to refuse")
	}
	if result.Kind != KindUnimplemented {
		t.Errorf("Expected kind %s, got %s", KindUnimplemented, result.Kind)
	}
}

func TestListEvidence(t *testing.T) {
	store := backend.NewMemoryStore()
	d := newCatalogueDispatcher(t, store)
	sess := session.New()

	kase, err := store.CreateCase(context.Background(), sess, model.CaseInput{
		Title: "Dismissal", CaseType: model.CaseEmployment, Description: "d",
	})
	if err != nil {
		t.Fatalf("CreateCase failed: %v", err)
	}
	if _, err := store.CreateEvidence(context.Background(), sess, model.EvidenceInput{
		CaseID: kase.ID, Title: "Termination letter", EvidenceType: model.EvidenceDocument,
	}); err != nil {
		t.Fatalf("CreateEvidence failed: %v", err)
	}

	result := d.Dispatch(context.Background(), "list_evidence", json.RawMessage(`{"caseId":1}`), sess)
	if !result.Success {
		t.Fatalf("list_evidence failed: %s", result.Message)
	}
	items := result.Payload.([]model.Evidence)
	if len(items) != 1 || items[0].Title != "Termination letter" {
		t.Errorf("Unexpected evidence list: %+v", items)
	}
	if result.Message != "Found 1 evidence item(s)" {
		t.Errorf("Expected count message, got %q", result.Message)
	}
}
