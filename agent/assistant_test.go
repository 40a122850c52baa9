package agent

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/llm"
	"github.com/lexkeep/lexkeep/research"
	"github.com/lexkeep/lexkeep/session"
	"github.com/lexkeep/lexkeep/tools"
)

// scriptedProvider replays a fixed sequence of responses and records
// what it was sent.
type scriptedProvider struct {
	responses []llm.Response
	calls     int
	lastSent  []llm.ChatMessage
	lastTools []llm.ToolDefinition
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-1" }

func (p *scriptedProvider) Chat(ctx context.Context, messages []llm.ChatMessage, defs []llm.ToolDefinition) (llm.Response, error) {
	p.lastSent = messages
	p.lastTools = defs
	if p.calls >= len(p.responses) {
		return llm.Response{Content: "out of script"}, nil
	}
	response := p.responses[p.calls]
	p.calls++
	return response, nil
}

func newAssistantFixture(t *testing.T, provider llm.Provider) (*Assistant, *backend.MemoryStore) {
	t.Helper()
	store := backend.NewMemoryStore()
	registry, err := tools.NewCatalogue(store, research.NewDefaultOrchestrator())
	if err != nil {
		t.Fatalf("Failed to build catalogue: %v", err)
	}
	assistant := New(provider, tools.NewDispatcher(registry), session.New())
	return assistant, store
}

func TestRunPlainAnswer(t *testing.T) {
	provider := &scriptedProvider{responses: []llm.Response{
		{Content: "You should gather your payslips first."},
	}}
	assistant, _ := newAssistantFixture(t, provider)

	answer, err := assistant.Run(context.Background(), "What should I do about unpaid wages?")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if answer != "You should gather your payslips first." {
		t.Errorf("Unexpected answer: %q", answer)
	}
	if provider.calls != 1 {
		t.Errorf("Expected 1 provider call, got %d", provider.calls)
	}
	if len(provider.lastTools) == 0 {
		t.Error("Expected the tool catalogue to be advertised")
	}
	history := assistant.History()
	if len(history) != 3 || history[0].Role != "system" {
		t.Errorf("Unexpected history shape: %d messages", len(history))
	}
}

func TestRunDispatchesToolCalls(t *testing.T) {
	provider := &scriptedProvider{responses: []llm.Response{
		{ToolCalls: []llm.ToolCall{{
			ID:        "call_1",
			Name:      "create_case",
			Arguments: json.RawMessage(`{"title":"Unpaid wages","caseType":"employment","description":"Two months unpaid"}`),
		}}},
		{Content: "I created the case for you."},
	}}
	assistant, store := newAssistantFixture(t, provider)

	answer, err := assistant.Run(context.Background(), "Open a case about my unpaid wages")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if answer != "I created the case for you." {
		t.Errorf("Unexpected answer: %q", answer)
	}

	// The tool must have actually run against the store.
	cases, err := store.GetAllCases(context.Background(), session.New())
	if err != nil {
		t.Fatalf("GetAllCases failed: %v", err)
	}
	if len(cases) != 1 || cases[0].Title != "Unpaid wages" {
		t.Errorf("Expected the created case in the store, got %+v", cases)
	}

	// The second provider call must carry the tool result.
	var sawResult bool
	for _, msg := range provider.lastSent {
		if msg.ToolCallID == "call_1" && strings.Contains(msg.Content, `"success":true`) {
			sawResult = true
		}
	}
	if !sawResult {
		t.Error("Expected the tool result in the second provider call")
	}
}

func TestRunRelaysToolFailure(t *testing.T) {
	provider := &scriptedProvider{responses: []llm.Response{
		{ToolCalls: []llm.ToolCall{{
			ID:        "call_1",
			Name:      "get_case",
			Arguments: json.RawMessage(`{"caseId":42}`),
		}}},
		{Content: "That case does not exist."},
	}}
	assistant, _ := newAssistantFixture(t, provider)

	if _, err := assistant.Run(context.Background(), "Show me case 42"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var sawFailure bool
	for _, msg := range provider.lastSent {
		if msg.ToolCallID == "call_1" && strings.Contains(msg.Content, "not_found") {
			sawFailure = true
		}
	}
	if !sawFailure {
		t.Error("Expected the typed failure relayed to the provider")
	}
}

func TestRunIterationCap(t *testing.T) {
	// A provider that never stops calling tools.
	looping := make([]llm.Response, 5)
	for i := range looping {
		looping[i] = llm.Response{ToolCalls: []llm.ToolCall{{
			ID: "call", Name: "list_cases", Arguments: json.RawMessage(`{}`),
		}}}
	}
	provider := &scriptedProvider{responses: looping}
	assistant, _ := newAssistantFixture(t, provider)
	assistant.WithConfig(Config{MaxIterations: 3})

	_, err := assistant.Run(context.Background(), "loop forever")
	if err == nil {
		t.Fatal("Expected an error at the iteration cap")
	}
	if provider.calls != 3 {
		t.Errorf("Expected 3 provider calls, got %d", provider.calls)
	}
}

func TestRunPersistsAndResumes(t *testing.T) {
	provider := &scriptedProvider{responses: []llm.Response{
		{Content: "Noted."},
	}}
	assistant, store := newAssistantFixture(t, provider)
	assistant.WithStore(store, "conv-1")

	if _, err := assistant.Run(context.Background(), "Remember that I work nights"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	resumed := New(&scriptedProvider{}, assistant.dispatcher, session.New()).WithStore(store, "conv-1")
	if err := resumed.Resume(context.Background()); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	history := resumed.History()
	if len(history) != 3 {
		t.Fatalf("Expected 3 persisted messages, got %d", len(history))
	}
	if history[1].Content != "Remember that I work nights" {
		t.Errorf("Unexpected persisted message: %q", history[1].Content)
	}
}

func TestRunTracksUsage(t *testing.T) {
	provider := &scriptedProvider{responses: []llm.Response{
		{Content: "Done.", Usage: &llm.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}},
	}}
	assistant, _ := newAssistantFixture(t, provider)

	if _, err := assistant.Run(context.Background(), "hi"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	usage, calls := assistant.Usage()
	if calls != 1 || usage.TotalTokens != 15 {
		t.Errorf("Unexpected usage: %+v over %d calls", usage, calls)
	}
}
