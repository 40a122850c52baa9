// Command execution for CLI commands.
//
// Information Hiding:
// - Store and dispatcher setup hidden
// - Assistant wiring hidden
// - Output formatting hidden

package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lexkeep/lexkeep/agent"
	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/config"
	"github.com/lexkeep/lexkeep/internal/jsonx"
	"github.com/lexkeep/lexkeep/llm"
	"github.com/lexkeep/lexkeep/research"
	"github.com/lexkeep/lexkeep/session"
	"github.com/lexkeep/lexkeep/tools"
)

// Options holds CLI execution options.
type Options struct {
	Provider    string
	DBPath      string
	Ephemeral   bool
	TimeoutSecs uint64
	Verbose     bool
}

// stores bundles the two store views of the opened backend.
type stores struct {
	store         backend.Store
	conversations backend.ConversationStore
	close         func()
}

// openStores opens the configured backend: in-memory when ephemeral,
// otherwise SQLite at the configured path.
func openStores(opts Options, settings config.Settings) (stores, error) {
	if opts.Ephemeral {
		mem := backend.NewMemoryStore()
		return stores{store: mem, conversations: mem, close: func() {}}, nil
	}

	path := opts.DBPath
	if path == "" {
		path = settings.DBPath
	}
	sqlite, err := backend.OpenSqlite(path)
	if err != nil {
		return stores{}, fmt.Errorf("failed to open database: %w", err)
	}
	return stores{store: sqlite, conversations: sqlite, close: func() { _ = sqlite.Close() }}, nil
}

// newDispatcher assembles the full catalogue over a store.
func newDispatcher(store backend.Store, settings config.Settings) (*tools.Dispatcher, error) {
	registry, err := tools.NewCatalogue(store, research.NewDefaultOrchestrator())
	if err != nil {
		return nil, err
	}
	dispatcher := tools.NewDispatcher(registry).
		WithConfig(tools.Config{TimeoutSecs: settings.Agent.ToolTimeoutSecs})
	return dispatcher, nil
}

// Chat starts an interactive conversation, persisting history under the
// given conversation id unless the backend is ephemeral.
func Chat(ctx context.Context, conversationID string, opts Options) error {
	settings, err := config.New(opts.Provider)
	if err != nil {
		return err
	}
	if opts.TimeoutSecs != 0 {
		settings.Agent.ToolTimeoutSecs = opts.TimeoutSecs
	}

	provider, err := llm.FromEnv(settings.LLM.Provider, settings.LLM.MaxTokens, float32(settings.LLM.Temperature))
	if err != nil {
		return err
	}

	st, err := openStores(opts, settings)
	if err != nil {
		return err
	}
	defer st.close()

	dispatcher, err := newDispatcher(st.store, settings)
	if err != nil {
		return err
	}

	if conversationID == "" {
		conversationID = "default"
	}

	assistant := agent.New(provider, dispatcher, session.New()).
		WithConfig(agent.Config{MaxIterations: settings.Agent.MaxIterations}).
		WithStore(st.conversations, conversationID).
		Verbose(opts.Verbose)

	if err := assistant.Resume(ctx); err != nil {
		return err
	}
	if history := assistant.History(); len(history) > 0 {
		fmt.Printf("Resuming conversation '%s' (%d messages)\n\n", conversationID, len(history))
	}

	fmt.Printf("Legal assistant (%s %s). Type 'exit' to quit.\n\n", provider.Name(), provider.Model())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		answer, err := assistant.Run(ctx, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Printf("\n%s\n\n", answer)
	}

	if opts.Verbose {
		usage, calls := assistant.Usage()
		fmt.Printf("\n%d provider call(s), %d tokens\n", calls, usage.TotalTokens)
	}
	return scanner.Err()
}

// Call dispatches a single tool directly, without a model in the loop.
// The arguments may be pure JSON or JSON embedded in text.
func Call(ctx context.Context, toolName, rawArgs string, opts Options) error {
	settings, err := config.New(opts.Provider)
	if err != nil {
		return err
	}
	if opts.TimeoutSecs != 0 {
		settings.Agent.ToolTimeoutSecs = opts.TimeoutSecs
	}

	st, err := openStores(opts, settings)
	if err != nil {
		return err
	}
	defer st.close()

	dispatcher, err := newDispatcher(st.store, settings)
	if err != nil {
		return err
	}

	args := json.RawMessage("{}")
	if strings.TrimSpace(rawArgs) != "" {
		args, err = jsonx.Extract(rawArgs)
		if err != nil {
			return err
		}
	}

	result := dispatcher.Dispatch(ctx, toolName, args, session.New())
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))

	if !result.Success {
		return fmt.Errorf("%s: %s", result.Kind, result.Message)
	}
	return nil
}

// ListTools prints the tool catalogue.
func ListTools(verbose bool) error {
	registry, err := tools.NewCatalogue(backend.NewMemoryStore(), research.NewDefaultOrchestrator())
	if err != nil {
		return err
	}

	if verbose {
		fmt.Println(registry.Description())
		return nil
	}
	for _, desc := range registry.Describe() {
		fmt.Println(desc.String())
	}
	return nil
}

// Research runs the combined legislation and case-law search for a
// query and prints both result sets.
func Research(ctx context.Context, query string) error {
	orch := research.NewDefaultOrchestrator()

	report, err := orch.SearchAll(ctx, query)
	if err != nil {
		return err
	}

	fmt.Printf("Keywords: %s\n\n", strings.Join(report.Keywords, ", "))
	printDocuments("Legislation", report.Legislation)
	printDocuments("Case law", report.CaseLaw)
	return nil
}

func printDocuments(heading string, docs []research.Document) {
	fmt.Printf("%s (%d):\n", heading, len(docs))
	for _, doc := range docs {
		fmt.Printf("  %s, %s\n    %s\n", doc.Title, doc.Citation, doc.Summary)
	}
	fmt.Println()
}
