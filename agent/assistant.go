// Conversation loop over native tool calling.
//
// All agent execution goes through this module: the assistant sends the
// conversation plus the tool catalogue to the provider, dispatches every
// tool call the model issues, feeds the results back, and repeats until
// the model answers in plain text or the iteration cap is reached.
//
// Information Hiding:
// - Provider communication hidden
// - Tool dispatch coordination hidden
// - History persistence hidden

package agent

import (
	"context"
	"fmt"

	"github.com/lexkeep/lexkeep/backend"
	"github.com/lexkeep/lexkeep/llm"
	"github.com/lexkeep/lexkeep/session"
	"github.com/lexkeep/lexkeep/tools"
)

// Config holds assistant configuration.
type Config struct {
	// SystemPrompt seeds a fresh conversation. Empty uses the default.
	SystemPrompt string
	// MaxIterations caps provider round trips per user message.
	// Zero means the default of 10.
	MaxIterations int
}

const defaultMaxIterations = 10

const defaultSystemPrompt = `You are a legal case-management assistant. You help the user track their legal cases, evidence, and important facts, and you research legislation and case law relevant to their questions.

Use the available tools to read and update case data instead of guessing. Store facts the user discloses so you can recall them in later conversations. You provide legal information, not legal advice; recommend consulting a qualified solicitor for decisions with legal consequences.`

// maxIterations returns the configured cap, defaulting to 10.
func (c Config) maxIterations() int {
	if c.MaxIterations <= 0 {
		return defaultMaxIterations
	}
	return c.MaxIterations
}

// Assistant drives one conversation. Not safe for concurrent use; run
// one Assistant per conversation.
type Assistant struct {
	provider   llm.Provider
	dispatcher *tools.Dispatcher
	sess       session.Session
	config     Config

	store          backend.ConversationStore
	conversationID string

	history  []llm.ChatMessage
	usage    llm.TokenUsage
	llmCalls int
	verbose  bool
}

// New creates an assistant over a provider, a dispatcher, and the
// conversation's session.
func New(provider llm.Provider, dispatcher *tools.Dispatcher, sess session.Session) *Assistant {
	return &Assistant{
		provider:   provider,
		dispatcher: dispatcher,
		sess:       sess,
	}
}

// WithConfig overrides the assistant configuration.
func (a *Assistant) WithConfig(config Config) *Assistant {
	a.config = config
	return a
}

// WithStore enables history persistence under the given conversation id.
func (a *Assistant) WithStore(store backend.ConversationStore, conversationID string) *Assistant {
	a.store = store
	a.conversationID = conversationID
	return a
}

// Verbose enables progress output on stdout.
func (a *Assistant) Verbose(enabled bool) *Assistant {
	a.verbose = enabled
	return a
}

// Resume loads persisted history for the configured conversation.
func (a *Assistant) Resume(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	history, err := a.store.LoadConversation(ctx, a.conversationID)
	if err != nil {
		return fmt.Errorf("failed to load conversation %s: %w", a.conversationID, err)
	}
	a.history = history
	return nil
}

// History returns a copy of the conversation so far.
func (a *Assistant) History() []llm.ChatMessage {
	history := make([]llm.ChatMessage, len(a.history))
	copy(history, a.history)
	return history
}

// Usage returns cumulative token usage and the number of provider calls.
func (a *Assistant) Usage() (llm.TokenUsage, int) {
	return a.usage, a.llmCalls
}

// Run handles one user message: it loops between the provider and the
// dispatcher until the model produces a plain answer, then persists the
// conversation and returns the answer.
func (a *Assistant) Run(ctx context.Context, userMessage string) (string, error) {
	if len(a.history) == 0 {
		prompt := a.config.SystemPrompt
		if prompt == "" {
			prompt = defaultSystemPrompt
		}
		a.history = append(a.history, llm.SystemMessage(prompt))
	}
	a.history = append(a.history, llm.UserMessage(userMessage))

	definitions := a.toolDefinitions()
	maxIterations := a.config.maxIterations()

	for iteration := 0; iteration < maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("conversation cancelled: %w", err)
		}

		response, err := a.provider.Chat(ctx, a.history, definitions)
		if err != nil {
			return "", fmt.Errorf("provider chat failed: %w", err)
		}
		a.llmCalls++
		if response.Usage != nil {
			a.usage.PromptTokens += response.Usage.PromptTokens
			a.usage.CompletionTokens += response.Usage.CompletionTokens
			a.usage.TotalTokens += response.Usage.TotalTokens
		}

		a.history = append(a.history, llm.ChatMessage{
			Role:      "assistant",
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		if len(response.ToolCalls) == 0 {
			a.persist(ctx)
			return response.Content, nil
		}

		// The model issues calls sequentially within a turn; dispatch
		// them in order and feed every result back.
		for _, call := range response.ToolCalls {
			if a.verbose {
				fmt.Printf("[tool] %s %s\n", call.Name, string(call.Arguments))
			}
			result := a.dispatcher.Dispatch(ctx, call.Name, call.Arguments, a.sess)
			if a.verbose && !result.Success {
				fmt.Printf("[tool] %s failed: %s\n", call.Name, result.Message)
			}
			a.history = append(a.history, llm.ToolResultMessage(call.ID, result.Encode()))
		}
	}

	a.persist(ctx)
	return "", fmt.Errorf("no final answer after %d iterations", maxIterations)
}

// persist saves the conversation when a store is configured. Best effort:
// a failed save must not destroy the in-memory conversation.
func (a *Assistant) persist(ctx context.Context) {
	if a.store == nil {
		return
	}
	if err := a.store.SaveConversation(ctx, a.conversationID, a.history); err != nil && a.verbose {
		fmt.Printf("[warn] failed to save conversation: %v\n", err)
	}
}

// toolDefinitions converts the dispatcher's catalogue into the shape
// function-calling APIs expect.
func (a *Assistant) toolDefinitions() []llm.ToolDefinition {
	descriptors := a.dispatcher.Registry().Describe()
	definitions := make([]llm.ToolDefinition, 0, len(descriptors))
	for _, d := range descriptors {
		definitions = append(definitions, llm.ToolDefinition{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.JSONSchema(),
		})
	}
	return definitions
}
