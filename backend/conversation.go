// Conversation history persistence.
//
// History is keyed by conversation id so the assistant can recall prior
// turns across sessions. Implementations can use different engines behind
// the same interface.

package backend

import (
	"context"

	"github.com/lexkeep/lexkeep/llm"
)

// ConversationStore persists chat history per conversation.
type ConversationStore interface {
	// SaveConversation replaces the stored history for a conversation.
	SaveConversation(ctx context.Context, conversationID string, history []llm.ChatMessage) error

	// LoadConversation loads history for a conversation.
	// Returns an empty slice (not nil) if the conversation doesn't exist.
	LoadConversation(ctx context.Context, conversationID string) ([]llm.ChatMessage, error)

	// DeleteConversation deletes a conversation and its history.
	DeleteConversation(ctx context.Context, conversationID string) error

	// ListConversations lists all conversation ids.
	ListConversations(ctx context.Context) ([]string, error)
}
