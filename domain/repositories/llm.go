package repositories

import "context"

// ConversationModel abstracts any chat/LLM provider
type ConversationModel interface {
	// Reply sends [system instruction] + history + [current user message] to
	// the model and returns its free-text answer. History is forwarded as-is,
	// unvalidated and untruncated.
	Reply(ctx context.Context, systemPrompt string, history []ChatMessage, userMessage string) (string, error)
}

// ChatMessage represents a single message in a conversation
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Role defines the type of message sender
type Role string

const (
	UserRole      Role = "user"
	AssistantRole Role = "assistant"
	SystemRole    Role = "system"
)
