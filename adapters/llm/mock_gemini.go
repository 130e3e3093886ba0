package llm

import (
	"context"

	"github.com/verdora/voicecart-server/domain/repositories"
)

// MockConversationModel is a canned implementation for local development
type MockConversationModel struct {
	Response string
	Err      error
}

// NewMockConversationModel creates a mock model returning a fixed reply
func NewMockConversationModel(response string) *MockConversationModel {
	return &MockConversationModel{Response: response}
}

// Reply returns the configured response or error
func (m *MockConversationModel) Reply(ctx context.Context, systemPrompt string, history []repositories.ChatMessage, userMessage string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
