package api

import (
	"github.com/verdora/voicecart-server/domain/entities"
	"github.com/verdora/voicecart-server/domain/repositories"
)

// TranscribeResponse carries the provider's best transcript
type TranscribeResponse struct {
	Transcript string `json:"transcript"`
}

// SearchProductsRequest represents a structured catalog search. Query is
// accepted but not applied to filtering.
type SearchProductsRequest struct {
	Query    string   `json:"query"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func (r SearchProductsRequest) toQuery() entities.ProductQuery {
	return entities.ProductQuery{
		Query:    r.Query,
		Category: r.Category,
		Tags:     r.Tags,
	}
}

// SearchProductsResponse carries the filtered catalog records
type SearchProductsResponse struct {
	Products []entities.Product `json:"products"`
}

// GetResponseRequest represents a conversation turn from the widget
type GetResponseRequest struct {
	UserMessage         string                     `json:"userMessage"`
	ConversationHistory []repositories.ChatMessage `json:"conversationHistory"`
	AvailableProducts   []entities.Product         `json:"availableProducts"`
}

// SpeakRequest represents a speech synthesis request
type SpeakRequest struct {
	Text string `json:"text"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
