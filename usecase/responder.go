package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/verdora/voicecart-server/domain/entities"
	"github.com/verdora/voicecart-server/domain/repositories"
)

// Recommended products are capped at this many entries per reply.
const maxRecommendations = 3

const personaDirective = `You are a friendly and knowledgeable garden shop salesperson helping a customer over voice.
Ground every answer in the product catalog below and never invent products that are not listed.
Keep replies concise, two to four sentences, in a warm conversational tone suitable to be read aloud.
Adjust your phrasing to the customer's apparent age and experience level.
Ask a clarifying question when the customer's need is ambiguous.
If you cannot help or the customer asks for something outside the catalog, offer to connect them with a human team member.`

// Responder builds grounded prompts, queries the conversation model, and
// attributes catalog products referenced in the reply.
type Responder struct {
	model  repositories.ConversationModel
	logger *zap.Logger
}

// NewResponder creates a new responder service
func NewResponder(model repositories.ConversationModel, logger *zap.Logger) *Responder {
	return &Responder{
		model:  model,
		logger: logger,
	}
}

// Respond sends the grounded conversation to the model and returns its reply
// together with up to three referenced products.
func (r *Responder) Respond(
	ctx context.Context,
	userMessage string,
	history []repositories.ChatMessage,
	availableProducts []entities.Product,
) (entities.AIResponse, error) {
	systemPrompt, err := BuildSystemPrompt(availableProducts)
	if err != nil {
		return entities.AIResponse{}, fmt.Errorf("failed to build system prompt: %w", err)
	}

	reply, err := r.model.Reply(ctx, systemPrompt, history, userMessage)
	if err != nil {
		return entities.AIResponse{}, fmt.Errorf("conversation model failed: %w", err)
	}

	recommended := RecommendProducts(reply, availableProducts)

	r.logger.Info("Conversation reply generated",
		zap.Int("historyLength", len(history)),
		zap.Int("recommendedCount", len(recommended)))

	return entities.AIResponse{
		Text:                reply,
		RecommendedProducts: recommended,
	}, nil
}

// BuildSystemPrompt embeds the serialized product list into the fixed persona
// directive. The full list is embedded without truncation or token budgeting.
func BuildSystemPrompt(products []entities.Product) (string, error) {
	serialized, err := json.Marshal(products)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(personaDirective)
	sb.WriteString("\n\nAvailable products:\n")
	sb.Write(serialized)
	return sb.String(), nil
}

// RecommendProducts retains products whose title appears as a
// case-insensitive substring of the reply text. The result preserves the
// input order and is capped at maxRecommendations. This is substring
// attribution, not semantic matching: paraphrased mentions are missed and
// coincidental title matches are included.
func RecommendProducts(reply string, products []entities.Product) []entities.Product {
	lowerReply := strings.ToLower(reply)

	recommended := make([]entities.Product, 0, maxRecommendations)
	for _, product := range products {
		if len(recommended) == maxRecommendations {
			break
		}
		if strings.Contains(lowerReply, strings.ToLower(product.Title)) {
			recommended = append(recommended, product)
		}
	}
	return recommended
}
