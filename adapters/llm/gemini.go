package llm

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/verdora/voicecart-server/domain/repositories"
)

// Sampling is fixed and not caller-configurable.
const (
	defaultModel           = "gemini-2.0-flash"
	defaultTemperature     = 0.7
	defaultMaxOutputTokens = 300
)

// GeminiConfig holds configuration for the GeminiModel adapter
// Required fields:
// - APIKey: Google AI API key
// Optional fields with defaults:
// - Model: the model identifier (default: "gemini-2.0-flash")
type GeminiConfig struct {
	APIKey string
	Model  string
}

// GeminiModel implements the ConversationModel interface using Google's Gemini API
type GeminiModel struct {
	client *genai.Client
	logger *zap.Logger
	model  string
}

// Ensure GeminiModel implements the ConversationModel interface
var _ repositories.ConversationModel = (*GeminiModel)(nil)

// NewGeminiModel creates a new Gemini conversation model instance
func NewGeminiModel(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiModel, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Google AI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultModel
		logger.Info("Using default model", zap.String("model", model))
	}

	return &GeminiModel{
		client: client,
		logger: logger,
		model:  model,
	}, nil
}

// NewGeminiConfigFromEnv creates a new GeminiConfig from environment variables
func NewGeminiConfigFromEnv() GeminiConfig {
	return GeminiConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	}
}

// toGenaiRole maps a conversation role onto the provider's role type.
// Assistant turns replay as the model; everything else replays as the user.
func toGenaiRole(role repositories.Role) genai.Role {
	if role == repositories.AssistantRole {
		return genai.RoleModel
	}
	return genai.RoleUser
}

// Reply sends the system instruction, the history as-is, and the current user
// message to the model and returns its free-text answer. History is neither
// validated nor truncated; an oversized conversation fails upstream.
func (g *GeminiModel) Reply(ctx context.Context, systemPrompt string, history []repositories.ChatMessage, userMessage string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, message := range history {
		contents = append(contents, genai.NewContentFromText(message.Content, toGenaiRole(message.Role)))
	}
	contents = append(contents, genai.NewContentFromText(userMessage, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(float32(defaultTemperature)),
		MaxOutputTokens:   int32(defaultMaxOutputTokens),
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	var responseText string
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			responseText += part.Text
		}
	}
	if responseText == "" {
		return "", fmt.Errorf("empty response from model")
	}

	g.logger.Info("Generated reply",
		zap.Int("historyLength", len(history)),
		zap.Int("replyLength", len(responseText)))

	return responseText, nil
}
