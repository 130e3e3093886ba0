package stt

import (
	"context"

	"go.uber.org/zap"

	"github.com/verdora/voicecart-server/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) repositories.SpeechToText {
	return &MockSpeechToText{
		logger: logger,
	}
}

// Transcribe returns a canned transcript sized to the payload
func (m *MockSpeechToText) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	m.logger.Info("Processing mock audio payload",
		zap.Int("size", len(audio)),
		zap.String("mimeType", mimeType))

	switch {
	case len(audio) > 10000:
		return "Do you have an organic potting soil that drains well for indoor plants?", nil
	case len(audio) > 1000:
		return "What potting soil do you recommend?", nil
	default:
		return "Hello", nil
	}
}
