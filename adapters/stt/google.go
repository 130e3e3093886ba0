package stt

import (
	"context"
	"fmt"
	"os"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/verdora/voicecart-server/domain/repositories"
)

// Recognition settings are fixed; the widget always uploads browser-recorded
// audio declared under one generic MIME type, so the actual encoding is not
// inspected.
const (
	defaultEncoding   = speechpb.RecognitionConfig_WEBM_OPUS
	defaultSampleRate = 48000
	defaultLanguage   = "en-US"
)

// GoogleSpeechConfig holds configuration for the GoogleSpeechToText adapter
// Optional fields:
// - APIKey: Google Cloud API key; when empty, application default credentials are used
type GoogleSpeechConfig struct {
	APIKey string
}

// GoogleSpeechToText implements SpeechToText using the Google Cloud Speech
// API. The client is created once at startup and reused across requests.
type GoogleSpeechToText struct {
	client *speech.Client
	logger *zap.Logger
}

// Ensure GoogleSpeechToText implements the SpeechToText interface
var _ repositories.SpeechToText = (*GoogleSpeechToText)(nil)

// NewGoogleSpeechToText creates a new Google speech-to-text adapter
func NewGoogleSpeechToText(ctx context.Context, config GoogleSpeechConfig, logger *zap.Logger) (*GoogleSpeechToText, error) {
	var opts []option.ClientOption
	if config.APIKey != "" {
		opts = append(opts, option.WithAPIKey(config.APIKey))
	}

	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleSpeechToText{
		client: client,
		logger: logger,
	}, nil
}

// NewGoogleSpeechConfigFromEnv creates a new GoogleSpeechConfig from environment variables
func NewGoogleSpeechConfigFromEnv() GoogleSpeechConfig {
	return GoogleSpeechConfig{
		APIKey: os.Getenv("GOOGLE_SPEECH_API_KEY"),
	}
}

// Transcribe forwards the buffered audio payload to the provider and returns
// the best transcript of the first recognition result. No retry is attempted
// and the payload is not validated before forwarding.
func (g *GoogleSpeechToText) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	g.logger.Info("Transcribing audio",
		zap.Int("bytes", len(audio)),
		zap.String("mimeType", mimeType))

	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        defaultEncoding,
			SampleRateHertz: defaultSampleRate,
			LanguageCode:    defaultLanguage,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognize request failed: %w", err)
	}

	if len(resp.Results) == 0 || len(resp.Results[0].Alternatives) == 0 {
		return "", fmt.Errorf("no transcript in recognition response")
	}

	transcript := resp.Results[0].Alternatives[0].Transcript
	g.logger.Info("Transcription completed", zap.String("transcript", transcript))
	return transcript, nil
}

// Close releases the underlying client connection.
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}
