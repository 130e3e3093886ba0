package repositories

import "context"

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// Transcribe converts a fully buffered audio payload to text, returning
	// the provider's best transcript.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
