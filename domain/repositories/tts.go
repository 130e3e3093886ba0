package repositories

import "context"

type TextToSpeech interface {
	// Synthesize converts text to speech and returns the complete audio
	// buffer. The payload is buffered in full before returning.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
