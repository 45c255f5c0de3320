package tts

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no speech backend can serve a request
var ErrUnavailable = errors.New("speech synthesis unavailable")

// Speaker turns text into audio
type Speaker interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// Nop is a Speaker without a backend
type Nop struct{}

// Synthesize always fails with ErrUnavailable
func (Nop) Synthesize(context.Context, string, string) ([]byte, error) {
	return nil, ErrUnavailable
}
