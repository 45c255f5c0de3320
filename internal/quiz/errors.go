package quiz

import (
	"errors"
	"fmt"

	"yardwords/internal/domain"
)

var (
	// ErrInvalidTransition is wrapped by every command rejected by the session state
	ErrInvalidTransition = errors.New("invalid quiz transition")

	ErrAlreadyAnswered = fmt.Errorf("%w: answer already submitted", ErrInvalidTransition)
	ErrNotAnswered     = fmt.Errorf("%w: current question is not answered", ErrInvalidTransition)
	ErrCompleted       = fmt.Errorf("%w: quiz is completed", ErrInvalidTransition)

	// ErrNothingToRetry is returned when a retry is requested without mistakes
	ErrNothingToRetry = errors.New("nothing to retry")

	// ErrInsufficientVocabulary is wrapped by ConfigurationError
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary diversity")
)

// ConfigurationError reports a vocabulary that cannot produce a full option set
type ConfigurationError struct {
	Direction   domain.Direction
	Distractors int
	Required    int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %d distinct distractors for %s, need %d",
		ErrInsufficientVocabulary, e.Distractors, e.Direction, e.Required)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInsufficientVocabulary
}
