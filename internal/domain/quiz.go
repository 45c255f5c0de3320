package domain

import "errors"

// ErrUnknownMode is returned when a quiz mode cannot be parsed
var ErrUnknownMode = errors.New("unknown quiz mode")

// Direction decides which field of an entry is the prompt and which is the answer
type Direction int

const (
	// NativeToTarget shows the translation and expects the target word
	NativeToTarget Direction = iota
	// TargetToNative shows the target word and expects the translation
	TargetToNative
)

// String returns the mode key of a fixed direction
func (d Direction) String() string {
	if d == TargetToNative {
		return string(ModeTargetToNative)
	}
	return string(ModeNativeToTarget)
}

// Mode is the answer-direction policy of a quiz
type Mode string

const (
	ModeNativeToTarget Mode = "ru-en"
	ModeTargetToNative Mode = "en-ru"
	ModeMixed          Mode = "mixed"
)

// ParseMode validates a mode key coming from the view
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeNativeToTarget, ModeTargetToNative, ModeMixed:
		return m, nil
	}
	return "", ErrUnknownMode
}

// Fixed reports the direction of a non-mixed mode
func (m Mode) Fixed() (Direction, bool) {
	switch m {
	case ModeNativeToTarget:
		return NativeToTarget, true
	case ModeTargetToNative:
		return TargetToNative, true
	}
	return 0, false
}

// DisplayName returns the user-facing mode title
func (m Mode) DisplayName() string {
	switch m {
	case ModeNativeToTarget:
		return "Русский → Английский"
	case ModeTargetToNative:
		return "Английский → Русский"
	case ModeMixed:
		return "Смешанный режим"
	}
	return string(m)
}

// Question is a single quiz item
type Question struct {
	Entry     Entry
	Direction Direction
}

// Prompt returns the text shown to the user
func (q Question) Prompt() string {
	if q.Direction == NativeToTarget {
		return q.Entry.Translation
	}
	return q.Entry.Word
}

// Answer returns the expected answer
func (q Question) Answer() string {
	if q.Direction == NativeToTarget {
		return q.Entry.Word
	}
	return q.Entry.Translation
}

// Hint returns the phonetic hint when the prompt is the target word.
// Showing it for the other direction would give the answer away.
func (q Question) Hint() string {
	if q.Direction == TargetToNative {
		return q.Entry.Phonetic
	}
	return ""
}

// AnswerField picks the answer-side field of any entry for this direction
func (d Direction) AnswerField(e Entry) string {
	if d == NativeToTarget {
		return e.Word
	}
	return e.Translation
}
