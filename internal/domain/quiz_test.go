package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Mode
		expectedError bool
	}{
		{name: "native to target", input: "ru-en", expected: ModeNativeToTarget},
		{name: "target to native", input: "en-ru", expected: ModeTargetToNative},
		{name: "mixed", input: "mixed", expected: ModeMixed},
		{name: "unknown", input: "de-en", expectedError: true},
		{name: "empty", input: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseMode(tt.input)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrUnknownMode)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, mode)
			}
		})
	}
}

func TestMode_Fixed(t *testing.T) {
	d, ok := ModeNativeToTarget.Fixed()
	assert.True(t, ok)
	assert.Equal(t, NativeToTarget, d)

	d, ok = ModeTargetToNative.Fixed()
	assert.True(t, ok)
	assert.Equal(t, TargetToNative, d)

	_, ok = ModeMixed.Fixed()
	assert.False(t, ok)
}

func TestQuestion_PromptAndAnswer(t *testing.T) {
	entry := Entry{Word: "fence", Phonetic: "/fens/", Translation: "забор"}

	tests := []struct {
		name           string
		direction      Direction
		expectedPrompt string
		expectedAnswer string
		expectedHint   string
	}{
		{
			name:           "native to target",
			direction:      NativeToTarget,
			expectedPrompt: "забор",
			expectedAnswer: "fence",
			expectedHint:   "",
		},
		{
			name:           "target to native",
			direction:      TargetToNative,
			expectedPrompt: "fence",
			expectedAnswer: "забор",
			expectedHint:   "/fens/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{Entry: entry, Direction: tt.direction}

			assert.Equal(t, tt.expectedPrompt, q.Prompt())
			assert.Equal(t, tt.expectedAnswer, q.Answer())
			assert.Equal(t, tt.expectedHint, q.Hint())
			assert.Equal(t, tt.expectedAnswer, tt.direction.AnswerField(entry))
		})
	}
}
