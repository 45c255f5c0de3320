package service

import (
	"testing"
	"time"

	"yardwords/internal/domain"
	"yardwords/internal/quiz"
	"yardwords/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(entries []domain.Entry) *QuizService {
	return NewQuizService(
		testutil.NewTestStore(entries),
		testutil.NewTestGenerator(1),
		testutil.NewTestLogger(),
	)
}

func correctIndex(t *testing.T, card *QuestionCard, entries []domain.Entry) int {
	t.Helper()
	answer := ""
	for _, e := range entries {
		if e.Translation == card.Prompt {
			answer = e.Word
		}
		if e.Word == card.Prompt {
			answer = e.Translation
		}
	}
	for i, opt := range card.Options {
		if opt == answer {
			return i
		}
	}
	t.Fatalf("answer for %q not among options %v", card.Prompt, card.Options)
	return -1
}

func wrongIndex(t *testing.T, card *QuestionCard, entries []domain.Entry) int {
	t.Helper()
	return (correctIndex(t, card, entries) + 1) % len(card.Options)
}

func TestQuizService_AllCorrect(t *testing.T) {
	entries := testutil.NewTestEntries()
	service := newTestQuizService(entries)

	step, err := service.Start(1, domain.ModeNativeToTarget)
	require.NoError(t, err)

	for step.Summary == nil {
		require.NotNil(t, step.Question)
		assert.Len(t, step.Question.Options, quiz.OptionCount)
		assert.Empty(t, step.Question.Hint)

		feedback, err := service.Answer(1, correctIndex(t, step.Question, entries))
		require.NoError(t, err)
		assert.True(t, feedback.Outcome.Correct)

		step, err = service.Next(1)
		require.NoError(t, err)
	}

	assert.Equal(t, quiz.Summary{Score: 4, Total: 4, Percentage: 100}, *step.Summary)
	assert.Equal(t, 0, step.Mistakes)
}

func TestQuizService_FirstWrongThenRetry(t *testing.T) {
	entries := testutil.NewTestEntries()
	service := newTestQuizService(entries)

	step, err := service.Start(1, domain.ModeNativeToTarget)
	require.NoError(t, err)
	missedPrompt := step.Question.Prompt

	for i := 0; step.Summary == nil; i++ {
		index := correctIndex(t, step.Question, entries)
		if i == 0 {
			index = wrongIndex(t, step.Question, entries)
		}
		feedback, err := service.Answer(1, index)
		require.NoError(t, err)
		assert.Equal(t, i != 0, feedback.Outcome.Correct)

		step, err = service.Next(1)
		require.NoError(t, err)
	}

	assert.Equal(t, quiz.Summary{Score: 3, Total: 4, Percentage: 75}, *step.Summary)
	assert.Equal(t, 1, step.Mistakes)

	retry, err := service.RetryMistakes(1)
	require.NoError(t, err)
	require.NotNil(t, retry.Question)
	assert.Equal(t, missedPrompt, retry.Question.Prompt)
	assert.Equal(t, quiz.Progress{Done: 0, Total: 1}, retry.Question.Progress)
	assert.Equal(t, domain.ModeNativeToTarget, retry.Mode)
}

func TestQuizService_RetryWithoutMistakesKeepsSession(t *testing.T) {
	entries := testutil.NewTestEntries()
	service := newTestQuizService(entries)

	step, err := service.Start(1, domain.ModeTargetToNative)
	require.NoError(t, err)
	_, err = service.Answer(1, correctIndex(t, step.Question, entries))
	require.NoError(t, err)

	_, err = service.RetryMistakes(1)
	assert.ErrorIs(t, err, quiz.ErrNothingToRetry)

	current, err := service.Current(1)
	require.NoError(t, err)
	assert.Equal(t, step.Question.Prompt, current.Question.Prompt)
	assert.Equal(t, 1, current.Question.Score)
	assert.Equal(t, quiz.Progress{Done: 1, Total: 4}, current.Question.Progress)
}

func TestQuizService_DoubleAnswerRejected(t *testing.T) {
	entries := testutil.NewTestEntries()
	service := newTestQuizService(entries)

	step, err := service.Start(1, domain.ModeNativeToTarget)
	require.NoError(t, err)

	_, err = service.Answer(1, wrongIndex(t, step.Question, entries))
	require.NoError(t, err)

	_, err = service.Answer(1, correctIndex(t, step.Question, entries))
	assert.ErrorIs(t, err, quiz.ErrAlreadyAnswered)

	current, err := service.Current(1)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Question.Score)
	assert.Equal(t, 1, current.Mistakes)
}

func TestQuizService_NextBeforeAnswerRejected(t *testing.T) {
	service := newTestQuizService(testutil.NewTestEntries())

	_, err := service.Start(1, domain.ModeMixed)
	require.NoError(t, err)

	_, err = service.Next(1)
	assert.ErrorIs(t, err, quiz.ErrNotAnswered)
}

func TestQuizService_SubmitAnswerByValue(t *testing.T) {
	entries := testutil.NewTestEntries()
	service := newTestQuizService(entries)

	step, err := service.Start(1, domain.ModeTargetToNative)
	require.NoError(t, err)
	assert.NotEmpty(t, step.Question.Hint)

	answer := step.Question.Options[correctIndex(t, step.Question, entries)]
	feedback, err := service.SubmitAnswer(1, answer)
	require.NoError(t, err)

	assert.True(t, feedback.Outcome.Correct)
	assert.Equal(t, answer, feedback.Outcome.CorrectAnswer)
	assert.Equal(t, 1, feedback.Card.Score)
	assert.Equal(t, step.Question.Options, feedback.Card.Options)
}

func TestQuizService_InvalidOption(t *testing.T) {
	service := newTestQuizService(testutil.NewTestEntries())

	_, err := service.Start(1, domain.ModeNativeToTarget)
	require.NoError(t, err)

	_, err = service.Answer(1, 4)
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = service.Answer(1, -1)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestQuizService_NoActiveQuiz(t *testing.T) {
	service := newTestQuizService(testutil.NewTestEntries())

	_, err := service.Answer(1, 0)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = service.SubmitAnswer(1, "fence")
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = service.Next(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = service.RetryMistakes(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = service.Restart(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)

	_, err = service.Current(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_EmptyVocabularyCompletesImmediately(t *testing.T) {
	service := newTestQuizService(nil)

	step, err := service.Start(1, domain.ModeNativeToTarget)
	require.NoError(t, err)

	assert.Nil(t, step.Question)
	require.NotNil(t, step.Summary)
	assert.Equal(t, quiz.Summary{Score: 0, Total: 0, Percentage: 0}, *step.Summary)

	_, err = service.Answer(1, 0)
	assert.ErrorIs(t, err, quiz.ErrCompleted)

	_, err = service.Next(1)
	assert.ErrorIs(t, err, quiz.ErrCompleted)
}

func TestQuizService_SmallVocabularyIsConfigurationError(t *testing.T) {
	service := newTestQuizService(testutil.NewTestEntries()[:3])

	_, err := service.Start(1, domain.ModeNativeToTarget)

	var cfgErr *quiz.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)

	_, err = service.Current(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_RestartKeepsMode(t *testing.T) {
	entries := testutil.NewTestEntries()
	service := newTestQuizService(entries)

	step, err := service.Start(1, domain.ModeTargetToNative)
	require.NoError(t, err)
	_, err = service.Answer(1, wrongIndex(t, step.Question, entries))
	require.NoError(t, err)

	step, err = service.Restart(1)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeTargetToNative, step.Mode)
	assert.Equal(t, 0, step.Mistakes)
	assert.Equal(t, 0, step.Question.Score)
	assert.Equal(t, quiz.Progress{Done: 0, Total: 4}, step.Question.Progress)
}

func TestQuizService_SessionsArePerUser(t *testing.T) {
	entries := testutil.NewTestEntries()
	service := newTestQuizService(entries)

	step, err := service.Start(1, domain.ModeNativeToTarget)
	require.NoError(t, err)
	_, err = service.Start(2, domain.ModeNativeToTarget)
	require.NoError(t, err)

	_, err = service.Answer(1, correctIndex(t, step.Question, entries))
	require.NoError(t, err)

	other, err := service.Current(2)
	require.NoError(t, err)
	assert.Equal(t, 0, other.Question.Score)
	assert.Equal(t, 0, other.Question.Progress.Done)
}

func TestQuizService_Stop(t *testing.T) {
	service := newTestQuizService(testutil.NewTestEntries())

	_, err := service.Start(1, domain.ModeMixed)
	require.NoError(t, err)

	service.Stop(1)

	_, err = service.Current(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
}

func TestQuizService_CleanupIdle(t *testing.T) {
	service := newTestQuizService(testutil.NewTestEntries())
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	_, err := service.Start(1, domain.ModeMixed)
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = service.Start(2, domain.ModeMixed)
	require.NoError(t, err)

	removed := service.CleanupIdle(time.Hour)
	assert.Equal(t, 1, removed)

	_, err = service.Current(1)
	assert.ErrorIs(t, err, ErrNoActiveQuiz)
	_, err = service.Current(2)
	assert.NoError(t, err)
}

func TestQuizService_CurrentCarriesOutcome(t *testing.T) {
	entries := testutil.NewTestEntries()
	service := newTestQuizService(entries)

	step, err := service.Start(1, domain.ModeTargetToNative)
	require.NoError(t, err)

	current, err := service.Current(1)
	require.NoError(t, err)
	assert.Nil(t, current.Outcome)

	wrong := wrongIndex(t, step.Question, entries)
	_, err = service.Answer(1, wrong)
	require.NoError(t, err)

	current, err = service.Current(1)
	require.NoError(t, err)
	require.NotNil(t, current.Outcome)
	assert.False(t, current.Outcome.Correct)
	assert.Equal(t, step.Question.Options[wrong], current.Outcome.Selected)
	assert.Equal(t, step.Question.Options, current.Question.Options)

	_, err = service.Next(1)
	require.NoError(t, err)

	current, err = service.Current(1)
	require.NoError(t, err)
	assert.Nil(t, current.Outcome)
}
