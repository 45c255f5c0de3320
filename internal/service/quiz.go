package service

import (
	"errors"
	"sync"
	"time"

	"yardwords/internal/domain"
	"yardwords/internal/quiz"
	"yardwords/internal/vocabulary"

	"go.uber.org/zap"
)

var (
	// ErrNoActiveQuiz is returned for commands sent without a running quiz
	ErrNoActiveQuiz = errors.New("no active quiz")
	// ErrInvalidOption is returned for an option index outside the shown options
	ErrInvalidOption = errors.New("invalid option")
)

// QuestionCard is what the view shows for the current question
type QuestionCard struct {
	Mode     domain.Mode
	Prompt   string
	Hint     string
	Options  []string
	Progress quiz.Progress
	Score    int
}

// Feedback is the answered question with its outcome, for highlighting options
type Feedback struct {
	Card    QuestionCard
	Outcome quiz.Outcome
}

// Step is either the next question or the final summary.
// Outcome is set when the question shown has already been answered.
type Step struct {
	Question *QuestionCard
	Outcome  *quiz.Outcome
	Summary  *quiz.Summary
	Mode     domain.Mode
	Mistakes int
}

type activeQuiz struct {
	session *quiz.Session
	options []string
	outcome *quiz.Outcome
	touched time.Time
}

// QuizService dispatches quiz commands. Every user owns at most one live
// session; starting a quiz replaces the previous one.
type QuizService struct {
	store  *vocabulary.Store
	gen    *quiz.Generator
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[int64]*activeQuiz
}

// NewQuizService creates a new quiz service
func NewQuizService(store *vocabulary.Store, gen *quiz.Generator, logger *zap.Logger) *QuizService {
	return &QuizService{
		store:    store,
		gen:      gen,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[int64]*activeQuiz),
	}
}

// Start begins a quiz over the whole vocabulary
func (s *QuizService) Start(userID int64, mode domain.Mode) (*Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := s.gen.Generate(s.store.All(), mode)
	return s.begin(userID, questions, mode)
}

// Restart plays the same mode again over the whole vocabulary
func (s *QuizService) Restart(userID int64) (*Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aq, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveQuiz
	}

	mode := aq.session.Mode()
	questions := s.gen.Generate(s.store.All(), mode)
	return s.begin(userID, questions, mode)
}

// RetryMistakes starts a quiz over the questions missed in the current one.
// Without mistakes the current quiz is left as is.
func (s *QuizService) RetryMistakes(userID int64) (*Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aq, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveQuiz
	}

	mode := aq.session.Mode()
	questions, err := s.gen.RetrySequence(aq.session.Mistakes(), mode)
	if err != nil {
		return nil, err
	}
	return s.begin(userID, questions, mode)
}

// Answer submits the option shown at index
func (s *QuizService) Answer(userID int64, index int) (*Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aq, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveQuiz
	}
	if aq.session.Completed() {
		return nil, quiz.ErrCompleted
	}
	if index < 0 || index >= len(aq.options) {
		return nil, ErrInvalidOption
	}
	return s.submit(userID, aq, aq.options[index])
}

// SubmitAnswer submits a free value as the answer to the current question
func (s *QuizService) SubmitAnswer(userID int64, value string) (*Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aq, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveQuiz
	}
	return s.submit(userID, aq, value)
}

// Next moves past the answered question
func (s *QuizService) Next(userID int64) (*Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aq, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveQuiz
	}
	if err := aq.session.Advance(); err != nil {
		return nil, err
	}
	aq.touched = s.now()

	step, err := s.step(aq)
	if err != nil {
		return nil, err
	}
	if step.Summary != nil {
		s.logger.Info("Quiz completed",
			zap.Int64("user_id", userID),
			zap.Int("score", step.Summary.Score),
			zap.Int("total", step.Summary.Total),
		)
	}
	return step, nil
}

// Current returns the step the user is on without changing it
func (s *QuizService) Current(userID int64) (*Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aq, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveQuiz
	}
	if aq.session.Completed() {
		return s.step(aq)
	}
	card := s.card(aq)
	step := &Step{Question: &card, Mode: aq.session.Mode(), Mistakes: len(aq.session.Mistakes())}
	if aq.outcome != nil {
		outcome := *aq.outcome
		step.Outcome = &outcome
	}
	return step, nil
}

// Stop drops the user's quiz
func (s *QuizService) Stop(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// CleanupIdle drops quizzes untouched for longer than ttl
func (s *QuizService) CleanupIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for userID, aq := range s.sessions {
		if now.Sub(aq.touched) > ttl {
			delete(s.sessions, userID)
			removed++
		}
	}

	s.logger.Info("Idle quiz cleanup completed",
		zap.Int("removed", removed),
		zap.Int("active", len(s.sessions)),
	)
	return removed
}

func (s *QuizService) begin(userID int64, questions []domain.Question, mode domain.Mode) (*Step, error) {
	aq := &activeQuiz{
		session: quiz.NewSession(questions, mode),
		touched: s.now(),
	}

	step, err := s.step(aq)
	if err != nil {
		return nil, err
	}
	s.sessions[userID] = aq

	s.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.String("mode", string(mode)),
		zap.Int("questions", len(questions)),
	)
	return step, nil
}

func (s *QuizService) submit(userID int64, aq *activeQuiz, value string) (*Feedback, error) {
	outcome, err := aq.session.Submit(value)
	if err != nil {
		return nil, err
	}
	aq.touched = s.now()
	aq.outcome = &outcome

	s.logger.Debug("Answer submitted",
		zap.Int64("user_id", userID),
		zap.Bool("correct", outcome.Correct),
	)
	return &Feedback{Card: s.card(aq), Outcome: outcome}, nil
}

// step builds options for the current question, or the summary when done
func (s *QuizService) step(aq *activeQuiz) (*Step, error) {
	step := &Step{Mode: aq.session.Mode(), Mistakes: len(aq.session.Mistakes())}
	aq.outcome = nil

	if aq.session.Completed() {
		aq.options = nil
		summary := aq.session.Summary()
		step.Summary = &summary
		return step, nil
	}

	q, _ := aq.session.Current()
	options, err := s.gen.BuildChoices(q, s.store.All())
	if err != nil {
		return nil, err
	}
	aq.options = options

	card := s.card(aq)
	step.Question = &card
	return step, nil
}

func (s *QuizService) card(aq *activeQuiz) QuestionCard {
	q, _ := aq.session.Current()
	options := make([]string, len(aq.options))
	copy(options, aq.options)

	return QuestionCard{
		Mode:     aq.session.Mode(),
		Prompt:   q.Prompt(),
		Hint:     q.Hint(),
		Options:  options,
		Progress: aq.session.Progress(),
		Score:    aq.session.Score(),
	}
}
