package quiz

import (
	"math"

	"yardwords/internal/domain"
)

// Phase is the state of a quiz session
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // Current question shown, no answer yet
	PhaseAnswered                    // Answer recorded, waiting for Advance
	PhaseCompleted                   // All questions done
)

// Outcome is the result of a submitted answer, used to highlight options
type Outcome struct {
	Selected      string
	CorrectAnswer string
	Correct       bool
}

// Summary is the final result of a session
type Summary struct {
	Score      int
	Total      int
	Percentage int
}

// Progress is the fraction of questions answered so far
type Progress struct {
	Done  int
	Total int
}

// Percent returns the progress as 0..100
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Done * 100 / p.Total
}

// Session walks through a fixed question sequence, counting the score and
// collecting mistakes. It is not safe for concurrent use.
type Session struct {
	mode      domain.Mode
	questions []domain.Question
	current   int
	score     int
	phase     Phase
	mistakes  []domain.Question
}

// NewSession starts a session over a copy of questions.
// An empty sequence yields a session that is already completed.
func NewSession(questions []domain.Question, mode domain.Mode) *Session {
	s := &Session{
		mode:      mode,
		questions: make([]domain.Question, len(questions)),
		phase:     PhaseAwaitingAnswer,
	}
	copy(s.questions, questions)
	if len(s.questions) == 0 {
		s.phase = PhaseCompleted
	}
	return s
}

// Mode returns the answer-direction policy the session was started with
func (s *Session) Mode() domain.Mode { return s.mode }

// Phase returns the current state
func (s *Session) Phase() Phase { return s.phase }

// Completed reports whether every question has been passed
func (s *Session) Completed() bool { return s.phase == PhaseCompleted }

// Index returns the position of the current question
func (s *Session) Index() int { return s.current }

// Score returns the number of correct answers
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the session
func (s *Session) Total() int { return len(s.questions) }

// Current returns the question being asked
func (s *Session) Current() (domain.Question, bool) {
	if s.phase == PhaseCompleted {
		return domain.Question{}, false
	}
	return s.questions[s.current], true
}

// Mistakes returns the missed questions in the order they were answered
func (s *Session) Mistakes() []domain.Question {
	out := make([]domain.Question, len(s.mistakes))
	copy(out, s.mistakes)
	return out
}

// Submit records the answer to the current question.
// Only one answer per question is accepted.
func (s *Session) Submit(selected string) (Outcome, error) {
	switch s.phase {
	case PhaseCompleted:
		return Outcome{}, ErrCompleted
	case PhaseAnswered:
		return Outcome{}, ErrAlreadyAnswered
	}

	q := s.questions[s.current]
	outcome := Outcome{
		Selected:      selected,
		CorrectAnswer: q.Answer(),
		Correct:       selected == q.Answer(),
	}

	if outcome.Correct {
		s.score++
	} else {
		s.mistakes = append(s.mistakes, q)
	}
	s.phase = PhaseAnswered

	return outcome, nil
}

// Advance moves past an answered question, completing the session after the last one
func (s *Session) Advance() error {
	switch s.phase {
	case PhaseCompleted:
		return ErrCompleted
	case PhaseAwaitingAnswer:
		return ErrNotAnswered
	}

	s.current++
	if s.current >= len(s.questions) {
		s.phase = PhaseCompleted
		return nil
	}
	s.phase = PhaseAwaitingAnswer
	return nil
}

// Progress counts the current question as done once it is answered
func (s *Session) Progress() Progress {
	done := s.current
	if s.phase == PhaseAnswered {
		done++
	}
	return Progress{Done: done, Total: len(s.questions)}
}

// Summary returns the score so far; percentage is 0 for an empty session
func (s *Session) Summary() Summary {
	sum := Summary{Score: s.score, Total: len(s.questions)}
	if sum.Total > 0 {
		sum.Percentage = int(math.Round(100 * float64(s.score) / float64(sum.Total)))
	}
	return sum
}
