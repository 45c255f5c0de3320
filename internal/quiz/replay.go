package quiz

import "yardwords/internal/domain"

// RetrySequence builds a follow-up quiz from missed questions.
// Every miss is kept, in the order it was made; directions are re-derived
// from mode, so a mixed quiz re-rolls each one.
func (g *Generator) RetrySequence(mistakes []domain.Question, mode domain.Mode) ([]domain.Question, error) {
	if len(mistakes) == 0 {
		return nil, ErrNothingToRetry
	}

	questions := make([]domain.Question, 0, len(mistakes))
	for _, m := range mistakes {
		questions = append(questions, domain.Question{
			Entry:     m.Entry,
			Direction: g.direction(mode),
		})
	}
	return questions, nil
}
