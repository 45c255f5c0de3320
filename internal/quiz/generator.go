package quiz

import (
	"math/rand"

	"yardwords/internal/domain"

	"github.com/samber/lo"
)

// OptionCount is the number of choices shown for every question
const OptionCount = 4

// Rand is the randomness a Generator needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) Intn(n int) int                     { return rand.Intn(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Generator builds question sequences and option sets
type Generator struct {
	rnd Rand
}

// NewGenerator creates a generator. A nil rnd uses the package-level
// math/rand source, which is safe for concurrent use.
func NewGenerator(rnd Rand) *Generator {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Generator{rnd: rnd}
}

// Generate returns one question per entry of vocab in uniformly random order
func (g *Generator) Generate(vocab []domain.Entry, mode domain.Mode) []domain.Question {
	shuffled := make([]domain.Entry, len(vocab))
	copy(shuffled, vocab)
	g.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	questions := make([]domain.Question, 0, len(shuffled))
	for _, e := range shuffled {
		questions = append(questions, domain.Question{
			Entry:     e,
			Direction: g.direction(mode),
		})
	}
	return questions
}

// BuildChoices returns the correct answer of q and three distinct distractors
// from the same field of vocab, in random order
func (g *Generator) BuildChoices(q domain.Question, vocab []domain.Entry) ([]string, error) {
	correct := q.Answer()

	values := lo.Map(vocab, func(e domain.Entry, _ int) string {
		return q.Direction.AnswerField(e)
	})
	pool := lo.Without(lo.Uniq(values), correct)

	need := OptionCount - 1
	if len(pool) < need {
		return nil, &ConfigurationError{
			Direction:   q.Direction,
			Distractors: len(pool),
			Required:    need,
		}
	}

	g.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	options := make([]string, 0, OptionCount)
	options = append(options, pool[:need]...)
	options = append(options, correct)
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, nil
}

func (g *Generator) direction(mode domain.Mode) domain.Direction {
	if d, ok := mode.Fixed(); ok {
		return d
	}
	if g.rnd.Intn(2) == 0 {
		return domain.NativeToTarget
	}
	return domain.TargetToNative
}
