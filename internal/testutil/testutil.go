package testutil

import (
	"math/rand"

	"yardwords/internal/domain"
	"yardwords/internal/quiz"
	"yardwords/internal/vocabulary"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntries returns a small vocabulary with unique fields
func NewTestEntries() []domain.Entry {
	return []domain.Entry{
		{Word: "fence", Phonetic: "/fens/", Translation: "забор"},
		{Word: "gate", Phonetic: "/ɡeɪt/", Translation: "калитка"},
		{Word: "bench", Phonetic: "/bentʃ/", Translation: "скамейка"},
		{Word: "swing", Phonetic: "/swɪŋ/", Translation: "качели"},
	}
}

// NewTestStore creates a store over entries
func NewTestStore(entries []domain.Entry) *vocabulary.Store {
	return vocabulary.NewStore(entries)
}

// NewTestGenerator creates a generator with a seeded source
func NewTestGenerator(seed int64) *quiz.Generator {
	return quiz.NewGenerator(rand.New(rand.NewSource(seed)))
}
