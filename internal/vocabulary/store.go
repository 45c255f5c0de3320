package vocabulary

import (
	"yardwords/internal/domain"

	"github.com/samber/lo"
)

// Store is the read-only vocabulary shared by the dictionary and the quiz.
// It is never mutated after construction and is safe for concurrent use.
type Store struct {
	entries []domain.Entry
	index   map[string]int
}

// NewStore creates a store over a copy of entries, keeping their order
func NewStore(entries []domain.Entry) *Store {
	s := &Store{
		entries: make([]domain.Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(s.entries, entries)
	for i, e := range s.entries {
		if _, exists := s.index[e.Word]; !exists {
			s.index[e.Word] = i
		}
	}
	return s
}

// Default returns the store over the compiled-in word list
func Default() *Store {
	return NewStore(yardWords)
}

// All returns every entry in insertion order
func (s *Store) All() []domain.Entry {
	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Find returns the entries matching pred, in insertion order
func (s *Store) Find(pred func(domain.Entry) bool) []domain.Entry {
	return lo.Filter(s.entries, func(e domain.Entry, _ int) bool {
		return pred(e)
	})
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the entry at position i
func (s *Store) At(i int) (domain.Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return domain.Entry{}, false
	}
	return s.entries[i], true
}

// IndexOf returns the position of the entry with the given target word
func (s *Store) IndexOf(word string) (int, bool) {
	i, ok := s.index[word]
	return i, ok
}
