package service

import (
	"context"
	"math/rand"
	"sort"
	"strings"

	"yardwords/internal/domain"
	"yardwords/internal/tts"
	"yardwords/internal/vocabulary"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the number of cards on one dictionary page
const PageSize = 7

// DictionaryService handles the card list: search, ordering, paging and speech
type DictionaryService struct {
	store   *vocabulary.Store
	speaker tts.Speaker
	lang    string
	shuffle func(n int, swap func(i, j int))
}

// NewDictionaryService creates a new dictionary service.
// lang is the BCP-47 tag used for speech, e.g. "en-US".
func NewDictionaryService(store *vocabulary.Store, speaker tts.Speaker, lang string) *DictionaryService {
	return &DictionaryService{
		store:   store,
		speaker: speaker,
		lang:    lang,
		shuffle: rand.Shuffle,
	}
}

// All returns the full list in its built-in order
func (s *DictionaryService) All() []domain.Entry {
	return s.store.All()
}

// Search keeps entries whose word or translation contains term, ignoring
// case, and sorts them A-Z. An empty term matches everything.
func (s *DictionaryService) Search(term string) []domain.Entry {
	term = strings.ToLower(strings.TrimSpace(term))

	found := s.store.Find(func(e domain.Entry) bool {
		return strings.Contains(strings.ToLower(e.Word), term) ||
			strings.Contains(strings.ToLower(e.Translation), term)
	})
	return s.SortAZ(found)
}

// SortAZ returns a copy of entries ordered by target word
func (s *DictionaryService) SortAZ(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	copy(out, entries)

	// Collators keep internal buffers, so each call gets its own
	c := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Word, out[j].Word) < 0
	})
	return out
}

// Shuffle returns a copy of entries in uniformly random order
func (s *DictionaryService) Shuffle(entries []domain.Entry) []domain.Entry {
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	s.shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Page returns one page of entries, the clamped page number and the page count
func (s *DictionaryService) Page(entries []domain.Entry, page int) ([]domain.Entry, int, int) {
	totalPages := (len(entries) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(entries) {
		end = len(entries)
	}

	return entries[start:end], page, totalPages
}

// Entry returns the entry at its built-in position
func (s *DictionaryService) Entry(index int) (domain.Entry, bool) {
	return s.store.At(index)
}

// IndexOf returns the built-in position of a word
func (s *DictionaryService) IndexOf(word string) (int, bool) {
	return s.store.IndexOf(word)
}

// Speak synthesizes the target word of entry
func (s *DictionaryService) Speak(ctx context.Context, entry domain.Entry) ([]byte, error) {
	return s.speaker.Synthesize(ctx, entry.Word, s.lang)
}
