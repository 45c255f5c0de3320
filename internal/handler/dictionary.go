package handler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"yardwords/internal/domain"
	"yardwords/internal/tts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const speakTimeout = 15 * time.Second

// showDictionary renders the user's current listing on their current page
func (h *Handler) showDictionary(c tele.Context, userID int64) error {
	state := h.GetState(userID)

	theme, err := h.themeService.Theme(userID)
	if err != nil {
		h.logger.Error("Failed to load theme", zap.Error(err), zap.Int64("user_id", userID))
		theme = domain.ThemeLight
	}

	listing := state.Listing
	if listing == nil {
		listing = h.dictService.All()
	}

	items, page, totalPages := h.dictService.Page(listing, state.Page)
	p := cardPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Query:      state.Query,
		Theme:      theme,
	}

	return h.show(c, renderCards(p), cardsMarkup(p, h.dictService.IndexOf))
}

// updateListing replaces the listing and returns to its first page
func (h *Handler) updateListing(userID int64, listing []domain.Entry, query string) {
	h.SetState(userID, &domain.StateData{
		State:   domain.StateIdle,
		Listing: listing,
		Query:   query,
		Page:    1,
	})
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingSearch:
		results := h.dictService.Search(text)

		h.logger.Info("Dictionary searched",
			zap.Int64("user_id", userID),
			zap.String("query", text),
			zap.Int("results", len(results)),
		)

		h.updateListing(userID, results, text)
		return h.showDictionary(c, userID)

	default:
		return c.Send("Нажмите 🔍 Поиск, чтобы найти слово, /start, чтобы открыть словарь, или /quiz для квиза")
	}
}

// handleSearch waits for the next text message as the query
func (h *Handler) handleSearch(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	h.SetState(userID, &domain.StateData{
		State:   domain.StateWaitingSearch,
		Listing: state.Listing,
		Query:   state.Query,
		Page:    state.Page,
	})

	cancelMarkup := &tele.ReplyMarkup{}
	cancelMarkup.Inline(cancelMarkup.Row(btnCancel))

	return h.show(c, "🔍 Введите слово на английском или русском:", cancelMarkup)
}

// handleCancel leaves search input and shows the full dictionary
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)
	return h.showDictionary(c, userID)
}

// handleSortAZ sorts the current listing by target word
func (h *Handler) handleSortAZ(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	listing := state.Listing
	if listing == nil {
		listing = h.dictService.All()
	}

	h.updateListing(userID, h.dictService.SortAZ(listing), state.Query)
	return h.showDictionary(c, userID)
}

// handleSortRandom shuffles the current listing
func (h *Handler) handleSortRandom(c tele.Context) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	listing := state.Listing
	if listing == nil {
		listing = h.dictService.All()
	}

	h.updateListing(userID, h.dictService.Shuffle(listing), state.Query)
	return h.showDictionary(c, userID)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	userID := c.Sender().ID

	page, err := parseIndex(data, "page_")
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверная страница"})
	}

	state := h.GetState(userID)
	h.SetState(userID, &domain.StateData{
		State:   state.State,
		Listing: state.Listing,
		Query:   state.Query,
		Page:    page,
	})

	return h.showDictionary(c, userID)
}

// handleTheme toggles and stores the theme
func (h *Handler) handleTheme(c tele.Context) error {
	userID := c.Sender().ID

	theme, err := h.themeService.Toggle(userID)
	if err != nil {
		h.logger.Error("Failed to toggle theme", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при сохранении темы"})
	}

	h.logger.Info("Theme toggled",
		zap.Int64("user_id", userID),
		zap.String("theme", string(theme)),
	)
	return h.showDictionary(c, userID)
}

// handleSpeak sends the pronunciation of a card's word
func (h *Handler) handleSpeak(c tele.Context, data string) error {
	userID := c.Sender().ID

	index, err := parseIndex(data, "speak_")
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверное слово"})
	}

	entry, ok := h.dictService.Entry(index)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Неверное слово"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
	defer cancel()

	audio, err := h.dictService.Speak(ctx, entry)
	if err != nil {
		if !errors.Is(err, tts.ErrUnavailable) {
			h.logger.Error("Failed to synthesize speech", zap.Error(err), zap.String("word", entry.Word))
		}
		return c.Respond(&tele.CallbackResponse{
			Text:      "Синтез речи недоступен.",
			ShowAlert: true,
		})
	}

	if err := c.Send(&tele.Audio{
		File:     tele.FromReader(bytes.NewReader(audio)),
		Title:    entry.Word,
		FileName: entry.Word + ".mp3",
		MIME:     "audio/mpeg",
		Caption:  entry.Word + " " + entry.Phonetic,
	}); err != nil {
		h.logger.Error("Failed to send audio", zap.Error(err), zap.Int64("user_id", userID))
	}
	return c.Respond()
}
