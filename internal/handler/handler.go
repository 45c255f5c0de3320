package handler

import (
	"sync"

	"yardwords/internal/domain"
	"yardwords/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	themeService *service.ThemeService
	dictService  *service.DictionaryService
	quizService  *service.QuizService
	logger       *zap.Logger

	// Dictionary view state per user
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	themeService *service.ThemeService,
	dictService *service.DictionaryService,
	quizService *service.QuizService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		themeService: themeService,
		dictService:  dictService,
		quizService:  quizService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/quiz", h.handleGoToQuiz)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Dictionary buttons
	h.bot.Handle(&btnSortAZ, h.handleSortAZ)
	h.bot.Handle(&btnSortRandom, h.handleSortRandom)
	h.bot.Handle(&btnSearch, h.handleSearch)
	h.bot.Handle(&btnTheme, h.handleTheme)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Quiz buttons
	h.bot.Handle(&btnGoToQuiz, h.handleGoToQuiz)
	h.bot.Handle(&btnResume, h.handleResume)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnRetry, h.handleRetry)
	h.bot.Handle(&btnPlayAgain, h.handlePlayAgain)
	h.bot.Handle(&btnDict, h.handleBackToDictionary)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle, Page: 1}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state with the full dictionary
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle, Page: 1})
}

// Inline keyboard buttons
var (
	btnSortAZ = tele.Btn{
		Unique: "sort_az",
		Text:   "🔤 А-Я",
	}
	btnSortRandom = tele.Btn{
		Unique: "sort_random",
		Text:   "🎲 Случайно",
	}
	btnSearch = tele.Btn{
		Unique: "search",
		Text:   "🔍 Поиск",
	}
	btnTheme = tele.Btn{
		Unique: "theme",
		Text:   "🌙 Тема",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Отменить",
	}
	btnGoToQuiz = tele.Btn{
		Unique: "go_to_quiz",
		Text:   "📝 Квиз",
	}
	btnResume = tele.Btn{
		Unique: "resume",
		Text:   "▶️ Продолжить квиз",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "Далее ➡️",
	}
	btnRetry = tele.Btn{
		Unique: "retry",
		Text:   "🔁 Повторить ошибки",
	}
	btnPlayAgain = tele.Btn{
		Unique: "again",
		Text:   "🔄 Сыграть снова",
	}
	btnDict = tele.Btn{
		Unique: "dict",
		Text:   "📖 В словарь",
	}
)
