package handler

import (
	"strings"

	"yardwords/internal/domain"
	"yardwords/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// respondQuizError answers a rejected quiz command without touching the message
func (h *Handler) respondQuizError(c tele.Context, err error) error {
	text, alert, known := quizErrorText(err)
	if !known {
		h.logger.Error("Quiz command failed",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
	}

	if c.Callback() == nil {
		return c.Send(text)
	}
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: alert})
}

func (h *Handler) showStep(c tele.Context, step *service.Step) error {
	text, markup := renderStep(step)
	return h.show(c, text, markup)
}

// handleGoToQuiz shows the mode selection; an unfinished quiz can be resumed
func (h *Handler) handleGoToQuiz(c tele.Context) error {
	step, err := h.quizService.Current(c.Sender().ID)
	resume := err == nil && step.Summary == nil
	return h.show(c, "📝 Выберите режим квиза:", modeMarkup(resume))
}

// handleResume re-renders the quiz where the user left it
func (h *Handler) handleResume(c tele.Context) error {
	step, err := h.quizService.Current(c.Sender().ID)
	if err != nil {
		return h.respondQuizError(c, err)
	}
	return h.showStep(c, step)
}

// handleQuizMode starts a quiz in the chosen mode
func (h *Handler) handleQuizMode(c tele.Context, data string) error {
	mode, err := domain.ParseMode(strings.TrimPrefix(data, "quiz_"))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестный режим"})
	}

	step, err := h.quizService.Start(c.Sender().ID, mode)
	if err != nil {
		return h.respondQuizError(c, err)
	}
	return h.showStep(c, step)
}

// handleAnswer submits the chosen option and highlights the result
func (h *Handler) handleAnswer(c tele.Context, data string) error {
	index, err := parseIndex(data, "ans_")
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверный вариант"})
	}

	feedback, err := h.quizService.Answer(c.Sender().ID, index)
	if err != nil {
		return h.respondQuizError(c, err)
	}

	return h.show(c, renderQuestion(feedback.Card), questionMarkup(feedback.Card, &feedback.Outcome))
}

// handleNext moves to the next question or the summary
func (h *Handler) handleNext(c tele.Context) error {
	step, err := h.quizService.Next(c.Sender().ID)
	if err != nil {
		return h.respondQuizError(c, err)
	}
	return h.showStep(c, step)
}

// handleRetry replays the missed questions
func (h *Handler) handleRetry(c tele.Context) error {
	step, err := h.quizService.RetryMistakes(c.Sender().ID)
	if err != nil {
		return h.respondQuizError(c, err)
	}
	return h.showStep(c, step)
}

// handlePlayAgain restarts the quiz in the same mode
func (h *Handler) handlePlayAgain(c tele.Context) error {
	step, err := h.quizService.Restart(c.Sender().ID)
	if err != nil {
		return h.respondQuizError(c, err)
	}
	return h.showStep(c, step)
}

// handleBackToDictionary drops the quiz and shows the cards
func (h *Handler) handleBackToDictionary(c tele.Context) error {
	userID := c.Sender().ID
	h.quizService.Stop(userID)
	return h.showDictionary(c, userID)
}
