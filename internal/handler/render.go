package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"yardwords/internal/domain"
	"yardwords/internal/quiz"
	"yardwords/internal/service"

	tele "gopkg.in/telebot.v3"
)

const progressCells = 10

// cardPage is one rendered dictionary page
type cardPage struct {
	Items      []domain.Entry
	Page       int
	TotalPages int
	Query      string
	Theme      domain.Theme
}

// renderCards formats a dictionary page
func renderCards(p cardPage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📖 Словарь (стр. %d/%d)\n", p.Page, p.TotalPages)
	if p.Query != "" {
		fmt.Fprintf(&b, "🔍 «%s»\n", p.Query)
	}
	b.WriteString("\n")

	if len(p.Items) == 0 {
		b.WriteString("Ничего не найдено")
		return b.String()
	}

	for _, e := range p.Items {
		fmt.Fprintf(&b, "%s %s %s — %s\n", p.Theme.Bullet(), e.Word, e.Phonetic, e.Translation)
	}
	return b.String()
}

// cardsMarkup builds speak buttons, page navigation and the dictionary menu.
// indexOf maps an entry to its stable position for the speak callback.
func cardsMarkup(p cardPage, indexOf func(word string) (int, bool)) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	speakRow := tele.Row{}
	for _, e := range p.Items {
		i, ok := indexOf(e.Word)
		if !ok {
			continue
		}
		speakRow = append(speakRow, markup.Data("🔊 "+e.Word, fmt.Sprintf("speak_%d", i)))
		if len(speakRow) == 2 {
			rows = append(rows, speakRow)
			speakRow = tele.Row{}
		}
	}
	if len(speakRow) > 0 {
		rows = append(rows, speakRow)
	}

	if p.TotalPages > 1 {
		navRow := tele.Row{}
		if p.Page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", p.Page-1)))
		}
		if p.Page < p.TotalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", p.Page+1)))
		}
		rows = append(rows, navRow)
	}

	themeBtn := btnTheme
	themeBtn.Text = p.Theme.Icon() + " Тема"

	rows = append(rows,
		markup.Row(btnSortAZ, btnSortRandom, btnSearch),
		markup.Row(btnGoToQuiz, themeBtn),
	)
	markup.Inline(rows...)
	return markup
}

// modeMarkup offers the three quiz modes, and a way back into a live quiz
func modeMarkup(resume bool) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	modes := []domain.Mode{domain.ModeNativeToTarget, domain.ModeTargetToNative, domain.ModeMixed}

	rows := []tele.Row{}
	if resume {
		rows = append(rows, markup.Row(btnResume))
	}
	for _, m := range modes {
		rows = append(rows, markup.Row(markup.Data(m.DisplayName(), "quiz_"+string(m))))
	}
	rows = append(rows, markup.Row(btnDict))
	markup.Inline(rows...)
	return markup
}

func progressBar(p quiz.Progress) string {
	filled := 0
	if p.Total > 0 {
		filled = p.Done * progressCells / p.Total
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", progressCells-filled) +
		fmt.Sprintf(" %d%%", p.Percent())
}

// renderQuestion formats the quiz header and the current prompt
func renderQuestion(card service.QuestionCard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Квиз: %s\n", card.Mode.DisplayName())
	fmt.Fprintf(&b, "Счёт: %d / %d\n", card.Score, card.Progress.Total)
	b.WriteString(progressBar(card.Progress))
	b.WriteString("\n\n")

	b.WriteString(card.Prompt)
	if card.Hint != "" {
		b.WriteString("\n" + card.Hint)
	}
	return b.String()
}

// questionMarkup lists the options; with an outcome the correct option and
// a wrong pick are marked and the next button appears
func questionMarkup(card service.QuestionCard, outcome *quiz.Outcome) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for i, opt := range card.Options {
		text := opt
		if outcome != nil {
			switch {
			case opt == outcome.CorrectAnswer:
				text = "✅ " + opt
			case opt == outcome.Selected && !outcome.Correct:
				text = "❌ " + opt
			}
		}
		rows = append(rows, markup.Row(markup.Data(text, "ans_"+strconv.Itoa(i))))
	}

	if outcome != nil {
		rows = append(rows, markup.Row(btnNext))
	}
	rows = append(rows, markup.Row(btnDict))

	markup.Inline(rows...)
	return markup
}

// renderSummary formats the completion screen
func renderSummary(s quiz.Summary) string {
	return fmt.Sprintf("🏁 Квиз завершён\n\nВы ответили правильно на %d из %d (%d%%)",
		s.Score, s.Total, s.Percentage)
}

func summaryMarkup(mistakes int) *tele.ReplyMarkup {
	retry := btnRetry
	if mistakes > 0 {
		retry.Text = fmt.Sprintf("%s (%d)", btnRetry.Text, mistakes)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(retry),
		markup.Row(btnPlayAgain),
		markup.Row(btnDict),
	)
	return markup
}

// renderStep formats either a question or the summary
func renderStep(step *service.Step) (string, *tele.ReplyMarkup) {
	if step.Summary != nil {
		return renderSummary(*step.Summary), summaryMarkup(step.Mistakes)
	}
	return renderQuestion(*step.Question), questionMarkup(*step.Question, step.Outcome)
}

// quizErrorText maps a rejected quiz command to a short notice.
// known is false for errors that should be logged.
func quizErrorText(err error) (text string, alert bool, known bool) {
	switch {
	case errors.Is(err, quiz.ErrNothingToRetry):
		return "Нет ошибочных слов!", true, true
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		return "Ответ уже принят", false, true
	case errors.Is(err, quiz.ErrNotAnswered):
		return "Сначала выберите ответ", false, true
	case errors.Is(err, quiz.ErrCompleted):
		return "Квиз уже завершён", false, true
	case errors.Is(err, service.ErrNoActiveQuiz):
		return "Квиз не запущен", false, true
	case errors.Is(err, service.ErrInvalidOption):
		return "Неверный вариант", false, true
	case errors.Is(err, quiz.ErrInsufficientVocabulary):
		return "Слишком мало слов для квиза", true, false
	}
	return "Произошла ошибка. Попробуйте позже.", false, false
}

// parseIndex extracts the number after prefix, e.g. "ans_2"
func parseIndex(data, prefix string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(data), prefix))
}
