package middleware

import (
	"yardwords/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// EnsureUser registers the sender before any handler runs
func EnsureUser(themeService *service.ThemeService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := themeService.EnsureUserExists(sender.ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: "Произошла ошибка. Попробуйте позже."})
				}
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			return next(c)
		}
	}
}
