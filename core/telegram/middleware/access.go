package middleware

import (
	"log/slog"

	"github.com/gradnja/leadbot/core/logger"
	tghelpers "github.com/gradnja/leadbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// AdminOnly restricts a handler to the configured admin chat.
// Non-admin calls are logged and silently ignored.
func AdminOnly(adminChatID int64) func(tele.HandlerFunc) tele.HandlerFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender != nil && sender.ID == adminChatID {
				return next(c)
			}
			ctx := tghelpers.BuildContext(c)
			userID := int64(0)
			if sender != nil {
				userID = sender.ID
			}
			logger.Warn(ctx, "tg", "access.denied",
				slog.Int64("user_id", userID),
				slog.String("handler", logger.SanitizeLimit(c.Text(), 64)),
			)
			return nil
		}
	}
}
