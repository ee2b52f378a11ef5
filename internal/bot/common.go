package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/gradnja/leadbot/core/logger"
	tghelpers "github.com/gradnja/leadbot/core/telegram/helpers"
	"github.com/gradnja/leadbot/internal/form"
	"github.com/gradnja/leadbot/internal/locale"
	"log/slog"
)

// cmdHelp shows the command reference in the user's language.
func (a *App) cmdHelp(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	lang := a.userLanguage(ctx, c.Sender().ID)
	return tghelpers.SendHTML(c, locale.Get("help_text", lang))
}

// cmdCancel aborts the active form. Without one it just shows the menu.
func (a *App) cmdCancel(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	if !a.sessions.InProgress(userID) {
		return tghelpers.SendHTML(c, locale.Get("menu", lang))
	}

	logger.Info(ctx, "bot", "form.cancelled",
		slog.Int64("user_id", userID),
		slog.String("step", string(a.sessions.GetState(userID))),
	)
	return a.applyEvent(c, form.Cancel{})
}

// cmdLanguage starts a language change. With an active form the user
// must first confirm losing their progress.
func (a *App) cmdLanguage(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	if a.sessions.InProgress(userID) {
		return tghelpers.SendHTML(c, locale.Get("language_change_warning", lang), languageChangeConfirmKeyboard(lang))
	}
	return tghelpers.SendHTML(c, locale.Get("change_language", lang), languageKeyboard(cbChangeLang))
}

// unknownMessage nudges the user back to the menu when a message
// arrives outside any flow.
func (a *App) unknownMessage(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	lang := a.userLanguage(ctx, c.Sender().ID)
	return tghelpers.SendHTML(c, locale.Get("menu", lang), mainMenuKeyboard(lang))
}
