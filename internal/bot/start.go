package bot

import (
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/gradnja/leadbot/core/logger"
	"github.com/gradnja/leadbot/core/telegram/callbacks"
	tghelpers "github.com/gradnja/leadbot/core/telegram/helpers"
	"github.com/gradnja/leadbot/core/telegram/keyboard"
	"github.com/gradnja/leadbot/internal/locale"
	"log/slog"
)

// cmdStart greets known users with the menu and asks new ones for a
// language. Any active form is dropped.
func (a *App) cmdStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	if a.sessions.InProgress(userID) {
		a.sessions.Clear(userID)
		logger.Info(ctx, "bot", "form.cleared_on_start", slog.Int64("user_id", userID))
	}
	a.cancels.Clear(userID)

	lang, err := a.repo.UserLanguage(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "bot", "user.language.lookup_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
	}

	if lang != "" {
		text := locale.Get("welcome", lang) + "\n\n" + locale.Get("menu", lang)
		return tghelpers.SendHTML(c, text, mainMenuKeyboard(lang))
	}
	return tghelpers.SendHTML(c, locale.Get("choose_language", locale.LangEN), languageKeyboard(cbLang))
}

// cbSelectLanguage stores the first language choice and shows the menu.
func (a *App) cbSelectLanguage(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	code := callbacks.Payload(c)
	if !locale.IsSupported(code) {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid language selection", ShowAlert: true})
	}

	userID := c.Sender().ID
	if err := a.repo.SaveUserLanguage(ctx, userID, code); err != nil {
		logger.Error(ctx, "bot", "user.language.save_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return c.Respond(&tele.CallbackResponse{Text: locale.Get("error_occurred", code), ShowAlert: true})
	}

	text := locale.Get("welcome", code) + "\n\n" + locale.Get("menu", code)
	if err := tghelpers.EditOrSendHTML(c, text); err != nil {
		return err
	}
	return tghelpers.SendHTML(c, locale.Get("menu", code), mainMenuKeyboard(code))
}

// cbChangeLanguage switches an existing user's language. The reply
// keyboard is replaced so the menu buttons match the new language.
func (a *App) cbChangeLanguage(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	code := callbacks.Payload(c)
	if !locale.IsSupported(code) {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid language selection", ShowAlert: true})
	}

	userID := c.Sender().ID
	if err := a.repo.SaveUserLanguage(ctx, userID, code); err != nil {
		logger.Error(ctx, "bot", "user.language.save_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return c.Respond(&tele.CallbackResponse{Text: locale.Get("error_occurred", code), ShowAlert: true})
	}

	a.sessions.Clear(userID)
	_ = c.Delete()

	if err := tghelpers.SendHTML(c, locale.Get("language_changed", code), keyboard.RemoveKeyboard()); err != nil {
		return err
	}
	// Give Telegram a moment to process the keyboard removal.
	time.Sleep(300 * time.Millisecond)

	text := locale.Get("welcome", code) + "\n\n" + locale.Get("menu", code)
	return tghelpers.SendHTML(c, text, mainMenuKeyboard(code))
}

// cbLanguageChangeConfirm drops the active form and shows the language picker.
func (a *App) cbLanguageChangeConfirm(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	a.sessions.Clear(userID)
	_ = c.Delete()

	logger.Info(ctx, "bot", "form.cleared_on_language_change", slog.Int64("user_id", userID))
	return tghelpers.SendHTML(c, locale.Get("change_language", lang), languageKeyboard(cbChangeLang))
}

// cbLanguageChangeAbort keeps the form and removes the warning.
func (a *App) cbLanguageChangeAbort(c tele.Context) error {
	_ = c.Delete()
	return nil
}
