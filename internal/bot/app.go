// Package bot wires the lead intake conversation onto the Telegram
// transport: commands, menu buttons, callbacks and the form machine.
package bot

import (
	"context"
	"sync"

	tele "gopkg.in/telebot.v4"

	coreconfig "github.com/gradnja/leadbot/core/config"
	"github.com/gradnja/leadbot/core/logger"
	tg "github.com/gradnja/leadbot/core/telegram"
	"github.com/gradnja/leadbot/core/telegram/commands"
	"github.com/gradnja/leadbot/core/telegram/state"
	"github.com/gradnja/leadbot/internal/form"
	"github.com/gradnja/leadbot/internal/locale"
	"github.com/gradnja/leadbot/internal/notify"
	"github.com/gradnja/leadbot/internal/storage"
	"log/slog"
)

// cancelFlow states for the lead cancellation dialog.
const stateCancelConfirm state.State = "cancel_confirm"

// App owns the bot's stateful pieces: the form sessions, the lead
// repository and the admin notification queue.
type App struct {
	cfg     *coreconfig.Config
	repo    *storage.Repo
	machine form.Machine

	sessions *state.Store[form.Draft]
	cancels  *state.Store[int64]
	queue    *notify.Queue

	menu map[string]menuEntry

	mu  sync.RWMutex
	bot *tele.Bot
}

type menuEntry struct {
	name    string
	handler tele.HandlerFunc
}

// New builds the application around the given repository.
func New(cfg *coreconfig.Config, repo *storage.Repo) *App {
	a := &App{
		cfg:      cfg,
		repo:     repo,
		machine:  form.Machine{MaxFiles: cfg.App.MaxFiles},
		sessions: state.NewStore[form.Draft](),
		cancels:  state.NewStore[int64](),
		queue:    notify.New(notify.Options{MaxRetries: 3}),
	}
	a.buildMenu()
	return a
}

// SetBot stores the transport handle once the poller is up.
func (a *App) SetBot(b *tele.Bot) {
	a.mu.Lock()
	a.bot = b
	a.mu.Unlock()
}

// Bot returns the transport handle, or nil before startup.
func (a *App) Bot() *tele.Bot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bot
}

// Close drains the notification queue.
func (a *App) Close() {
	a.queue.Close()
}

// buildMenu maps the persistent reply-keyboard labels in every language
// to their handlers.
func (a *App) buildMenu() {
	a.menu = make(map[string]menuEntry)
	add := func(key, name string, h tele.HandlerFunc) {
		for _, lang := range locale.SupportedLanguages {
			a.menu[locale.Get(key, lang)] = menuEntry{name: name, handler: h}
		}
	}
	add("btn_new_lead", "new", a.cmdNewLead)
	add("btn_my_leads", "my_leads", a.cmdMyLeads)
	add("btn_cancel_lead", "cancel_lead", a.btnCancelLead)
	add("btn_change_language", "language", a.cmdLanguage)
}

// MenuResolver satisfies the router's menu lookup.
func (a *App) MenuResolver(text string) (tele.HandlerFunc, string, bool) {
	entry, ok := a.menu[text]
	if !ok {
		return nil, "", false
	}
	return entry.handler, entry.name, true
}

// Register wires all commands and callbacks into the registry.
func (a *App) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.cmdStart,
		Description: "Start and choose language",
	})
	reg.RegisterCommand("/new", commands.Command{
		Handler:     a.cmdNewLead,
		Description: "Create a new request",
	})
	reg.RegisterCommand("/my_leads", commands.Command{
		Handler:     a.cmdMyLeads,
		Description: "Show my requests",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     a.cmdCancel,
		Description: "Cancel current request",
	})
	reg.RegisterCommand("/language", commands.Command{
		Handler:     a.cmdLanguage,
		Description: "Change language",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.cmdHelp,
		Description: "Show help",
	})
	reg.RegisterCommand("/leads", commands.Command{
		Handler:     a.cmdAllLeads,
		Description: "List all requests",
		AdminOnly:   true,
		Hidden:      true,
	})

	reg.SetTextFallback(a.unknownMessage)
	reg.SetMediaFallback(a.unknownMessage)

	for key, handler := range map[string]tele.HandlerFunc{
		cbLang:           a.cbSelectLanguage,
		cbChangeLang:     a.cbChangeLanguage,
		cbLangChangeYes:  a.cbLanguageChangeConfirm,
		cbLangChangeNo:   a.cbLanguageChangeAbort,
		cbConfirmData:    a.cbConfirmDataChoice,
		cbSkipEmail:      a.cbSkipEmail,
		cbFilesDone:      a.cbFilesDone,
		cbFilesSkip:      a.cbFilesDone,
		cbFilesCancel:    a.cbFormCancel,
		cbConfirmSend:    a.cbConfirmSendLead,
		cbConfirmEdit:    a.cbConfirmEditLead,
		cbConfirmCancel:  a.cbFormCancel,
		cbEditField:      a.cbEditFieldChoice,
		cbSelectLead:     a.cbSelectLeadToCancel,
		cbCancelLeadYes:  a.cbCancelLeadConfirm,
		cbCancelLeadBack: a.cbCancelLeadBack,
		cbLeadsBack:      a.cbLeadsBack,
	} {
		if err := reg.RegisterCallback(key, handler); err != nil {
			logger.TWire.LogAttrs(context.Background(), slog.LevelError, "register.callback.failed",
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
		}
	}
}

// InProgress reports whether the user has an active form.
// Part of the router FSM interface.
func (a *App) InProgress(userID int64) bool {
	return a.sessions.InProgress(userID)
}

// userLanguage looks up the stored language, defaulting to English.
func (a *App) userLanguage(ctx context.Context, userID int64) string {
	lang, err := a.repo.UserLanguage(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "bot", "user.language.lookup_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
	}
	if lang == "" {
		return locale.LangEN
	}
	return lang
}
