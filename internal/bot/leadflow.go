package bot

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/gradnja/leadbot/core/logger"
	"github.com/gradnja/leadbot/core/telegram/callbacks"
	tghelpers "github.com/gradnja/leadbot/core/telegram/helpers"
	"github.com/gradnja/leadbot/core/telegram/state"
	"github.com/gradnja/leadbot/internal/form"
	"github.com/gradnja/leadbot/internal/locale"
	"github.com/gradnja/leadbot/internal/storage"
	"log/slog"
)

// cmdNewLead starts the intake form. Users with a previous lead are
// offered its contact data for reuse.
func (a *App) cmdNewLead(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	a.sessions.Clear(userID)
	a.cancels.Clear(userID)

	var prior *form.Prior
	last, err := a.repo.LastLeadByUser(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "bot", "lead.last.lookup_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
	}
	if last != nil {
		prior = &form.Prior{
			FullName: last.FullName,
			Phone:    last.Phone,
			Email:    last.EmailOrEmpty(),
		}
	}

	return a.applyEvent(c, form.Start{Prior: prior})
}

// HandleText feeds a text answer into the form.
// Part of the router FSM interface.
func (a *App) HandleText(c tele.Context) error {
	return a.applyEvent(c, form.Text{Value: c.Text()})
}

// HandleMedia feeds an uploaded photo, document or video into the form.
// Part of the router FSM interface.
func (a *App) HandleMedia(c tele.Context) error {
	file, ok := attachmentFrom(c.Message())
	if !ok {
		return nil
	}
	return a.applyEvent(c, form.Attach{File: file})
}

func attachmentFrom(msg *tele.Message) (storage.Attachment, bool) {
	if msg == nil {
		return storage.Attachment{}, false
	}
	switch {
	case msg.Photo != nil:
		return storage.Attachment{Type: "photo", FileID: msg.Photo.FileID}, true
	case msg.Document != nil:
		return storage.Attachment{Type: "document", FileID: msg.Document.FileID}, true
	case msg.Video != nil:
		return storage.Attachment{Type: "video", FileID: msg.Video.FileID}, true
	}
	return storage.Attachment{}, false
}

// applyEvent runs one transition and performs its effects.
func (a *App) applyEvent(c tele.Context, event form.Event) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	sess := a.sessions.Get(userID)
	step := form.StepIdle
	if sess.State != state.StateIdle {
		step = form.Step(sess.State)
	}

	out := a.machine.Apply(step, sess.Data, event)

	if out.Submit {
		return a.submitLead(c, out.Draft, lang)
	}

	if out.Next == form.StepIdle {
		a.sessions.Clear(userID)
	} else {
		a.sessions.Set(userID, state.State(out.Next), out.Draft)
	}

	if out.Prompt != form.PromptNone {
		logger.Debug(ctx, "bot", "form.step",
			slog.Int64("user_id", userID),
			slog.String("from", string(step)),
			slog.String("to", string(out.Next)),
			slog.String("prompt", string(out.Prompt)),
		)
	}

	return a.respond(c, out, lang)
}

// respond renders the prompt for an outcome. Callback-originated
// updates edit the message in place; text answers get a fresh message.
func (a *App) respond(c tele.Context, out form.Outcome, lang string) error {
	send := tghelpers.SendHTML
	if c.Callback() != nil {
		send = tghelpers.EditOrSendHTML
	}

	switch out.Prompt {
	case form.PromptNone:
		return nil
	case form.PromptConfirmData:
		email := ""
		if out.Draft.Prior != nil {
			email = out.Draft.Prior.Email
		}
		if email == "" {
			email = locale.Get("email_not_provided", lang)
		}
		var name, phone string
		if out.Draft.Prior != nil {
			name, phone = out.Draft.Prior.FullName, out.Draft.Prior.Phone
		}
		text := locale.Format("confirm_old_data", lang,
			"full_name", name,
			"phone", phone,
			"email", email,
		)
		return send(c, text, confirmDataKeyboard(lang))
	case form.PromptStartNewLead:
		return send(c, locale.Get("start_new_lead", lang))
	case form.PromptAskName:
		return send(c, locale.Get("ask_name", lang))
	case form.PromptAskPhone:
		return send(c, locale.Get("ask_phone", lang))
	case form.PromptAskEmail:
		return send(c, locale.Get("ask_email", lang), skipKeyboard(lang))
	case form.PromptAskDescription:
		return send(c, locale.Get("ask_description", lang))
	case form.PromptAskFiles:
		return send(c, locale.Get("ask_files", lang), filesKeyboard(lang))
	case form.PromptInvalidPhone:
		return send(c, locale.Get("invalid_phone", lang))
	case form.PromptInvalidEmail:
		return send(c, locale.Get("invalid_email", lang), skipKeyboard(lang))
	case form.PromptDescriptionTooShort:
		return send(c, locale.Get("description_too_short", lang))
	case form.PromptFileReceived:
		return send(c, locale.Get("file_received", lang), filesKeyboard(lang))
	case form.PromptFileLimitReached:
		text := locale.Format("file_limit_reached", lang,
			"max_files", fmt.Sprintf("%d", a.machine.MaxFiles))
		return send(c, text, filesKeyboard(lang))
	case form.PromptPreview:
		return send(c, renderPreview(out.Draft, lang), confirmationKeyboard(lang))
	case form.PromptChooseField:
		return send(c, locale.Get("choose_field_to_edit", lang), editKeyboard(lang))
	case form.PromptCancelled:
		return send(c, locale.Get("cancelled", lang))
	}
	return nil
}

// submitLead persists the draft, queues the admin notification, clears
// the session and confirms to the user. A notification failure is
// logged but never shown to the user.
func (a *App) submitLead(c tele.Context, draft form.Draft, lang string) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID

	leadID, err := a.repo.SaveLead(ctx, storage.NewLead{
		TgUserID:    userID,
		FullName:    draft.FullName,
		Phone:       draft.Phone,
		Email:       draft.Email,
		Description: draft.Description,
		Files:       draft.Files,
	})
	if err != nil {
		logger.Error(ctx, "bot", "lead.save_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		a.sessions.Clear(userID)
		return tghelpers.EditOrSendHTML(c, locale.Get("error_occurred", lang))
	}

	logger.Info(ctx, "bot", "lead.submitted",
		slog.Int64("lead_id", leadID),
		slog.Int64("user_id", userID),
		slog.Int("files", len(draft.Files)),
	)

	a.notifyAdmin(ctx, leadID, userID, draft, lang)
	a.sessions.Clear(userID)

	if err := tghelpers.EditOrSendHTML(c, locale.Get("thank_you", lang)); err != nil {
		return err
	}
	return tghelpers.SendHTML(c, locale.Get("menu", lang), mainMenuKeyboard(lang))
}

// notifyAdmin queues the admin message plus attachment re-sends as a
// single ordered job.
func (a *App) notifyAdmin(ctx context.Context, leadID, tgUserID int64, draft form.Draft, lang string) {
	bot := a.Bot()
	if bot == nil {
		return
	}
	admin := tele.ChatID(a.cfg.Telegram.AdminChatID)
	text := renderAdminNotification(ctx, leadID, tgUserID, draft, lang, time.Now().In(a.cfg.Location()))
	files := draft.Files

	err := a.queue.Enqueue(ctx, "admin_notification", func() error {
		if _, err := bot.Send(admin, text, tele.ModeHTML); err != nil {
			return err
		}
		caption := attachmentCaption(leadID)
		for _, f := range files {
			var media interface{}
			switch f.Type {
			case "photo":
				media = &tele.Photo{File: tele.File{FileID: f.FileID}, Caption: caption}
			case "document":
				media = &tele.Document{File: tele.File{FileID: f.FileID}, Caption: caption}
			case "video":
				media = &tele.Video{File: tele.File{FileID: f.FileID}, Caption: caption}
			default:
				continue
			}
			if _, err := bot.Send(admin, media); err != nil {
				// The main notification already went out; skip the bad file.
				logger.Error(ctx, "notify", "notify.file_failed",
					slog.Int64("lead_id", leadID),
					slog.String("file_type", f.Type),
					slog.String("err", err.Error()),
				)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "notify", "notify.enqueue_failed",
			slog.Int64("lead_id", leadID),
			slog.String("err", err.Error()),
		)
	}
}

// Inline callback handlers for the form flow.

func (a *App) cbConfirmDataChoice(c tele.Context) error {
	switch callbacks.Payload(c) {
	case "use":
		return a.applyEvent(c, form.UsePrior{})
	case "change":
		return a.applyEvent(c, form.ChangeData{})
	}
	return nil
}

func (a *App) cbSkipEmail(c tele.Context) error {
	return a.applyEvent(c, form.SkipEmail{})
}

func (a *App) cbFilesDone(c tele.Context) error {
	return a.applyEvent(c, form.FilesDone{})
}

func (a *App) cbFormCancel(c tele.Context) error {
	return a.applyEvent(c, form.Cancel{})
}

func (a *App) cbConfirmSendLead(c tele.Context) error {
	return a.applyEvent(c, form.Send{})
}

func (a *App) cbConfirmEditLead(c tele.Context) error {
	return a.applyEvent(c, form.Edit{})
}

func (a *App) cbEditFieldChoice(c tele.Context) error {
	field := form.Field(callbacks.Payload(c))
	switch field {
	case form.FieldName, form.FieldPhone, form.FieldEmail, form.FieldDescription:
		return a.applyEvent(c, form.EditField{Field: field})
	}
	return nil
}
