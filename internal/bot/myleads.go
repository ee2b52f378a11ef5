package bot

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/gradnja/leadbot/core/logger"
	"github.com/gradnja/leadbot/core/telegram/callbacks"
	"github.com/gradnja/leadbot/core/telegram/format"
	tghelpers "github.com/gradnja/leadbot/core/telegram/helpers"
	"github.com/gradnja/leadbot/internal/locale"
	"log/slog"
)

// cmdMyLeads lists the user's submitted requests.
func (a *App) cmdMyLeads(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	leads, err := a.repo.LeadsByUser(ctx, userID)
	if err != nil {
		logger.Error(ctx, "bot", "leads.list_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendHTML(c, locale.Get("error_occurred", lang))
	}

	if len(leads) == 0 {
		return tghelpers.SendHTML(c, locale.Get("no_leads", lang), mainMenuKeyboard(lang))
	}

	var b strings.Builder
	b.WriteString(locale.Get("my_leads", lang))
	for _, lead := range leads {
		fmt.Fprintf(&b, "📋 <b>Заявка #%d</b>\n📝 %s\n📅 %s\n───────────────\n\n",
			lead.ID,
			format.EscapeHTML(format.Truncate(lead.Description, 50)),
			lead.CreatedDate(),
		)
	}
	return tghelpers.SendHTML(c, b.String(), mainMenuKeyboard(lang))
}

// cmdAllLeads lists every stored lead. Reachable only from the admin chat.
func (a *App) cmdAllLeads(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)

	leads, err := a.repo.AllLeads(ctx)
	if err != nil {
		logger.Error(ctx, "bot", "leads.list_failed",
			slog.String("err", err.Error()),
		)
		return tghelpers.SendHTML(c, locale.Get("error_occurred", locale.LangEN))
	}
	if len(leads) == 0 {
		return tghelpers.SendHTML(c, locale.Get("no_leads", locale.LangEN))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>Leads: %d</b>\n\n", len(leads))
	for _, lead := range leads {
		fmt.Fprintf(&b, "#%d | <code>%d</code> | %s | %s\n",
			lead.ID,
			lead.TgUserID,
			format.EscapeHTML(format.Truncate(lead.Description, 40)),
			lead.CreatedDate(),
		)
	}
	return tghelpers.SendHTML(c, b.String())
}

// btnCancelLead shows the list of leads available for cancellation.
func (a *App) btnCancelLead(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	leads, err := a.repo.LeadsByUser(ctx, userID)
	if err != nil {
		logger.Error(ctx, "bot", "leads.list_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return tghelpers.SendHTML(c, locale.Get("error_occurred", lang))
	}
	if len(leads) == 0 {
		return tghelpers.SendHTML(c, locale.Get("no_leads", lang), mainMenuKeyboard(lang))
	}

	return tghelpers.SendHTML(c, locale.Get("choose_lead_to_cancel", lang), leadsListKeyboard(leads, lang))
}

// cbSelectLeadToCancel shows the confirmation for one chosen lead.
func (a *App) cbSelectLeadToCancel(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	leadID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: locale.Get("cancel_failed", lang), ShowAlert: true})
	}

	lead, err := a.repo.LeadByID(ctx, leadID)
	if err != nil {
		logger.Error(ctx, "bot", "lead.lookup_failed",
			slog.Int64("lead_id", leadID),
			slog.String("err", err.Error()),
		)
		return c.Respond(&tele.CallbackResponse{Text: locale.Get("error_occurred", lang), ShowAlert: true})
	}
	if lead == nil || lead.TgUserID != userID {
		return c.Respond(&tele.CallbackResponse{Text: locale.Get("cancel_failed", lang), ShowAlert: true})
	}

	a.cancels.Set(userID, stateCancelConfirm, leadID)

	text := locale.Format("confirm_cancel_lead", lang,
		"lead_id", fmt.Sprintf("%d", leadID),
		"description", format.EscapeHTML(format.Truncate(lead.Description, 100)),
		"created_at", lead.CreatedDate(),
	)
	return tghelpers.EditOrSendHTML(c, text, confirmCancelKeyboard(lang))
}

// cbCancelLeadConfirm deletes the selected lead.
func (a *App) cbCancelLeadConfirm(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	sess := a.cancels.Get(userID)
	leadID := sess.Data
	a.cancels.Clear(userID)

	if sess.State != stateCancelConfirm || leadID == 0 {
		return c.Respond(&tele.CallbackResponse{Text: locale.Get("cancel_failed", lang), ShowAlert: true})
	}

	deleted, err := a.repo.DeleteLead(ctx, leadID, userID)
	if err != nil {
		logger.Error(ctx, "bot", "lead.delete_failed",
			slog.Int64("lead_id", leadID),
			slog.String("err", err.Error()),
		)
		return c.Respond(&tele.CallbackResponse{Text: locale.Get("error_occurred", lang), ShowAlert: true})
	}
	if !deleted {
		return c.Respond(&tele.CallbackResponse{Text: locale.Get("cancel_failed", lang), ShowAlert: true})
	}

	text := locale.Format("lead_cancelled", lang, "lead_id", fmt.Sprintf("%d", leadID))
	if err := tghelpers.EditOrSendHTML(c, text); err != nil {
		return err
	}
	return tghelpers.SendHTML(c, locale.Get("menu", lang), mainMenuKeyboard(lang))
}

// cbCancelLeadBack returns from the confirmation to the lead list.
func (a *App) cbCancelLeadBack(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.userLanguage(ctx, userID)

	a.cancels.Clear(userID)

	leads, err := a.repo.LeadsByUser(ctx, userID)
	if err != nil {
		logger.Error(ctx, "bot", "leads.list_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		return tghelpers.EditOrSendHTML(c, locale.Get("error_occurred", lang))
	}
	if len(leads) == 0 {
		return tghelpers.EditOrSendHTML(c, locale.Get("no_leads", lang))
	}
	return tghelpers.EditOrSendHTML(c, locale.Get("choose_lead_to_cancel", lang), leadsListKeyboard(leads, lang))
}

// cbLeadsBack closes the lead list and shows the command menu.
func (a *App) cbLeadsBack(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	lang := a.userLanguage(ctx, c.Sender().ID)
	return tghelpers.EditOrSendHTML(c, locale.Get("menu", lang))
}
