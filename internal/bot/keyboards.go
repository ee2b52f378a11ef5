package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/gradnja/leadbot/core/telegram/format"
	"github.com/gradnja/leadbot/core/telegram/keyboard"
	"github.com/gradnja/leadbot/internal/form"
	"github.com/gradnja/leadbot/internal/locale"
	"github.com/gradnja/leadbot/internal/storage"
)

// Callback uniques. Inline button data is "<unique>|<payload>".
const (
	cbLang           = "lang"
	cbChangeLang     = "change_lang"
	cbConfirmData    = "confirm_data"
	cbSkipEmail      = "skip_email"
	cbFilesDone      = "files_done"
	cbFilesSkip      = "files_skip"
	cbFilesCancel    = "files_cancel"
	cbConfirmSend    = "confirm_send"
	cbConfirmEdit    = "confirm_edit"
	cbConfirmCancel  = "confirm_cancel"
	cbEditField      = "edit_field"
	cbSelectLead     = "select_lead"
	cbCancelLeadYes  = "cancel_lead_confirm"
	cbCancelLeadBack = "cancel_lead_back"
	cbLeadsBack      = "leads_back"
	cbLangChangeYes  = "lang_change_yes"
	cbLangChangeNo   = "lang_change_no"
)

// languageKeyboard offers one button per supported language.
// unique is cbLang on first contact and cbChangeLang for /language.
func languageKeyboard(unique string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(locale.SupportedLanguages))
	for _, code := range locale.SupportedLanguages {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   locale.LanguageNames[code],
			Unique: unique,
			Data:   code,
		})
	}
	return keyboard.InlineButtons(buttons)
}

// confirmationKeyboard is shown under the preview: Send / Edit on one
// row, Cancel below.
func confirmationKeyboard(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: locale.Get("btn_send", lang), Unique: cbConfirmSend},
			{Text: locale.Get("btn_edit", lang), Unique: cbConfirmEdit},
		},
		[]keyboard.InlineBtn{
			{Text: locale.Get("btn_cancel", lang), Unique: cbConfirmCancel},
		},
	)
}

// editKeyboard picks the field to change, two buttons per row.
func editKeyboard(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: locale.Get("btn_name", lang), Unique: cbEditField, Data: string(form.FieldName)},
			{Text: locale.Get("btn_phone", lang), Unique: cbEditField, Data: string(form.FieldPhone)},
		},
		[]keyboard.InlineBtn{
			{Text: locale.Get("btn_email", lang), Unique: cbEditField, Data: string(form.FieldEmail)},
			{Text: locale.Get("btn_description", lang), Unique: cbEditField, Data: string(form.FieldDescription)},
		},
	)
}

// skipKeyboard accompanies the email prompt.
func skipKeyboard(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: locale.Get("btn_skip", lang), Unique: cbSkipEmail},
	})
}

// filesKeyboard is shown during attachment upload: Done / Skip, then Cancel.
func filesKeyboard(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{
			{Text: locale.Get("btn_done", lang), Unique: cbFilesDone},
			{Text: locale.Get("btn_skip", lang), Unique: cbFilesSkip},
		},
		[]keyboard.InlineBtn{
			{Text: locale.Get("btn_cancel", lang), Unique: cbFilesCancel},
		},
	)
}

// confirmDataKeyboard offers reuse of the previous lead's contact data.
func confirmDataKeyboard(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: locale.Get("btn_use_data", lang), Unique: cbConfirmData, Data: "use"},
		{Text: locale.Get("btn_change_data", lang), Unique: cbConfirmData, Data: "change"},
	})
}

// mainMenuKeyboard is the persistent reply keyboard, two buttons per row.
func mainMenuKeyboard(lang string) *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{locale.Get("btn_new_lead", lang), locale.Get("btn_my_leads", lang)},
		[]string{locale.Get("btn_cancel_lead", lang), locale.Get("btn_change_language", lang)},
	)
}

// leadsListKeyboard lists the user's leads for cancellation, one per row,
// with a back button at the bottom.
func leadsListKeyboard(leads []storage.Lead, lang string) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(leads)+1)
	for _, lead := range leads {
		label := fmt.Sprintf("#%d - %s", lead.ID, format.Truncate(lead.Description, 30))
		rows = append(rows, []keyboard.InlineBtn{
			{Text: label, Unique: cbSelectLead, Data: fmt.Sprintf("%d", lead.ID)},
		})
	}
	rows = append(rows, []keyboard.InlineBtn{
		{Text: locale.Get("btn_back", lang), Unique: cbLeadsBack},
	})
	return keyboard.InlineButtonsRows(rows...)
}

// confirmCancelKeyboard confirms deleting one lead.
func confirmCancelKeyboard(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: locale.Get("btn_confirm", lang), Unique: cbCancelLeadYes},
		{Text: locale.Get("btn_back", lang), Unique: cbCancelLeadBack},
	})
}

// languageChangeConfirmKeyboard warns about resetting an active form.
func languageChangeConfirmKeyboard(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: locale.Get("btn_confirm_language_change", lang), Unique: cbLangChangeYes},
		{Text: locale.Get("btn_continue_form", lang), Unique: cbLangChangeNo},
	})
}
