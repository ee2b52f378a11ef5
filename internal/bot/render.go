package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gradnja/leadbot/core/telegram/format"
	"github.com/gradnja/leadbot/internal/enhance"
	"github.com/gradnja/leadbot/internal/form"
	"github.com/gradnja/leadbot/internal/locale"
)

// renderPreview builds the preview message shown before submission.
// User-entered fields are escaped because messages go out in HTML mode.
func renderPreview(draft form.Draft, lang string) string {
	email := draft.Email
	if email == "" {
		email = locale.Get("email_not_provided", lang)
	}
	text := locale.Format("preview_lead", lang,
		"full_name", format.EscapeHTML(draft.FullName),
		"phone", format.EscapeHTML(draft.Phone),
		"email", format.EscapeHTML(email),
		"description", format.EscapeHTML(draft.Description),
	)
	if n := len(draft.Files); n > 0 {
		text += fmt.Sprintf("\n📎 Файлов прикреплено: %d", n)
	}
	return text
}

// renderAdminNotification builds the HTML message sent to the admin
// chat after a lead is persisted.
func renderAdminNotification(ctx context.Context, leadID, tgUserID int64, draft form.Draft, lang string, at time.Time) string {
	email := draft.Email
	if email == "" {
		email = locale.Get("email_not_provided", locale.LangEN)
	}

	enhanced := enhance.Enhance(ctx, draft.Description, draft.FullName, draft.Phone, draft.Email, lang)

	separator := strings.Repeat("─", 40)
	return fmt.Sprintf(
		"🧱 <b>%s</b>\n\n"+
			"👤 <b>%s</b>\n"+
			"🆔 Telegram ID: <code>%d</code>\n"+
			"📞 Phone: <code>%s</code>\n"+
			"✉️ Email: %s\n\n"+
			"%s\n"+
			"%s\n"+
			"%s\n\n"+
			"💾 DB Lead ID: #%d\n"+
			"🌍 Language: %s\n"+
			"🕐 Time: %s",
		locale.Get("admin_notification", lang),
		format.EscapeHTML(draft.FullName),
		tgUserID,
		format.EscapeHTML(draft.Phone),
		format.EscapeHTML(email),
		separator,
		format.EscapeHTML(enhanced),
		separator,
		leadID,
		strings.ToUpper(lang),
		at.Format("2006-01-02 15:04:05"),
	)
}

// attachmentCaption labels re-sent lead files in the admin chat.
func attachmentCaption(leadID int64) string {
	return fmt.Sprintf("📎 Файл к заявке #%d", leadID)
}
