package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gradnja/leadbot/internal/form"
	"github.com/gradnja/leadbot/internal/storage"
)

func sampleDraft() form.Draft {
	return form.Draft{
		FullName:    "Ivan Petrov",
		Phone:       "+382 67 123 456",
		Email:       "ivan@example.com",
		Description: "Срочно нужен ремонт кухни. Бюджет: 5000",
		Files: []storage.Attachment{
			{Type: "photo", FileID: "ph-1"},
			{Type: "video", FileID: "vid-1"},
		},
	}
}

func TestRenderPreview(t *testing.T) {
	got := renderPreview(sampleDraft(), "en")
	for _, want := range []string{
		"Ivan Petrov",
		"+382 67 123 456",
		"ivan@example.com",
		"Срочно нужен ремонт кухни",
		"📎 Файлов прикреплено: 2",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("preview missing %q:\n%s", want, got)
		}
	}
}

func TestRenderPreviewEmailFallback(t *testing.T) {
	draft := sampleDraft()
	draft.Email = ""
	draft.Files = nil

	got := renderPreview(draft, "ru")
	if !strings.Contains(got, "не указан") {
		t.Errorf("missing email placeholder:\n%s", got)
	}
	if strings.Contains(got, "📎") {
		t.Errorf("file line should be absent without files:\n%s", got)
	}
}

func TestRenderPreviewEscapesHTML(t *testing.T) {
	draft := sampleDraft()
	draft.FullName = "<b>Ivan</b>"

	got := renderPreview(draft, "en")
	if strings.Contains(got, "<b>Ivan</b>") {
		t.Errorf("user input not escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;b&gt;Ivan&lt;/b&gt;") {
		t.Errorf("escaped name missing:\n%s", got)
	}
}

func TestRenderAdminNotification(t *testing.T) {
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	got := renderAdminNotification(context.Background(), 42, 777, sampleDraft(), "ru", at)

	for _, want := range []string{
		"🧱 <b>Новая заявка</b>",
		"👤 <b>Ivan Petrov</b>",
		"🆔 Telegram ID: <code>777</code>",
		"📞 Phone: <code>+382 67 123 456</code>",
		"✉️ Email: ivan@example.com",
		strings.Repeat("─", 40),
		"📋 СТРУКТУРИРОВАННАЯ ЗАЯВКА",
		"🏗️ Тип проекта: Ремонт",
		"💰 Упомянут бюджет: ~5000",
		"💾 DB Lead ID: #42",
		"🌍 Language: RU",
		"🕐 Time: 2026-03-14 15:09:26",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("notification missing %q:\n%s", want, got)
		}
	}
}

func TestRenderAdminNotificationEmailFallbackIsEnglish(t *testing.T) {
	draft := sampleDraft()
	draft.Email = ""
	got := renderAdminNotification(context.Background(), 1, 2, draft, "ru", time.Now())
	if !strings.Contains(got, "✉️ Email: not provided") {
		t.Errorf("admin email fallback should use English:\n%s", got)
	}
}

func TestAttachmentCaption(t *testing.T) {
	if got := attachmentCaption(7); got != "📎 Файл к заявке #7" {
		t.Errorf("caption = %q", got)
	}
}
