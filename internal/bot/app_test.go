package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"
	_ "modernc.org/sqlite"

	coreconfig "github.com/gradnja/leadbot/core/config"
	"github.com/gradnja/leadbot/internal/form"
	"github.com/gradnja/leadbot/internal/locale"
	"github.com/gradnja/leadbot/internal/storage"
)

const testSchema = `
CREATE TABLE users (
    tg_user_id INTEGER PRIMARY KEY,
    language   TEXT NOT NULL CHECK (language IN ('ru', 'me', 'en')),
    created_at TEXT NOT NULL
);
CREATE TABLE leads (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    tg_user_id  INTEGER NOT NULL,
    full_name   TEXT NOT NULL,
    phone       TEXT NOT NULL,
    email       TEXT,
    description TEXT NOT NULL,
    files       TEXT,
    created_at  TEXT NOT NULL
);
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.MustExec(testSchema)

	cfg := &coreconfig.Config{}
	cfg.Telegram.AdminChatID = 42
	cfg.App.MaxFiles = 10
	cfg.App.Timezone = "UTC"

	app := New(cfg, storage.NewRepo(db, coreconfig.DriverSQLite))
	t.Cleanup(app.Close)
	return app
}

// testCtx is a minimal tele.Context for driving handlers without a bot.
// Methods the handlers do not touch fall through to the nil embedded
// interface and panic, which is the desired test failure mode.
type testCtx struct {
	tele.Context
	sender *tele.User
	text   string
	store  map[string]any
	sent   []string
}

func (c *testCtx) Update() tele.Update      { return tele.Update{ID: 1} }
func (c *testCtx) Sender() *tele.User       { return c.sender }
func (c *testCtx) Chat() *tele.Chat         { return &tele.Chat{ID: c.sender.ID} }
func (c *testCtx) Callback() *tele.Callback { return nil }
func (c *testCtx) Message() *tele.Message   { return &tele.Message{Text: c.text} }
func (c *testCtx) Text() string             { return c.text }
func (c *testCtx) Get(key string) any       { return c.store[key] }

func (c *testCtx) Set(key string, val any) {
	if c.store == nil {
		c.store = make(map[string]any)
	}
	c.store[key] = val
}

func (c *testCtx) Send(what any, _ ...any) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func TestCmdNewLeadStartsForm(t *testing.T) {
	app := newTestApp(t)
	c := &testCtx{sender: &tele.User{ID: 7}}

	if err := app.cmdNewLead(c); err != nil {
		t.Fatalf("cmdNewLead: %v", err)
	}
	if !app.InProgress(7) {
		t.Error("form should be in progress after /new")
	}
	if got := app.sessions.GetState(7); string(got) != string(form.StepName) {
		t.Errorf("state = %q, want %q", got, form.StepName)
	}
	if len(c.sent) != 1 || !strings.Contains(c.sent[0], locale.Get("start_new_lead", locale.LangEN)) {
		t.Errorf("sent = %q, want the new-lead prompt", c.sent)
	}
}

func TestCmdNewLeadOffersPriorData(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	if _, err := app.repo.SaveLead(ctx, storage.NewLead{
		TgUserID:    8,
		FullName:    "Ivan Petrov",
		Phone:       "+382 67 123 456",
		Description: "Complete kitchen renovation",
	}); err != nil {
		t.Fatalf("SaveLead: %v", err)
	}

	c := &testCtx{sender: &tele.User{ID: 8}}
	if err := app.cmdNewLead(c); err != nil {
		t.Fatalf("cmdNewLead: %v", err)
	}
	if got := app.sessions.GetState(8); string(got) != string(form.StepConfirmData) {
		t.Errorf("state = %q, want %q", got, form.StepConfirmData)
	}
	draft := app.sessions.Get(8).Data
	if draft.Prior == nil || draft.Prior.FullName != "Ivan Petrov" {
		t.Errorf("prior = %+v, want previous contact data", draft.Prior)
	}
}

func TestHandleTextAdvancesForm(t *testing.T) {
	app := newTestApp(t)
	c := &testCtx{sender: &tele.User{ID: 9}}
	if err := app.cmdNewLead(c); err != nil {
		t.Fatalf("cmdNewLead: %v", err)
	}

	c.text = "Ivan Petrov"
	if err := app.HandleText(c); err != nil {
		t.Fatalf("HandleText: %v", err)
	}
	if got := app.sessions.GetState(9); string(got) != string(form.StepPhone) {
		t.Errorf("state = %q, want %q", got, form.StepPhone)
	}
	if draft := app.sessions.Get(9).Data; draft.FullName != "Ivan Petrov" {
		t.Errorf("draft = %+v, want captured name", draft)
	}
}

func TestMenuResolver(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		label string
		name  string
	}{
		{"➕ Новая заявка", "new"},
		{"➕ Novi zahtjev", "new"},
		{"➕ New request", "new"},
		{"📋 Мои заявки", "my_leads"},
		{"📋 My requests", "my_leads"},
		{"❌ Otkazati zahtjev", "cancel_lead"},
		{"🌍 Change language", "language"},
	}
	for _, tc := range cases {
		h, name, ok := app.MenuResolver(tc.label)
		if !ok || h == nil {
			t.Errorf("label %q not resolved", tc.label)
			continue
		}
		if name != tc.name {
			t.Errorf("label %q resolved to %q, want %q", tc.label, name, tc.name)
		}
	}

	if _, _, ok := app.MenuResolver("random chat message"); ok {
		t.Error("plain text should not resolve to a menu entry")
	}
}

func TestInProgressFollowsSessions(t *testing.T) {
	app := newTestApp(t)

	if app.InProgress(1) {
		t.Error("fresh user should not be in progress")
	}
	app.sessions.SetState(1, "waiting_for_name")
	if !app.InProgress(1) {
		t.Error("user with active step should be in progress")
	}
	app.sessions.Clear(1)
	if app.InProgress(1) {
		t.Error("cleared user should not be in progress")
	}
}

func TestAttachmentFrom(t *testing.T) {
	cases := []struct {
		name     string
		msg      *tele.Message
		wantType string
		wantID   string
		wantOK   bool
	}{
		{
			name:     "photo",
			msg:      &tele.Message{Photo: &tele.Photo{File: tele.File{FileID: "p1"}}},
			wantType: "photo", wantID: "p1", wantOK: true,
		},
		{
			name:     "document",
			msg:      &tele.Message{Document: &tele.Document{File: tele.File{FileID: "d1"}}},
			wantType: "document", wantID: "d1", wantOK: true,
		},
		{
			name:     "video",
			msg:      &tele.Message{Video: &tele.Video{File: tele.File{FileID: "v1"}}},
			wantType: "video", wantID: "v1", wantOK: true,
		},
		{name: "text only", msg: &tele.Message{Text: "hello"}, wantOK: false},
		{name: "nil", msg: nil, wantOK: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := attachmentFrom(tc.msg)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && (got.Type != tc.wantType || got.FileID != tc.wantID) {
				t.Errorf("got %+v", got)
			}
		})
	}
}
