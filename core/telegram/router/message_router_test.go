package router

import (
	"testing"
	"time"

	tg "github.com/gradnja/leadbot/core/telegram"
	"github.com/gradnja/leadbot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

type stubFSM struct {
	active bool
	texts  int
	medias int
}

func (f *stubFSM) InProgress(int64) bool          { return f.active }
func (f *stubFSM) HandleText(tele.Context) error  { f.texts++; return nil }
func (f *stubFSM) HandleMedia(tele.Context) error { f.medias++; return nil }

// routeCtx is a minimal tele.Context for driving routes without a bot.
type routeCtx struct {
	tele.Context
	updateID int
	sender   *tele.User
	text     string
	store    map[string]any
}

func (c *routeCtx) Update() tele.Update      { return tele.Update{ID: c.updateID} }
func (c *routeCtx) Sender() *tele.User       { return c.sender }
func (c *routeCtx) Chat() *tele.Chat         { return &tele.Chat{ID: c.sender.ID} }
func (c *routeCtx) Callback() *tele.Callback { return nil }
func (c *routeCtx) Message() *tele.Message   { return &tele.Message{Text: c.text} }
func (c *routeCtx) Text() string             { return c.text }
func (c *routeCtx) Get(key string) any       { return c.store[key] }
func (c *routeCtx) Set(key string, val any) {
	if c.store == nil {
		c.store = make(map[string]any)
	}
	c.store[key] = val
}

func findRoute(t *testing.T, routes []tg.Route, endpoint string) tele.HandlerFunc {
	t.Helper()
	for _, r := range routes {
		if r.Endpoint == endpoint {
			return r.Handler
		}
	}
	t.Fatalf("no route for %s", endpoint)
	return nil
}

// Albums arrive as separate photo messages milliseconds apart. Every one
// must reach the form handler, so media routes carry no throttling.
func TestMediaBurstReachesHandler(t *testing.T) {
	fsm := &stubFSM{active: true}
	routes := TextRoutes(fsm, tg.NewRegistry(), TextOptions{})
	h := findRoute(t, routes, tele.OnPhoto)

	for i := 0; i < 3; i++ {
		c := &routeCtx{updateID: 100 + i, sender: &tele.User{ID: 7}}
		if err := h(c); err != nil {
			t.Fatalf("photo %d: %v", i, err)
		}
	}
	if fsm.medias != 3 {
		t.Errorf("media handled = %d, want 3", fsm.medias)
	}
}

func TestTextPrefersActiveForm(t *testing.T) {
	fsm := &stubFSM{active: true}
	routes := TextRoutes(fsm, tg.NewRegistry(), TextOptions{})
	h := findRoute(t, routes, tele.OnText)

	c := &routeCtx{updateID: 200, sender: &tele.User{ID: 7}, text: "Ivan"}
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	if fsm.texts != 1 {
		t.Errorf("text handled = %d, want 1", fsm.texts)
	}
}

// Command routes are the only place the per-user throttle applies.
func TestCommandRoutesThrottle(t *testing.T) {
	calls := 0
	reg := tg.NewRegistry()
	reg.RegisterCommand("/ping", commands.Command{
		Handler:     func(c tele.Context) error { calls++; return nil },
		Description: "ping",
	})

	routes := CommandRoutes(reg, CommandRouteOptions{MinInterval: time.Second})
	h := findRoute(t, routes, "/ping")

	for i := 0; i < 3; i++ {
		c := &routeCtx{updateID: 300 + i, sender: &tele.User{ID: 7}, text: "/ping"}
		if err := h(c); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
