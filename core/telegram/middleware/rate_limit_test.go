package middleware

import (
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"
)

// limiterCtx is a minimal tele.Context for exercising middleware without a
// bot. Methods the middleware does not touch fall through to the nil embedded
// interface and panic.
type limiterCtx struct {
	tele.Context
	sender *tele.User
	store  map[string]any
}

func (c *limiterCtx) Update() tele.Update { return tele.Update{ID: 1} }
func (c *limiterCtx) Sender() *tele.User  { return c.sender }
func (c *limiterCtx) Chat() *tele.Chat {
	if c.sender == nil {
		return nil
	}
	return &tele.Chat{ID: c.sender.ID}
}
func (c *limiterCtx) Callback() *tele.Callback { return nil }
func (c *limiterCtx) Message() *tele.Message   { return &tele.Message{} }
func (c *limiterCtx) Text() string             { return "" }
func (c *limiterCtx) Get(key string) any       { return c.store[key] }
func (c *limiterCtx) Set(key string, val any) {
	if c.store == nil {
		c.store = make(map[string]any)
	}
	c.store[key] = val
}

func TestRateLimitDropsRapidRepeats(t *testing.T) {
	calls := 0
	h := RateLimit(time.Second)(func(c tele.Context) error {
		calls++
		return nil
	})

	c := &limiterCtx{sender: &tele.User{ID: 1}}
	for i := 0; i < 3; i++ {
		if err := h(c); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRateLimitTracksUsersIndependently(t *testing.T) {
	calls := 0
	h := RateLimit(time.Second)(func(c tele.Context) error {
		calls++
		return nil
	})

	if err := h(&limiterCtx{sender: &tele.User{ID: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := h(&limiterCtx{sender: &tele.User{ID: 2}}); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRateLimitAllowsAfterInterval(t *testing.T) {
	calls := 0
	h := RateLimit(10 * time.Millisecond)(func(c tele.Context) error {
		calls++
		return nil
	})

	c := &limiterCtx{sender: &tele.User{ID: 1}}
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	time.Sleep(25 * time.Millisecond)
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRateLimitPassesNilSender(t *testing.T) {
	calls := 0
	h := RateLimit(time.Second)(func(c tele.Context) error {
		calls++
		return nil
	})

	c := &limiterCtx{}
	for i := 0; i < 2; i++ {
		if err := h(c); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
