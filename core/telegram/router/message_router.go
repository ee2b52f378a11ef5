package router

import (
	"time"

	tg "github.com/gradnja/leadbot/core/telegram"
	"github.com/gradnja/leadbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// FSM is the minimal interface the routers need from a conversation manager.
type FSM interface {
	InProgress(userID int64) bool
	HandleText(c tele.Context) error
	HandleMedia(c tele.Context) error
}

// TextOptions controls fallback behaviour for text and media updates.
type TextOptions struct {
	// MenuResolver maps reply-keyboard button labels to handlers.
	// Returns the handler, a name for logging and whether the label matched.
	MenuResolver func(text string) (tele.HandlerFunc, string, bool)

	UnknownText  tele.HandlerFunc
	UnknownMedia tele.HandlerFunc
}

// TextRoutes builds handlers for text and attachment routing.
// An in-progress conversation always wins; otherwise text is matched
// against menu buttons, then registered commands, then the fallback.
func TextRoutes(fsmMgr FSM, reg *tg.Registry, opts TextOptions) []tg.Route {
	textHandler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if fsmMgr != nil && c.Sender() != nil && fsmMgr.InProgress(c.Sender().ID) {
			return handleWithSummary(c, "fsm", start, "", func() error {
				return fsmMgr.HandleText(c)
			})
		}

		if opts.MenuResolver != nil {
			if h, name, ok := opts.MenuResolver(text); ok && h != nil {
				return handleWithSummary(c, "menu."+normalizeHandlerName(name), start, "", func() error {
					return h(c)
				})
			}
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				return handleWithSummary(c, normalizeHandlerName(key), start, "", func() error {
					return cmd.Handler(c)
				})
			}
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", nil)
		return nil
	}

	mediaHandler := func(c tele.Context) error {
		start := time.Now()
		if fsmMgr != nil && c.Sender() != nil && fsmMgr.InProgress(c.Sender().ID) {
			return handleWithSummary(c, "fsm_media", start, "", func() error {
				return fsmMgr.HandleMedia(c)
			})
		}
		if reg != nil {
			if fb := reg.MediaFallback(); fb != nil {
				return handleWithSummary(c, "unexpected_media", start, "", func() error {
					return fb(c)
				})
			}
		}
		if opts.UnknownMedia != nil {
			return handleWithSummary(c, "unexpected_media", start, "", func() error {
				return opts.UnknownMedia(c)
			})
		}
		logHandlerSummary(c, "unexpected_media", start, "skip", nil)
		return nil
	}

	wrap := func(h tele.HandlerFunc) tele.HandlerFunc {
		return middleware.RecoverMiddleware(middleware.LoggerMiddleware(h))
	}

	return []tg.Route{
		{Endpoint: tele.OnText, Handler: wrap(textHandler)},
		{Endpoint: tele.OnPhoto, Handler: wrap(mediaHandler)},
		{Endpoint: tele.OnDocument, Handler: wrap(mediaHandler)},
		{Endpoint: tele.OnVideo, Handler: wrap(mediaHandler)},
	}
}
