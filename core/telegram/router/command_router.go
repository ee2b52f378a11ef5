package router

import (
	"context"
	"time"

	"github.com/gradnja/leadbot/core/logger"
	tg "github.com/gradnja/leadbot/core/telegram"
	"github.com/gradnja/leadbot/core/telegram/middleware"
	"log/slog"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	AdminChatID int64

	// MinInterval throttles command invocations per user. Zero disables
	// throttling. The limiter is scoped to commands only so that form
	// input, in particular media albums arriving as bursts of separate
	// messages, is never dropped.
	MinInterval time.Duration
}

// CommandRoutes prepares command handlers wrapped with shared middleware.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	var rl tg.Middleware
	if opts.MinInterval > 0 {
		rl = tg.Middleware{Name: "rate_limit", Use: middleware.RateLimit(opts.MinInterval)}
	}

	routes := make([]tg.Route, 0, len(reg.Commands()))
	for cmd, def := range reg.Commands() {
		h := def.Handler
		h = middleware.RecoverMiddleware(h)
		h = middleware.LoggerMiddleware(h)
		if rl.Use != nil {
			h = rl.Use(h)
		}
		if def.AdminOnly {
			h = middleware.AdminOnly(opts.AdminChatID)(h)
		}
		routes = append(routes, tg.Route{
			Endpoint: cmd,
			Handler:  h,
		})
	}

	logger.TWire.LogAttrs(context.Background(), slog.LevelInfo, "tg.wire",
		slog.String("event", "complete"),
		slog.Int("commands", len(reg.Commands())),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)

	return routes
}
