package middleware

import (
	"sync"
	"time"

	"github.com/gradnja/leadbot/core/logger"
	tghelpers "github.com/gradnja/leadbot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// RateLimit drops updates from a user arriving faster than the given interval.
// Keeps one timestamp per user; stale entries are collected lazily.
func RateLimit(minInterval time.Duration) func(tele.HandlerFunc) tele.HandlerFunc {
	var (
		mu   sync.Mutex
		last = make(map[int64]time.Time)
	)
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}
			now := time.Now()
			mu.Lock()
			prev, seen := last[sender.ID]
			last[sender.ID] = now
			if len(last) > 4096 {
				for id, ts := range last {
					if now.Sub(ts) > time.Minute {
						delete(last, id)
					}
				}
			}
			mu.Unlock()
			if seen && now.Sub(prev) < minInterval {
				logger.Debug(tghelpers.BuildContext(c), "tg", "rate.limited",
					slog.Int64("user_id", sender.ID),
					slog.Duration("since_last", now.Sub(prev)),
				)
				return nil
			}
			return next(c)
		}
	}
}
