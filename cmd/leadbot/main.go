package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/gradnja/leadbot/core/bootstrap"
	coreconfig "github.com/gradnja/leadbot/core/config"
	"github.com/gradnja/leadbot/core/logger"
	tg "github.com/gradnja/leadbot/core/telegram"
	"github.com/gradnja/leadbot/core/telegram/router"
	"github.com/gradnja/leadbot/internal/bot"
	"github.com/gradnja/leadbot/internal/storage"
	"log/slog"
)

const defaultConfigPath = "config.yaml"

func main() {
	if err := run(); err != nil {
		log.Fatalf("leadbot: %v", err)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := coreconfig.Load(cfgPath)
	if err != nil {
		return err
	}

	result, err := bootstrap.Run(bootstrap.Options{Config: cfg})
	if err != nil {
		return err
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()
	defer func() {
		if err := result.DB.Close(); err != nil {
			logger.DB.Warn("db close failed",
				slog.String("event", "close"),
				slog.String("err", err.Error()),
			)
		}
	}()

	repo := storage.NewRepo(result.DB, cfg.Database.Driver)
	app := bot.New(cfg, repo)

	reg := tg.NewRegistry()
	app.Register(reg)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminChatID: cfg.Telegram.AdminChatID,
		MinInterval: 300 * time.Millisecond,
	})
	routes = append(routes, router.TextRoutes(app, reg, router.TextOptions{
		MenuResolver: app.MenuResolver,
	})...)
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startedAt := time.Now()
	appLog := logger.L.With("component", "app")

	return tg.RunTelegram(ctx, tg.RunOptions{
		Config:   cfg,
		Routes:   routes,
		Commands: reg.ListCommands(true),
		OnStart: func(ctx context.Context, b *tele.Bot) error {
			app.SetBot(b)
			appLog.Info("app ready",
				slog.String("event", "ready"),
				slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
			)
			return nil
		},
		OnStop: func(ctx context.Context, b *tele.Bot) error {
			appLog.Info("shutting down...",
				slog.String("event", "shutdown"),
			)
			app.Close()
			return nil
		},
	})
}
