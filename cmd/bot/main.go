package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/memory"
	ipracticum "homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	itelegram "homework_notification_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Missing credentials can never be recovered from; exit non-zero so a
		// supervisor sees the failure.
		logrus.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	log := logger.New(cfg)
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d, Poll interval: %s",
		cfg.LogLevel, cfg.Environment, cfg.TelegramChatID, cfg.PollInterval)

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			log.WithError(err).Error("telebot error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}

	tgClient := itelegram.NewTelebotAdapter(bot)
	apiClient := ipracticum.NewHTTPClient(
		cfg.Endpoint,
		cfg.PracticumToken,
		cfg.RequestTimeout,
		log.WithField("service", "practicum_client"),
	)
	dispatchRepo := memory.NewDispatchRepository()
	log.Info("Dispatch repository initialized.")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := app.NewWatcherService(
		apiClient,
		tgClient,
		dispatchRepo,
		log.WithField("service", "watcher"),
		cfg.TelegramChatID,
		cfg.PollInterval,
		app.SystemClock,
	)
	log.Info("Watcher service initialized.")

	var digestScheduler *scheduler.DigestScheduler
	if cfg.DigestEnabled {
		digestService := app.NewDigestService(
			dispatchRepo,
			tgClient,
			log.WithField("service", "digest"),
			cfg.TelegramChatID,
			app.SystemClock,
		)
		digestScheduler = scheduler.NewDigestScheduler(
			digestService,
			log.WithField("service", "scheduler"),
			cfg.CronSpecDailyDigest,
		)
		digestScheduler.Start()
	}

	itelegram.RegisterBotCommands(ctx, bot, watcher, dispatchRepo, cfg.TelegramChatID, log.WithField("service", "bot_commands"))
	log.Info("Bot command handlers registered.")

	go bot.Start()
	go watcher.Run(ctx)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down application...")
	cancel()
	if digestScheduler != nil {
		digestScheduler.Stop()
	}
	bot.Stop()
	log.Info("Application shut down gracefully.")
}
