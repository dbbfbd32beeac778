// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/domain/dispatch"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterBotCommands registers the /start and /status handlers. The bot
// serves exactly one chat; commands from anywhere else get a short refusal.
func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	watcher *app.WatcherService,
	dispatches dispatch.Repository,
	chatID int64,
	baseLogger *logrus.Entry,
) {
	b.Handle("/start", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/start").WithField("chat_id", c.Chat().ID)
		logCtx.Info("Processing /start command")

		if c.Chat().ID != chatID {
			logCtx.Warn("Command from an unconfigured chat")
			return c.Send("Этот бот обслуживает только одного пользователя.")
		}

		return c.Send("Привет! Я слежу за статусами проверки ваших домашних работ и сообщу, как только что-то изменится. Команда /status покажет текущее состояние.")
	})

	b.Handle("/status", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/status").WithField("chat_id", c.Chat().ID)
		logCtx.Info("Processing /status command")

		if c.Chat().ID != chatID {
			logCtx.Warn("Command from an unconfigured chat")
			return c.Send("Этот бот обслуживает только одного пользователя.")
		}

		snap := watcher.Snapshot()

		records, err := dispatches.ListSince(ctx, time.Time{})
		if err != nil {
			logCtx.WithError(err).Error("Failed to list dispatched notifications")
			return c.Send("Не удалось получить состояние. Попробуйте позже.")
		}

		var reply strings.Builder
		if snap.Cursor == 0 {
			reply.WriteString("Опрос ещё не запускался.\n")
		} else {
			cursorTime := time.Unix(snap.Cursor, 0).Format("2006-01-02 15:04:05")
			reply.WriteString(fmt.Sprintf("Следующий опрос начнётся с отметки: %s.\n", cursorTime))
		}
		if snap.LastMessage != "" {
			reply.WriteString(fmt.Sprintf("Последнее уведомление: %s\n", snap.LastMessage))
		} else {
			reply.WriteString("Уведомлений пока не было.\n")
		}
		if snap.LastErrorMessage != "" {
			reply.WriteString(fmt.Sprintf("Последняя ошибка: %s\n", snap.LastErrorMessage))
		}
		reply.WriteString(fmt.Sprintf("Всего отправлено сообщений: %d.", len(records)))

		return c.Send(reply.String())
	})
}
