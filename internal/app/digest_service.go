// internal/app/digest_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_notification_bot/internal/domain/dispatch"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

const digestWindow = 24 * time.Hour

// DigestService summarizes the notifications dispatched over the last day
// into a single chat message. Invoked by the cron scheduler.
type DigestService struct {
	dispatches     dispatch.Repository
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
	chatID         int64
	clock          Clock
}

func NewDigestService(
	dr dispatch.Repository,
	tc domainTelegram.Client,
	logger *logrus.Entry,
	chatID int64,
	clock Clock,
) *DigestService {
	return &DigestService{
		dispatches:     dr,
		telegramClient: tc,
		logger:         logger,
		chatID:         chatID,
		clock:          clock,
	}
}

// SendDailyDigest sends the one-line summary for the past 24 hours. When
// nothing was dispatched in the window, no message is sent.
func (s *DigestService) SendDailyDigest(ctx context.Context) error {
	since := s.clock.Now().Add(-digestWindow)

	records, err := s.dispatches.ListSince(ctx, since)
	if err != nil {
		return fmt.Errorf("failed to list dispatched notifications: %w", err)
	}
	if len(records) == 0 {
		s.logger.Debug("No notifications dispatched in the last day, digest skipped")
		return nil
	}

	var statusCount, errorCount int
	for _, rec := range records {
		switch rec.Kind {
		case dispatch.KindError:
			errorCount++
		default:
			statusCount++
		}
	}

	text := fmt.Sprintf(
		"Сводка за сутки: уведомлений о статусах — %d, сообщений об ошибках — %d.",
		statusCount, errorCount,
	)
	if err := s.telegramClient.SendMessage(s.chatID, text, nil); err != nil {
		return fmt.Errorf("failed to send daily digest: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"status_count": statusCount,
		"error_count":  errorCount,
	}).Info("Daily digest sent")
	return nil
}
