// internal/app/watcher_service.go
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"homework_notification_bot/internal/domain/dispatch"
	"homework_notification_bot/internal/domain/homework"
	"homework_notification_bot/internal/domain/practicum"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// WatcherService owns the homework polling loop: fetch, advance the poll
// cursor, validate, format and dispatch. All cross-cycle state (poll cursor,
// notification memory) lives on this struct; the mutex exists because the bot
// command handlers read a snapshot from other goroutines.
type WatcherService struct {
	api            practicum.Client
	telegramClient domainTelegram.Client
	dispatches     dispatch.Repository
	logger         *logrus.Entry
	chatID         int64
	interval       time.Duration
	clock          Clock

	mu               sync.Mutex
	timestamp        int64 // lower bound of the next query window (Unix)
	lastMessage      string
	lastErrorMessage string
}

func NewWatcherService(
	api practicum.Client,
	tc domainTelegram.Client,
	dr dispatch.Repository,
	logger *logrus.Entry,
	chatID int64,
	interval time.Duration,
	clock Clock,
) *WatcherService {
	return &WatcherService{
		api:            api,
		telegramClient: tc,
		dispatches:     dr,
		logger:         logger,
		chatID:         chatID,
		interval:       interval,
		clock:          clock,
	}
}

// Snapshot reports the watcher's current cross-cycle state.
type Snapshot struct {
	Cursor           int64
	LastMessage      string
	LastErrorMessage string
}

func (s *WatcherService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Cursor:           s.timestamp,
		LastMessage:      s.lastMessage,
		LastErrorMessage: s.lastErrorMessage,
	}
}

// Run executes polling cycles until ctx is cancelled. The poll cursor starts
// at the current time, so only changes after process start are reported. The
// interval is waited out after every cycle, successful or not.
func (s *WatcherService) Run(ctx context.Context) {
	s.mu.Lock()
	if s.timestamp == 0 {
		s.timestamp = s.clock.Now().Unix()
	}
	s.mu.Unlock()

	s.logger.WithField("interval", s.interval.String()).Info("Homework status watcher started")
	for {
		s.RunCycle(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("Homework status watcher stopped")
			return
		case <-s.clock.After(s.interval):
		}
	}
}

// RunCycle performs a single fetch/validate/dispatch pass. Any fault is
// recoverable: it is logged, reported to the chat once per distinct error
// text, and the cycle ends so the next scheduled one can retry.
func (s *WatcherService) RunCycle(ctx context.Context) {
	s.mu.Lock()
	fromDate := s.timestamp
	s.mu.Unlock()

	payload, err := s.api.HomeworkStatuses(ctx, fromDate)
	if err != nil {
		s.reportCycleError(ctx, err)
		return
	}

	// Advance the cursor from the server-reported time before anything else:
	// a later dispatch failure must not cause these records to be re-fetched.
	s.mu.Lock()
	s.timestamp = homework.CurrentDate(payload, fromDate)
	s.mu.Unlock()

	homeworks, err := homework.CheckResponse(payload)
	if err != nil {
		s.reportCycleError(ctx, err)
		return
	}

	if len(homeworks) == 0 {
		s.logger.Debug("Homework list is empty, no status changes")
		return
	}

	for _, hw := range homeworks {
		message, err := homework.ParseStatus(hw)
		if err != nil {
			// A malformed record aborts the rest of this cycle's records.
			s.reportCycleError(ctx, err)
			return
		}

		s.mu.Lock()
		duplicate := message == s.lastMessage
		s.mu.Unlock()
		if duplicate {
			s.logger.WithField("text", message).Debug("Notification matches the last sent message, skipping")
			continue
		}

		s.sendMessage(ctx, message, dispatch.KindStatus)

		s.mu.Lock()
		s.lastMessage = message
		s.mu.Unlock()
	}
}

// reportCycleError applies the shared recoverable-fault policy: log with full
// context and notify the chat unless the same error text was already reported.
func (s *WatcherService) reportCycleError(ctx context.Context, err error) {
	if ctx.Err() != nil {
		// Shutting down; the fault is a side effect of cancellation.
		return
	}

	s.logger.WithError(err).Error("Polling cycle failed")

	text := fmt.Sprintf("Ошибка в работе программы: %s", err)

	s.mu.Lock()
	duplicate := text == s.lastErrorMessage
	s.mu.Unlock()
	if duplicate {
		s.logger.Debug("Error notification matches the last reported error, skipping")
		return
	}

	s.sendMessage(ctx, text, dispatch.KindError)

	s.mu.Lock()
	s.lastErrorMessage = text
	s.mu.Unlock()
}

// sendMessage delivers text to the configured chat. Delivery failures are
// logged and swallowed: a broken chat transport must never stop the polling
// loop. Successful sends are recorded for the daily digest.
func (s *WatcherService) sendMessage(ctx context.Context, text string, kind dispatch.Kind) {
	if err := s.telegramClient.SendMessage(s.chatID, text, nil); err != nil {
		s.logger.WithError(err).WithField("text", text).Error("Failed to deliver Telegram message")
		return
	}
	s.logger.WithField("text", text).Debug("Telegram message delivered")

	rec := &dispatch.Record{
		ChatID: s.chatID,
		Kind:   kind,
		Text:   text,
		SentAt: s.clock.Now(),
	}
	if err := s.dispatches.Add(ctx, rec); err != nil {
		s.logger.WithError(err).Warn("Failed to record dispatched notification")
	}
}
