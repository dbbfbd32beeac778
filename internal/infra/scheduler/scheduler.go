package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DigestService is the slice of the app layer the scheduler needs.
type DigestService interface {
	SendDailyDigest(ctx context.Context) error
}

// DigestScheduler fires the daily digest on a cron spec.
type DigestScheduler struct {
	cronEngine *cron.Cron
	digest     DigestService
	logger     *logrus.Entry
	cronSpec   string
}

func NewDigestScheduler(digest DigestService, logger *logrus.Entry, cronSpec string) *DigestScheduler {
	return &DigestScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		digest:     digest,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (s *DigestScheduler) Start() {
	s.logger.Info("Starting digest scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for daily digest")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := s.digest.SendDailyDigest(ctx); err != nil {
			s.logger.WithError(err).Error("Error during daily digest")
		}
	})
	if err != nil {
		s.logger.Fatalf("Could not add daily digest cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Digest scheduler started")
}

func (s *DigestScheduler) Stop() {
	s.logger.Info("Stopping digest scheduler...")
	ctx := s.cronEngine.Stop() // Waits for a running job to finish.
	<-ctx.Done()
	s.logger.Info("Digest scheduler gracefully stopped")
}
