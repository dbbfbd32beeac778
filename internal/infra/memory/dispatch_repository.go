package memory

import (
	"context"
	"sync"
	"time"

	"homework_notification_bot/internal/domain/dispatch"
)

// DispatchRepository is an in-memory implementation of dispatch.Repository.
// State is process-local on purpose: notification history does not survive a
// restart. The mutex matters because the digest cron job and the bot command
// handlers read while the watcher goroutine writes.
type DispatchRepository struct {
	mu      sync.Mutex
	lastID  int64
	records []*dispatch.Record
}

func NewDispatchRepository() *DispatchRepository {
	return &DispatchRepository{}
}

func (r *DispatchRepository) Add(_ context.Context, rec *dispatch.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	rec.ID = r.lastID
	stored := *rec
	r.records = append(r.records, &stored)
	return nil
}

func (r *DispatchRepository) ListSince(_ context.Context, since time.Time) ([]*dispatch.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*dispatch.Record
	for _, rec := range r.records {
		if rec.SentAt.Before(since) {
			continue
		}
		c := *rec
		out = append(out, &c)
	}
	return out, nil
}
