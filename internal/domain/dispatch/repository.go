package dispatch

import (
	"context"
	"time"
)

// Repository defines operations for recording and querying dispatched
// notifications.
type Repository interface {
	// Add stores the record and assigns its ID.
	Add(ctx context.Context, rec *Record) error
	// ListSince returns records sent at or after the given time, oldest first.
	ListSince(ctx context.Context, since time.Time) ([]*Record, error)
}
