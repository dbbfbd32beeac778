package dispatch

import "time"

// Kind distinguishes what a dispatched notification was about.
type Kind string

const (
	KindStatus Kind = "STATUS" // homework status change
	KindError  Kind = "ERROR"  // recoverable fault reported to the chat
)

// Record represents one notification delivered to the chat. Records live in
// process memory only and exist for the daily digest and the /status command.
type Record struct {
	ID     int64
	ChatID int64
	Kind   Kind
	Text   string
	SentAt time.Time
}
