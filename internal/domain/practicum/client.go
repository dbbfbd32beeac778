package practicum

import "context"

// Client defines an interface for querying the homework-review API.
// This decouples the polling logic from the HTTP transport.
type Client interface {
	// HomeworkStatuses fetches homework records changed since the given
	// Unix timestamp and returns the decoded JSON payload opaquely.
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}
