package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Custom errors classifying API client failures
var ErrTransport = fmt.Errorf("practicum API request failed")
var ErrInvalidTimestamp = fmt.Errorf("from_date must be a non-negative Unix timestamp")

// UnexpectedStatusError indicates the API answered with a non-200 HTTP status.
// The code is kept for diagnostics.
type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("practicum API responded with HTTP %d, want %d", e.Code, http.StatusOK)
}

// HTTPClient queries the homework-status endpoint over HTTP. It implements
// the practicum.Client domain interface. Retries are not attempted here; the
// watcher retries naturally on its next scheduled cycle.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
}

// NewHTTPClient builds a client for the given endpoint. The timeout bounds
// the whole request and should stay well under the polling interval; its
// expiry surfaces as ErrTransport.
func NewHTTPClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
	}
}

// HomeworkStatuses performs GET <endpoint>?from_date=<ts> with the OAuth
// credential attached and returns the decoded JSON body opaquely. Failures
// below the HTTP layer (including a malformed body) classify as ErrTransport;
// a non-200 answer classifies as *UnexpectedStatusError.
func (c *HTTPClient) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	if fromDate < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTimestamp, fromDate)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrTransport, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UnexpectedStatusError{Code: resp.StatusCode}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response body: %v", ErrTransport, err)
	}

	c.logger.WithField("from_date", fromDate).Debug("Practicum API response received")
	return payload, nil
}
