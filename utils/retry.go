package utils

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// RetryConfig holds the parameters for the retry strategy. The crawl itself
// never retries pages (a blocked or failed request is abandoned); this is
// used only for infrastructure setup such as the database connection.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Logger      *log.Logger
}

// Do executes fn with exponential back-off retry logic.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	var lastErr error
	delay := r.BaseDelay

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < r.MaxAttempts {
			r.Logger.Warn("retrying operation",
				"op", operationName, "attempt", attempt, "max", r.MaxAttempts,
				"delay", delay, "err", lastErr)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, r.MaxAttempts, lastErr)
}
