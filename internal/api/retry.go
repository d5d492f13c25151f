package api

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// RetryPolicy bounds how the client retries transient failures.
type RetryPolicy struct {
	MaxRetries int           // additional attempts after the first
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // ceiling for the backoff curve
}

// DefaultRetryPolicy matches the behavior the backend operators expect from
// clients: three retries, 500ms doubling, capped at 8s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   8 * time.Second,
	}
}

// backoff returns the delay before retry attempt (1-based), doubling from
// BaseDelay and capped at MaxDelay.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := p.BaseDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// retryableStatus reports whether an HTTP status is worth retrying. Server
// errors, throttling and request timeouts are transient; other client errors
// are not.
func retryableStatus(status int) bool {
	switch {
	case status >= 500:
		return true
	case status == http.StatusTooManyRequests:
		return true
	case status == http.StatusRequestTimeout:
		return true
	default:
		return false
	}
}

// retryAfter reads a Retry-After header given in seconds. Zero means the
// header was absent or unparseable and the normal backoff applies.
func retryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
