package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
)

const (
	maxAttempts      = 3
	defaultBaseDelay = time.Second
)

type action int

const (
	actionSucceed action = iota
	actionRetry
	actionRateLimited
	actionFail
)

func (a action) String() string {
	return [...]string{"succeed", "retry", "rate_limited", "fail"}[a]
}

// retryDecision maps the outcome of one attempt to what the client does next.
// Network failures and 5xx are retried; 403 and every other non-2xx are final.
func retryDecision(status int, err error) action {
	switch {
	case err != nil:
		return actionRetry
	case status >= 200 && status < 300:
		return actionSucceed
	case status == http.StatusForbidden:
		return actionRateLimited
	case status >= 500:
		return actionRetry
	default:
		return actionFail
	}
}

// checkRetry adapts retryDecision to retryablehttp.CheckRetry.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	return retryDecision(status, err) == actionRetry, nil
}

// linearBackoff waits base × n after the n-th failed attempt.
func linearBackoff(base, _ time.Duration, attemptNum int, _ *http.Response) time.Duration {
	return base * time.Duration(attemptNum+1)
}

// retryLogger bridges retryablehttp's leveled logger onto pkg/logger.
type retryLogger struct{}

func (retryLogger) Error(msg string, keysAndValues ...any) {
	logger.Error("[retry] %s%s", msg, formatKeysAndValues(keysAndValues))
}

func (retryLogger) Warn(msg string, keysAndValues ...any) {
	logger.Warn("[retry] %s%s", msg, formatKeysAndValues(keysAndValues))
}

func (retryLogger) Info(msg string, keysAndValues ...any) {
	logger.Info("[retry] %s%s", msg, formatKeysAndValues(keysAndValues))
}

func (retryLogger) Debug(msg string, keysAndValues ...any) {
	logger.Debug("[retry] %s%s", msg, formatKeysAndValues(keysAndValues))
}

func formatKeysAndValues(kv []any) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	return b.String()
}
