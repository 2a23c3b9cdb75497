package github

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/KOFI-GYIMAH/portfolio-api/internal/metrics"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
)

// Quota is the last known state of one GitHub rate limit resource.
type Quota struct {
	Resource  string    `json:"resource"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Reset     time.Time `json:"reset"`
	Observed  time.Time `json:"observed"`
}

// RateLimitTracker records the quota GitHub reports. It only observes:
// it never delays or replays a request.
type RateLimitTracker struct {
	mu      sync.Mutex
	quotas  map[string]Quota
	lowWarn int
	metrics *metrics.Metrics
}

func NewRateLimitTracker(m *metrics.Metrics) *RateLimitTracker {
	return &RateLimitTracker{
		quotas:  make(map[string]Quota),
		lowWarn: 100,
		metrics: m,
	}
}

// Observe stores a quota reading, warns when it runs low and exports it.
func (r *RateLimitTracker) Observe(q Quota) {
	if q.Resource == "" {
		q.Resource = "graphql"
	}
	if q.Observed.IsZero() {
		q.Observed = time.Now()
	}

	r.mu.Lock()
	r.quotas[q.Resource] = q
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.RateLimitRemaining.WithLabelValues(q.Resource).Set(float64(q.Remaining))
	}

	if q.Remaining < r.lowWarn {
		logger.Warn("[RateLimiter] Low %s rate limit: %d remaining. Resets at %s", q.Resource, q.Remaining, q.Reset.Format(time.RFC1123))
	}
}

// Snapshot returns a copy of every known quota.
func (r *RateLimitTracker) Snapshot() map[string]Quota {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]Quota, len(r.quotas))
	for k, v := range r.quotas {
		out[k] = v
	}
	return out
}

func (r *RateLimitTracker) updateFromHeaders(headers http.Header) {
	remaining := headers.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return
	}

	var q Quota
	q.Resource = headers.Get("X-RateLimit-Resource")

	val, err := strconv.Atoi(remaining)
	if err != nil {
		return
	}
	q.Remaining = val

	if limit, err := strconv.Atoi(headers.Get("X-RateLimit-Limit")); err == nil {
		q.Limit = limit
	}

	if reset, err := strconv.ParseInt(headers.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		q.Reset = time.Unix(reset, 0)
	}

	r.Observe(q)
}

func (r *RateLimitTracker) Middleware(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		if err != nil {
			logger.Debug("Network error in RoundTrip: %v", err)
			return nil, err
		}

		r.updateFromHeaders(resp.Header)
		return resp, nil
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
