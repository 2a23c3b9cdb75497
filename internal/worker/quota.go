package worker

import (
	"context"
	"net/http"
	"time"

	"github.com/KOFI-GYIMAH/portfolio-api/internal/github"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// QuotaObserver receives each quota reading.
type QuotaObserver interface {
	Observe(q github.Quota)
}

// QuotaWorker polls GitHub's REST /rate_limit endpoint, which does not count
// against the quota, and feeds the readings to the tracker behind /health.
type QuotaWorker struct {
	client   *gh.Client
	observer QuotaObserver
	interval time.Duration
}

// NewRESTClient returns a go-github client authenticated with token.
func NewRESTClient(token string) *gh.Client {
	if token == "" {
		return gh.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return gh.NewClient(oauth2.NewClient(context.Background(), ts))
}

func NewQuotaWorker(client *gh.Client, observer QuotaObserver, interval time.Duration) *QuotaWorker {
	return &QuotaWorker{
		client:   client,
		observer: observer,
		interval: interval,
	}
}

func quota(resource string, rate *gh.Rate, observed time.Time) github.Quota {
	return github.Quota{
		Resource:  resource,
		Limit:     rate.Limit,
		Remaining: rate.Remaining,
		Reset:     rate.Reset.Time,
		Observed:  observed,
	}
}

// Poll fetches the current quotas once.
func (w *QuotaWorker) Poll(ctx context.Context) error {
	limits, resp, err := w.client.RateLimit.Get(ctx)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			logger.Error("quota poll rejected: GitHub token is invalid")
		}
		return err
	}

	now := time.Now()
	if limits.GraphQL != nil {
		w.observer.Observe(quota("graphql", limits.GraphQL, now))
		logger.Debug("quota poll: graphql %d/%d", limits.GraphQL.Remaining, limits.GraphQL.Limit)
	}
	if limits.Core != nil {
		w.observer.Observe(quota("core", limits.Core, now))
	}

	return nil
}

func (w *QuotaWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		logger.Info("quota worker disabled")
		return
	}

	if err := w.Poll(ctx); err != nil {
		logger.Error("initial quota poll failed: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Poll(ctx); err != nil {
				logger.Error("quota poll failed: %v", err)
			}

		case <-ctx.Done():
			logger.Info("stopping quota worker")
			return
		}
	}
}
