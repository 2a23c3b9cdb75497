package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/portfolio-api/internal/metrics"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/errors"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"
)

const (
	defaultEndpoint  = "https://api.github.com/graphql"
	defaultUserAgent = "portfolio-api/1.0"
	maxResponseBytes = 10 << 20
)

type Client struct {
	httpClient *retryablehttp.Client
	token      string
	endpoint   string
	baseDelay  time.Duration
	metrics    *metrics.Metrics
	limits     *RateLimitTracker
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithRetryBaseDelay sets the linear backoff unit between attempts.
func WithRetryBaseDelay(d time.Duration) Option {
	return func(c *Client) {
		c.baseDelay = d
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithRateLimitTracker(t *RateLimitTracker) Option {
	return func(c *Client) {
		c.limits = t
	}
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:     token,
		endpoint:  defaultEndpoint,
		baseDelay: defaultBaseDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limits == nil {
		c.limits = NewRateLimitTracker(c.metrics)
	}

	var transport http.RoundTripper = c.limits.Middleware(cleanhttp.DefaultPooledTransport())
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   transport,
		}
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
	rc.RetryMax = maxAttempts - 1
	rc.RetryWaitMin = c.baseDelay
	rc.RetryWaitMax = c.baseDelay * maxAttempts
	rc.Backoff = linearBackoff
	rc.CheckRetry = checkRetry
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = retryLogger{}
	rc.RequestLogHook = c.countAttempt

	c.httpClient = rc
	return c
}

// RateLimits exposes the quota tracker shared with the quota worker.
func (c *Client) RateLimits() *RateLimitTracker {
	return c.limits
}

type operationKey struct{}

func (c *Client) countAttempt(_ retryablehttp.Logger, req *http.Request, attempt int) {
	op, _ := req.Context().Value(operationKey{}).(string)
	if attempt > 0 {
		logger.Warn("Retrying %s (attempt %d of %d)", op, attempt+1, maxAttempts)
	}
	if c.metrics != nil {
		c.metrics.UpstreamAttempts.WithLabelValues(op).Inc()
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Execute runs one GraphQL operation and decodes its data member into out.
func (c *Client) Execute(ctx context.Context, q Query, vars map[string]any, out any) error {
	if c.token == "" {
		return authenticationError()
	}

	if err := q.check(vars); err != nil {
		return errors.New(
			RefInvalidQuery,
			"Invalid GraphQL variables",
			fmt.Sprintf("Variables rejected for %s", q.Name),
			err,
			errors.LevelError,
		)
	}

	start := time.Now()
	err := c.execute(ctx, q, vars, out)
	c.observe(q.Name, start, err)
	return err
}

func (c *Client) execute(ctx context.Context, q Query, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: q.Document, Variables: vars})
	if err != nil {
		return errors.New(
			RefInvalidQuery,
			"Failed to encode GraphQL request",
			fmt.Sprintf("Could not encode variables for %s", q.Name),
			err,
			errors.LevelError,
		)
	}

	ctx = context.WithValue(ctx, operationKey{}, q.Name)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return networkError(q.Name, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return networkError(q.Name, err)
	}

	switch retryDecision(resp.StatusCode, nil) {
	case actionRateLimited:
		return rateLimitError(q.Name, string(bytes.TrimSpace(payload)))
	case actionRetry, actionFail:
		return statusError(q.Name, resp.StatusCode, statusText(resp))
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return errors.New(
			RefUpstream,
			"Failed to parse GitHub API response",
			fmt.Sprintf("Could not understand the response to %s", q.Name),
			err,
			errors.LevelError,
		)
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return graphQLError(q.Name, messages)
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return noDataError(q.Name)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.New(
			RefUpstream,
			"Failed to parse GitHub API response",
			fmt.Sprintf("Unexpected data shape for %s", q.Name),
			err,
			errors.LevelError,
		)
	}

	return nil
}

func (c *Client) observe(operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
		for _, ref := range []string{RefAuthentication, RefRateLimited, RefGraphQL, RefNoData, RefUpstream} {
			if errors.HasReference(err, ref) {
				outcome = strings.ToLower(strings.TrimPrefix(ref, "GITHUB_"))
				break
			}
		}
	}

	logger.Debug("%s finished in %s (%s)", operation, time.Since(start), outcome)

	if c.metrics == nil {
		return
	}
	c.metrics.UpstreamRequests.WithLabelValues(operation, outcome).Inc()
	c.metrics.UpstreamDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

type userEnvelope struct {
	User *User `json:"user"`
}

// UserStats runs StatsQuery. A nil user means GitHub has no such login.
func (c *Client) UserStats(ctx context.Context, login string, since time.Time, includeMerged bool) (*User, error) {
	var data userEnvelope
	err := c.Execute(ctx, StatsQuery, map[string]any{
		"login":                     login,
		"startTime":                 since.UTC().Format(time.RFC3339),
		"includeMergedPullRequests": includeMerged,
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.User, nil
}

// Contributions runs ContributionsQuery for [from, to).
func (c *Client) Contributions(ctx context.Context, login string, from, to time.Time) (*User, error) {
	var data userEnvelope
	err := c.Execute(ctx, ContributionsQuery, map[string]any{
		"login": login,
		"from":  from.UTC().Format(time.RFC3339),
		"to":    to.UTC().Format(time.RFC3339),
	}, &data)
	if err != nil {
		return nil, err
	}
	return data.User, nil
}

// RepositoryPage runs RepositoriesQuery. An empty cursor asks for the first page.
func (c *Client) RepositoryPage(ctx context.Context, login, after string) (*User, error) {
	vars := map[string]any{"login": login}
	if after != "" {
		vars["after"] = after
	}

	var data userEnvelope
	if err := c.Execute(ctx, RepositoriesQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.User, nil
}
