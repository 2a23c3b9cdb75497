package github

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/KOFI-GYIMAH/portfolio-api/pkg/errors"
)

// Reference codes carried by the ApplicationError wrapping each transport failure.
const (
	RefAuthentication = "GITHUB_AUTH_ERROR"
	RefRateLimited    = "GITHUB_RATE_LIMITED"
	RefUpstream       = "GITHUB_API_ERROR"
	RefGraphQL        = "GITHUB_GRAPHQL_ERROR"
	RefNoData         = "GITHUB_NO_DATA"
	RefInvalidQuery   = "GITHUB_INVALID_QUERY"
)

// AuthenticationError means no credential was configured. No request is sent.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "github: no API token configured"
}

// RateLimitError is returned for HTTP 403. It is never retried.
type RateLimitError struct {
	Payload string
}

func (e *RateLimitError) Error() string {
	if e.Payload == "" {
		return "github: rate limited (403)"
	}
	return fmt.Sprintf("github: rate limited (403): %s", e.Payload)
}

// UpstreamError covers non-2xx answers other than 403, and network failures.
// Transient is set for 5xx and network errors, the classes the client retries.
type UpstreamError struct {
	Status     int
	StatusText string
	Transient  bool
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("github: request failed: %v", e.Err)
	}
	return fmt.Sprintf("github: upstream returned %d %s", e.Status, e.StatusText)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// GraphQLError is an HTTP success whose payload carries GraphQL errors.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "github: graphql errors: " + strings.Join(e.Messages, "; ")
}

// NoDataError is a successful response without a data member.
type NoDataError struct{}

func (e *NoDataError) Error() string {
	return "github: response contained no data"
}

func authenticationError() error {
	return errors.New(
		RefAuthentication,
		"GitHub token not configured",
		"GITHUB_TOKEN is empty, refusing to call the GitHub API",
		&AuthenticationError{},
		errors.LevelFatal,
	)
}

func rateLimitError(operation, payload string) error {
	return errors.New(
		RefRateLimited,
		"GitHub API rate limit reached",
		fmt.Sprintf("GitHub answered 403 to %s", operation),
		&RateLimitError{Payload: payload},
		errors.LevelWarning,
	)
}

func statusError(operation string, status int, statusText string) error {
	if statusText == "" {
		statusText = http.StatusText(status)
	}
	return errors.New(
		RefUpstream,
		"Unexpected response from GitHub API",
		fmt.Sprintf("GitHub API returned status %d when running %s", status, operation),
		&UpstreamError{Status: status, StatusText: statusText, Transient: status >= 500},
		errors.LevelError,
	)
}

func networkError(operation string, err error) error {
	return errors.New(
		RefUpstream,
		"Failed to reach GitHub API",
		fmt.Sprintf("Could not complete %s", operation),
		&UpstreamError{Transient: true, Err: err},
		errors.LevelError,
	)
}

func graphQLError(operation string, messages []string) error {
	return errors.New(
		RefGraphQL,
		"GitHub GraphQL query failed",
		fmt.Sprintf("%s returned %d error(s)", operation, len(messages)),
		&GraphQLError{Messages: messages},
		errors.LevelError,
	)
}

func noDataError(operation string) error {
	return errors.New(
		RefNoData,
		"GitHub API returned no data",
		fmt.Sprintf("%s response had no data field", operation),
		&NoDataError{},
		errors.LevelError,
	)
}
