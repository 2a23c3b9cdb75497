package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryCatalog(t *testing.T) {
	tests := []struct {
		query     Query
		name      string
		variables []string
		contains  []string
	}{
		{
			query:     StatsQuery,
			name:      "PortfolioStats",
			variables: []string{"includeMergedPullRequests", "login", "startTime"},
			contains: []string{
				"contributionsCollection(from: $startTime)",
				"@include(if: $includeMergedPullRequests)",
				"openIssues: issues(states: OPEN)",
				"closedIssues: issues(states: CLOSED)",
				"orderBy: {field: STARGAZERS, direction: DESC}",
				"languages(first: 10, orderBy: {field: SIZE, direction: DESC})",
			},
		},
		{
			query:     ContributionsQuery,
			name:      "PortfolioContributions",
			variables: []string{"from", "login", "to"},
			contains:  []string{"contributionsCollection(from: $from, to: $to)", "contributionDays"},
		},
		{
			query:     RepositoriesQuery,
			name:      "PortfolioRepositories",
			variables: []string{"after", "login"},
			contains:  []string{"after: $after", "hasNextPage", "endCursor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.query.Name)
			assert.Equal(t, tt.variables, tt.query.Variables())
			for _, fragment := range tt.contains {
				assert.Contains(t, tt.query.Document, fragment)
			}
		})
	}
}

func TestQueryCheck(t *testing.T) {
	assert.NoError(t, RepositoriesQuery.check(map[string]any{"login": "octocat"}))
	assert.NoError(t, RepositoriesQuery.check(map[string]any{"login": "octocat", "after": "abc"}))
	assert.Error(t, RepositoriesQuery.check(map[string]any{}))
	assert.Error(t, RepositoriesQuery.check(map[string]any{"login": nil}))
	assert.Error(t, RepositoriesQuery.check(map[string]any{"login": "octocat", "first": 5}))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { mustParse(`query Broken { user(login: "x") {`) })
	assert.Panics(t, func() { mustParse(`query A { viewer { login } } query B { viewer { login } }`) })
}
