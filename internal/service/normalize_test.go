package service

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/KOFI-GYIMAH/portfolio-api/internal/github"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRepository_Defaults(t *testing.T) {
	got := NormalizeRepository(&github.Repository{ID: "R_1", Name: "bare"})

	assert.Equal(t, 0, got.StargazerCount)
	assert.Equal(t, 0, got.ForkCount)
	assert.Equal(t, models.LanguageBreakdown{TotalSize: 0, Edges: []models.LanguageEdge{}}, got.Languages)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.HomepageURL)
	assert.Nil(t, got.PrimaryLanguage)
	assert.Nil(t, got.DefaultBranchRef)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	// nullable fields are present as null, never omitted
	for _, key := range []string{"description", "homepageUrl", "primaryLanguage", "defaultBranchRef"} {
		v, ok := doc[key]
		assert.True(t, ok, key)
		assert.Nil(t, v, key)
	}
	assert.Equal(t, map[string]any{"totalSize": 0.0, "edges": []any{}}, doc["languages"])
}

func TestNormalizeRepository_Full(t *testing.T) {
	src := &github.Repository{
		ID:              "R_2",
		Name:            "site",
		NameWithOwner:   "octocat/site",
		Description:     strPtr("portfolio"),
		HomepageURL:     strPtr("https://octocat.dev"),
		URL:             "https://github.com/octocat/site",
		StargazerCount:  intPtr(42),
		ForkCount:       intPtr(3),
		PrimaryLanguage: &github.Language{Name: "TypeScript", Color: strPtr("#3178c6")},
		UpdatedAt:       "2026-10-01T10:00:00Z",
		CreatedAt:       "2024-01-01T10:00:00Z",
		PushedAt:        "2026-09-30T10:00:00Z",
		Languages: &github.LanguageConnection{
			TotalSize: intPtr(1500),
			Edges: []*github.LanguageEdge{
				{Size: intPtr(500), Node: &github.Language{Name: "CSS"}},
				{Size: intPtr(1000), Node: &github.Language{Name: "TypeScript", Color: strPtr("#3178c6")}},
				{Size: intPtr(5), Node: nil},
			},
		},
		DefaultBranchRef: &github.Ref{Target: &github.RefTarget{History: &github.Count{TotalCount: intPtr(321)}}},
	}

	got := NormalizeRepository(src)

	assert.Equal(t, 42, got.StargazerCount)
	assert.Equal(t, "portfolio", *got.Description)
	assert.Equal(t, "TypeScript", got.PrimaryLanguage.Name)
	assert.Equal(t, 1500, got.Languages.TotalSize)
	require.Len(t, got.Languages.Edges, 2)
	assert.Equal(t, "TypeScript", got.Languages.Edges[0].Node.Name)
	assert.Equal(t, "CSS", got.Languages.Edges[1].Node.Name)
	assert.Nil(t, got.Languages.Edges[1].Node.Color)
	require.NotNil(t, got.DefaultBranchRef)
	assert.Equal(t, 321, got.DefaultBranchRef.Target.History.TotalCount)
	assert.Equal(t, "2026-09-30T10:00:00Z", got.PushedAt)
}

func TestNormalizeRepository_LanguageCap(t *testing.T) {
	edges := make([]*github.LanguageEdge, 0, 14)
	for i := 0; i < 14; i++ {
		edges = append(edges, &github.LanguageEdge{Size: intPtr(i), Node: &github.Language{Name: fmt.Sprintf("L%d", i)}})
	}

	got := NormalizeRepository(&github.Repository{Languages: &github.LanguageConnection{Edges: edges}})

	require.Len(t, got.Languages.Edges, maxLanguages)
	assert.Equal(t, "L13", got.Languages.Edges[0].Node.Name)
	for i := 1; i < len(got.Languages.Edges); i++ {
		assert.GreaterOrEqual(t, got.Languages.Edges[i-1].Size, got.Languages.Edges[i].Size)
	}
}

func TestCommitHistory(t *testing.T) {
	tests := []struct {
		name string
		ref  *github.Ref
		want *models.DefaultBranchRef
	}{
		{name: "no ref"},
		{name: "no target", ref: &github.Ref{}},
		{name: "no history", ref: &github.Ref{Target: &github.RefTarget{}}},
		{name: "no count", ref: &github.Ref{Target: &github.RefTarget{History: &github.Count{}}}},
		{
			name: "zero commits is a count",
			ref:  &github.Ref{Target: &github.RefTarget{History: &github.Count{TotalCount: intPtr(0)}}},
			want: &models.DefaultBranchRef{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commitHistory(tt.ref))
		})
	}
}

func TestNormalizeUserStatistics(t *testing.T) {
	user := &github.User{
		Name:      nil,
		Login:     "octocat",
		AvatarURL: "https://avatars.githubusercontent.com/u/1",
		Followers: &github.Count{TotalCount: intPtr(50)},
		Following: &github.Count{},
		ContributionsCollection: &github.ContributionsCollection{
			TotalCommitContributions:            intPtr(400),
			TotalPullRequestReviewContributions: intPtr(12),
		},
		PullRequests:              &github.Count{TotalCount: intPtr(30)},
		MergedPullRequests:        &github.Count{TotalCount: intPtr(25)},
		OpenIssues:                &github.Count{TotalCount: intPtr(4)},
		RepositoriesContributedTo: &github.Count{TotalCount: intPtr(7)},
		Repositories: &github.RepositoryConnection{
			TotalCount: intPtr(4),
			Nodes:      []*github.Repository{repo("a", 3), {Name: "b"}, repo("c", 7), nil},
		},
	}

	got := NormalizeUserStatistics(user)

	assert.Equal(t, models.UserStatistics{
		Name:               "octocat",
		Login:              "octocat",
		AvatarURL:          "https://avatars.githubusercontent.com/u/1",
		TotalRepositories:  4,
		TotalStars:         10,
		TotalCommits:       400,
		TotalPullRequests:  30,
		MergedPullRequests: 25,
		TotalReviews:       12,
		TotalIssues:        4,
		ContributedTo:      7,
		Followers:          50,
		Following:          0,
	}, got)

	user.Name = strPtr("The Octocat")
	assert.Equal(t, "The Octocat", NormalizeUserStatistics(user).Name)
}

func TestNormalizeUserStatistics_Empty(t *testing.T) {
	assert.Equal(t, models.UserStatistics{}, NormalizeUserStatistics(nil))
	assert.Equal(t, models.UserStatistics{Name: "ghost", Login: "ghost"}, NormalizeUserStatistics(&github.User{Login: "ghost"}))
}

func TestNormalizeActivity_IssueCombination(t *testing.T) {
	tests := []struct {
		name   string
		open   *github.Count
		closed *github.Count
		want   int
	}{
		{name: "both", open: &github.Count{TotalCount: intPtr(4)}, closed: &github.Count{TotalCount: intPtr(9)}, want: 13},
		{name: "open missing", closed: &github.Count{TotalCount: intPtr(9)}, want: 9},
		{name: "closed missing", open: &github.Count{TotalCount: intPtr(4)}, want: 4},
		{name: "count missing", open: &github.Count{}, closed: &github.Count{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeActivity(&github.User{OpenIssues: tt.open, ClosedIssues: tt.closed})
			assert.Equal(t, tt.want, got.Issues)
		})
	}

	assert.Equal(t, models.ActivitySummary{}, NormalizeActivity(nil))
}

func TestNormalizeContributionCalendar(t *testing.T) {
	src := &github.ContributionCalendar{
		TotalContributions: intPtr(5),
		Weeks: []*github.ContributionWeek{
			{ContributionDays: []*github.ContributionDay{
				{Date: "2026-10-12", ContributionCount: intPtr(3), Color: strPtr("#30a14e")},
				{Date: "2026-10-11", ContributionCount: nil},
			}},
			nil,
			{ContributionDays: []*github.ContributionDay{
				{Date: "2026-10-13", ContributionCount: intPtr(2), Color: strPtr("#40c463")},
			}},
		},
	}

	got := NormalizeContributionCalendar(src)

	assert.Equal(t, 5, got.TotalContributions)
	require.Len(t, got.Weeks, 3)
	// upstream order is kept, even when it is not chronological
	assert.Equal(t, "2026-10-12", got.Weeks[0].ContributionDays[0].Date)
	assert.Equal(t, "2026-10-11", got.Weeks[0].ContributionDays[1].Date)
	assert.Equal(t, 0, got.Weeks[0].ContributionDays[1].ContributionCount)
	assert.Equal(t, "", got.Weeks[0].ContributionDays[1].Color)
	assert.Empty(t, got.Weeks[1].ContributionDays)
	assert.Equal(t, "2026-10-13", got.Weeks[2].ContributionDays[0].Date)

	empty := NormalizeContributionCalendar(nil)
	assert.Equal(t, 0, empty.TotalContributions)
	assert.NotNil(t, empty.Weeks)
}
