package service

import (
	"sort"

	"github.com/KOFI-GYIMAH/portfolio-api/internal/github"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/models"
)

const maxLanguages = 10

// * The normalizers below are total: they accept any upstream shape, nil
// * included, and never fail. Counters default to 0, descriptive fields to nil.

func intOr0(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func count(c *github.Count) int {
	if c == nil {
		return 0
	}
	return intOr0(c.TotalCount)
}

func sumStars(repos []*github.Repository) int {
	var total int
	for _, r := range repos {
		if r == nil {
			continue
		}
		total += intOr0(r.StargazerCount)
	}
	return total
}

func repositoryNodes(u *github.User) []*github.Repository {
	if u == nil || u.Repositories == nil {
		return nil
	}
	return u.Repositories.Nodes
}

func contributions(u *github.User) *github.ContributionsCollection {
	if u == nil || u.ContributionsCollection == nil {
		return &github.ContributionsCollection{}
	}
	return u.ContributionsCollection
}

func NormalizeUserStatistics(u *github.User) models.UserStatistics {
	if u == nil {
		return models.UserStatistics{}
	}

	name := u.Login
	if u.Name != nil && *u.Name != "" {
		name = *u.Name
	}

	var totalRepos int
	if u.Repositories != nil {
		totalRepos = intOr0(u.Repositories.TotalCount)
	}

	cc := contributions(u)
	return models.UserStatistics{
		Name:               name,
		Login:              u.Login,
		AvatarURL:          u.AvatarURL,
		TotalRepositories:  totalRepos,
		TotalStars:         sumStars(repositoryNodes(u)),
		TotalCommits:       intOr0(cc.TotalCommitContributions),
		TotalPullRequests:  count(u.PullRequests),
		MergedPullRequests: count(u.MergedPullRequests),
		TotalReviews:       intOr0(cc.TotalPullRequestReviewContributions),
		TotalIssues:        count(u.OpenIssues) + count(u.ClosedIssues),
		ContributedTo:      count(u.RepositoriesContributedTo),
		Followers:          count(u.Followers),
		Following:          count(u.Following),
	}
}

func NormalizeActivity(u *github.User) models.ActivitySummary {
	if u == nil {
		return models.ActivitySummary{}
	}

	cc := contributions(u)
	return models.ActivitySummary{
		Commits:       intOr0(cc.TotalCommitContributions),
		PullRequests:  count(u.PullRequests),
		Reviews:       intOr0(cc.TotalPullRequestReviewContributions),
		Issues:        count(u.OpenIssues) + count(u.ClosedIssues),
		ContributedTo: count(u.RepositoriesContributedTo),
	}
}

func normalizeLanguage(l *github.Language) *models.Language {
	if l == nil {
		return nil
	}
	return &models.Language{Name: l.Name, Color: l.Color}
}

func normalizeLanguages(lc *github.LanguageConnection) models.LanguageBreakdown {
	breakdown := models.LanguageBreakdown{Edges: []models.LanguageEdge{}}
	if lc == nil {
		return breakdown
	}

	breakdown.TotalSize = intOr0(lc.TotalSize)
	for _, e := range lc.Edges {
		if e == nil || e.Node == nil {
			continue
		}
		breakdown.Edges = append(breakdown.Edges, models.LanguageEdge{
			Size: intOr0(e.Size),
			Node: *normalizeLanguage(e.Node),
		})
	}

	sort.SliceStable(breakdown.Edges, func(i, j int) bool {
		return breakdown.Edges[i].Size > breakdown.Edges[j].Size
	})
	if len(breakdown.Edges) > maxLanguages {
		breakdown.Edges = breakdown.Edges[:maxLanguages]
	}
	return breakdown
}

// commitHistory follows defaultBranchRef.target.history.totalCount and
// returns nil as soon as any link is missing.
func commitHistory(ref *github.Ref) *models.DefaultBranchRef {
	if ref == nil || ref.Target == nil || ref.Target.History == nil || ref.Target.History.TotalCount == nil {
		return nil
	}
	return &models.DefaultBranchRef{
		Target: models.CommitTarget{
			History: models.CommitHistory{TotalCount: *ref.Target.History.TotalCount},
		},
	}
}

func NormalizeRepository(r *github.Repository) models.RepositorySummary {
	if r == nil {
		return models.RepositorySummary{Languages: normalizeLanguages(nil)}
	}

	return models.RepositorySummary{
		ID:               r.ID,
		Name:             r.Name,
		NameWithOwner:    r.NameWithOwner,
		Description:      r.Description,
		HomepageURL:      r.HomepageURL,
		URL:              r.URL,
		StargazerCount:   intOr0(r.StargazerCount),
		ForkCount:        intOr0(r.ForkCount),
		IsPrivate:        r.IsPrivate,
		IsArchived:       r.IsArchived,
		IsTemplate:       r.IsTemplate,
		PrimaryLanguage:  normalizeLanguage(r.PrimaryLanguage),
		UpdatedAt:        r.UpdatedAt,
		CreatedAt:        r.CreatedAt,
		PushedAt:         r.PushedAt,
		Languages:        normalizeLanguages(r.Languages),
		DefaultBranchRef: commitHistory(r.DefaultBranchRef),
	}
}

// NormalizeContributionCalendar keeps weeks and days in upstream order.
func NormalizeContributionCalendar(c *github.ContributionCalendar) models.ContributionCalendar {
	calendar := models.ContributionCalendar{Weeks: []models.ContributionWeek{}}
	if c == nil {
		return calendar
	}

	calendar.TotalContributions = intOr0(c.TotalContributions)
	for _, w := range c.Weeks {
		week := models.ContributionWeek{ContributionDays: []models.ContributionDay{}}
		if w != nil {
			for _, d := range w.ContributionDays {
				if d == nil {
					continue
				}
				day := models.ContributionDay{
					Date:              d.Date,
					ContributionCount: intOr0(d.ContributionCount),
				}
				if d.Color != nil {
					day.Color = *d.Color
				}
				week.ContributionDays = append(week.ContributionDays, day)
			}
		}
		calendar.Weeks = append(calendar.Weeks, week)
	}
	return calendar
}
