package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KOFI-GYIMAH/portfolio-api/internal/github"
	"github.com/KOFI-GYIMAH/portfolio-api/internal/models"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/errors"
	"github.com/KOFI-GYIMAH/portfolio-api/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	RefUserNotFound          = "GITHUB_USER_NOT_FOUND"
	RefContributionsNotFound = "CONTRIBUTIONS_NOT_FOUND"

	// * MaxRepositories bounds how many repositories a listing accumulates
	// * across pages, whatever hasNextPage says.
	MaxRepositories        = 100
	DefaultRepositoryLimit = 10
)

// GitHubClient is the slice of the GraphQL client the service needs.
type GitHubClient interface {
	UserStats(ctx context.Context, login string, since time.Time, includeMerged bool) (*github.User, error)
	Contributions(ctx context.Context, login string, from, to time.Time) (*github.User, error)
	RepositoryPage(ctx context.Context, login, after string) (*github.User, error)
}

type PortfolioService struct {
	githubClient GitHubClient
	login        string
	now          func() time.Time
}

func NewPortfolioService(githubClient GitHubClient, login string) *PortfolioService {
	return &PortfolioService{
		githubClient: githubClient,
		login:        login,
		now:          time.Now,
	}
}

func (s *PortfolioService) Login() string {
	return s.login
}

// StatsWindowStart is January 1st (UTC) of the previous calendar year.
func StatsWindowStart(now time.Time) time.Time {
	return time.Date(now.UTC().Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// ContributionsWindow spans the trailing 365 days plus one day ahead, so
// today's contributions are included whatever the caller's timezone.
func ContributionsWindow(now time.Time) (from, to time.Time) {
	now = now.UTC()
	return now.AddDate(0, 0, -365), now.AddDate(0, 0, 1)
}

func (s *PortfolioService) userNotFound() error {
	return errors.New(
		RefUserNotFound,
		"GitHub user not found",
		fmt.Sprintf("GitHub has no user %q", s.login),
		nil,
		errors.LevelInfo,
	)
}

func (s *PortfolioService) fetchUserStats(ctx context.Context, includeMerged bool) (*github.User, error) {
	user, err := s.githubClient.UserStats(ctx, s.login, StatsWindowStart(s.now()), includeMerged)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user stats: %w", err)
	}
	if user == nil {
		return nil, s.userNotFound()
	}
	return user, nil
}

func (s *PortfolioService) GetStats(ctx context.Context) (*models.UserStatistics, error) {
	user, err := s.fetchUserStats(ctx, true)
	if err != nil {
		return nil, err
	}

	stats := NormalizeUserStatistics(user)
	logger.Debug("Fetched stats for %s: %d repositories, %d stars", s.login, stats.TotalRepositories, stats.TotalStars)
	return &stats, nil
}

func (s *PortfolioService) GetActivity(ctx context.Context) (*models.ActivitySummary, error) {
	user, err := s.fetchUserStats(ctx, false)
	if err != nil {
		return nil, err
	}

	activity := NormalizeActivity(user)
	return &activity, nil
}

func (s *PortfolioService) GetContributions(ctx context.Context) (*models.ContributionCalendar, error) {
	from, to := ContributionsWindow(s.now())

	user, err := s.githubClient.Contributions(ctx, s.login, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contributions: %w", err)
	}
	if user == nil {
		return nil, s.userNotFound()
	}
	if user.ContributionsCollection == nil || user.ContributionsCollection.ContributionCalendar == nil {
		return nil, errors.New(
			RefContributionsNotFound,
			"Contribution calendar not found",
			fmt.Sprintf("No contribution calendar for %q between %s and %s", s.login, from.Format(time.DateOnly), to.Format(time.DateOnly)),
			nil,
			errors.LevelInfo,
		)
	}

	calendar := NormalizeContributionCalendar(user.ContributionsCollection.ContributionCalendar)
	return &calendar, nil
}

type RepositoryListOptions struct {
	Featured []string
	Limit    int
}

// ListRepositories walks the repository pages, then filters, prioritises,
// sorts and truncates them.
func (s *PortfolioService) ListRepositories(ctx context.Context, opts RepositoryListOptions) ([]models.RepositorySummary, error) {
	repos, err := s.fetchRepositories(ctx)
	if err != nil {
		return nil, err
	}

	selected := SelectRepositories(repos, opts.Featured, opts.Limit)
	logger.Debug("Selected %d of %d repositories for %s", len(selected), len(repos), s.login)
	return selected, nil
}

// fetchRepositories pages sequentially: each cursor is only known once the
// previous page has arrived.
func (s *PortfolioService) fetchRepositories(ctx context.Context) ([]*github.Repository, error) {
	var all []*github.Repository
	cursor := ""

	for page := 1; ; page++ {
		user, err := s.githubClient.RepositoryPage(ctx, s.login, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch repository page %d: %w", page, err)
		}
		if user == nil {
			return nil, s.userNotFound()
		}

		conn := user.Repositories
		if conn == nil {
			break
		}

		for _, node := range conn.Nodes {
			if node == nil {
				continue
			}
			all = append(all, node)
			if len(all) >= MaxRepositories {
				return all, nil
			}
		}

		info := conn.PageInfo
		if info == nil || !info.HasNextPage || info.EndCursor == nil || *info.EndCursor == "" {
			break
		}
		cursor = *info.EndCursor
	}

	return all, nil
}

func isHidden(r *github.Repository) bool {
	return r.IsPrivate || r.IsArchived || r.IsTemplate
}

func isFeatured(r *github.Repository, fragments []string) bool {
	name := strings.ToLower(r.Name)
	for _, f := range fragments {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}

// SelectRepositories drops private, archived and template repositories, puts
// featured ones first, orders each group by stars descending (stable), keeps
// the first limit entries and normalizes them.
func SelectRepositories(repos []*github.Repository, featured []string, limit int) []models.RepositorySummary {
	if limit <= 0 {
		limit = DefaultRepositoryLimit
	}

	fragments := make([]string, 0, len(featured))
	for _, f := range featured {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			fragments = append(fragments, f)
		}
	}

	var picked, others []*github.Repository
	for _, r := range repos {
		if r == nil || isHidden(r) {
			continue
		}
		if len(fragments) > 0 && isFeatured(r, fragments) {
			picked = append(picked, r)
		} else {
			others = append(others, r)
		}
	}

	byStars := func(list []*github.Repository) {
		sort.SliceStable(list, func(i, j int) bool {
			return intOr0(list[i].StargazerCount) > intOr0(list[j].StargazerCount)
		})
	}
	byStars(picked)
	byStars(others)

	ordered := append(picked, others...)
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	out := make([]models.RepositorySummary, 0, len(ordered))
	for _, r := range ordered {
		out = append(out, NormalizeRepository(r))
	}
	return out
}

// Overview section names.
const (
	SectionStats         = "stats"
	SectionActivity      = "activity"
	SectionContributions = "contributions"
)

// GetOverview fetches the stats and contribution documents concurrently.
// Sections fail independently; failures are returned per section.
func (s *PortfolioService) GetOverview(ctx context.Context) (models.Overview, map[string]error) {
	var (
		overview models.Overview
		mu       sync.Mutex
		failures = make(map[string]error)
		g        errgroup.Group
	)

	fail := func(err error, sections ...string) {
		mu.Lock()
		defer mu.Unlock()
		for _, section := range sections {
			failures[section] = err
		}
	}

	g.Go(func() error {
		user, err := s.fetchUserStats(ctx, true)
		if err != nil {
			fail(err, SectionStats, SectionActivity)
			return nil
		}
		stats := NormalizeUserStatistics(user)
		activity := NormalizeActivity(user)
		overview.Stats = &stats
		overview.Activity = &activity
		return nil
	})

	g.Go(func() error {
		calendar, err := s.GetContributions(ctx)
		if err != nil {
			fail(err, SectionContributions)
			return nil
		}
		overview.Contributions = calendar
		return nil
	})

	_ = g.Wait()
	return overview, failures
}
