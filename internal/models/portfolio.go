package models

// * Output documents served to the portfolio frontend. Every counter is a
// * plain int and every nullable field is a pointer that always serializes,
// * so consumers never have to check for missing keys.

type UserStatistics struct {
	Name               string `json:"name"`
	Login              string `json:"login"`
	AvatarURL          string `json:"avatarUrl"`
	TotalRepositories  int    `json:"totalRepositories"`
	TotalStars         int    `json:"totalStars"`
	TotalCommits       int    `json:"totalCommits"`
	TotalPullRequests  int    `json:"totalPullRequests"`
	MergedPullRequests int    `json:"mergedPullRequests"`
	TotalReviews       int    `json:"totalReviews"`
	TotalIssues        int    `json:"totalIssues"`
	ContributedTo      int    `json:"contributedTo"`
	Followers          int    `json:"followers"`
	Following          int    `json:"following"`
}

type ActivitySummary struct {
	Commits       int `json:"commits"`
	PullRequests  int `json:"pullRequests"`
	Reviews       int `json:"reviews"`
	Issues        int `json:"issues"`
	ContributedTo int `json:"contributedTo"`
}

type Language struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type LanguageEdge struct {
	Size int      `json:"size"`
	Node Language `json:"node"`
}

type LanguageBreakdown struct {
	TotalSize int            `json:"totalSize"`
	Edges     []LanguageEdge `json:"edges"`
}

type CommitHistory struct {
	TotalCount int `json:"totalCount"`
}

type CommitTarget struct {
	History CommitHistory `json:"history"`
}

type DefaultBranchRef struct {
	Target CommitTarget `json:"target"`
}

type RepositorySummary struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	NameWithOwner    string            `json:"nameWithOwner"`
	Description      *string           `json:"description"`
	HomepageURL      *string           `json:"homepageUrl"`
	URL              string            `json:"url"`
	StargazerCount   int               `json:"stargazerCount"`
	ForkCount        int               `json:"forkCount"`
	IsPrivate        bool              `json:"isPrivate"`
	IsArchived       bool              `json:"isArchived"`
	IsTemplate       bool              `json:"isTemplate"`
	PrimaryLanguage  *Language         `json:"primaryLanguage"`
	UpdatedAt        string            `json:"updatedAt"`
	CreatedAt        string            `json:"createdAt"`
	PushedAt         string            `json:"pushedAt"`
	Languages        LanguageBreakdown `json:"languages"`
	DefaultBranchRef *DefaultBranchRef `json:"defaultBranchRef"`
}

type ContributionDay struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
	Color             string `json:"color"`
}

type ContributionWeek struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

type ContributionCalendar struct {
	TotalContributions int                `json:"totalContributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

// * Overview bundles the three profile documents. A section that failed is
// * null and its generic error message is listed under Errors.
type Overview struct {
	Stats         *UserStatistics       `json:"stats"`
	Activity      *ActivitySummary      `json:"activity"`
	Contributions *ContributionCalendar `json:"contributions"`
	Errors        map[string]string     `json:"errors,omitempty"`
}
