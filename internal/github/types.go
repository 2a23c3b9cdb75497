package github

// Upstream GraphQL shapes. GitHub may omit or null almost anything, so every
// optional member is a pointer and the normalizer decides the defaults.

type Count struct {
	TotalCount *int `json:"totalCount"`
}

type User struct {
	Name      *string `json:"name"`
	Login     string  `json:"login"`
	AvatarURL string  `json:"avatarUrl"`

	Followers                 *Count                   `json:"followers"`
	Following                 *Count                   `json:"following"`
	ContributionsCollection   *ContributionsCollection `json:"contributionsCollection"`
	PullRequests              *Count                   `json:"pullRequests"`
	MergedPullRequests        *Count                   `json:"mergedPullRequests"`
	OpenIssues                *Count                   `json:"openIssues"`
	ClosedIssues              *Count                   `json:"closedIssues"`
	RepositoriesContributedTo *Count                   `json:"repositoriesContributedTo"`
	Repositories              *RepositoryConnection    `json:"repositories"`
}

type ContributionsCollection struct {
	TotalCommitContributions            *int                  `json:"totalCommitContributions"`
	TotalPullRequestReviewContributions *int                  `json:"totalPullRequestReviewContributions"`
	ContributionCalendar                *ContributionCalendar `json:"contributionCalendar"`
}

type ContributionCalendar struct {
	TotalContributions *int                `json:"totalContributions"`
	Weeks              []*ContributionWeek `json:"weeks"`
}

type ContributionWeek struct {
	ContributionDays []*ContributionDay `json:"contributionDays"`
}

type ContributionDay struct {
	Date              string  `json:"date"`
	ContributionCount *int    `json:"contributionCount"`
	Color             *string `json:"color"`
}

type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

type RepositoryConnection struct {
	TotalCount *int          `json:"totalCount"`
	PageInfo   *PageInfo     `json:"pageInfo"`
	Nodes      []*Repository `json:"nodes"`
}

type Repository struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	NameWithOwner    string              `json:"nameWithOwner"`
	Description      *string             `json:"description"`
	HomepageURL      *string             `json:"homepageUrl"`
	URL              string              `json:"url"`
	StargazerCount   *int                `json:"stargazerCount"`
	ForkCount        *int                `json:"forkCount"`
	IsPrivate        bool                `json:"isPrivate"`
	IsArchived       bool                `json:"isArchived"`
	IsTemplate       bool                `json:"isTemplate"`
	PrimaryLanguage  *Language           `json:"primaryLanguage"`
	UpdatedAt        string              `json:"updatedAt"`
	CreatedAt        string              `json:"createdAt"`
	PushedAt         string              `json:"pushedAt"`
	Languages        *LanguageConnection `json:"languages"`
	DefaultBranchRef *Ref                `json:"defaultBranchRef"`
}

type Language struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type LanguageConnection struct {
	TotalSize *int            `json:"totalSize"`
	Edges     []*LanguageEdge `json:"edges"`
}

type LanguageEdge struct {
	Size *int      `json:"size"`
	Node *Language `json:"node"`
}

type Ref struct {
	Target *RefTarget `json:"target"`
}

// RefTarget is the Commit a branch points at. History is absent when the
// target is some other GitObject.
type RefTarget struct {
	History *Count `json:"history"`
}
