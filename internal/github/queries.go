package github

import (
	"fmt"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Query is a parsed, immutable GraphQL document. It is safe to share.
type Query struct {
	Name     string
	Document string

	declared map[string]bool // variable name -> required
}

// Variables lists the declared variable names in sorted order.
func (q Query) Variables() []string {
	names := make([]string, 0, len(q.declared))
	for name := range q.declared {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// check rejects undeclared variables and missing non-null ones.
func (q Query) check(vars map[string]any) error {
	for name := range vars {
		if _, ok := q.declared[name]; !ok {
			return fmt.Errorf("%s does not declare $%s", q.Name, name)
		}
	}
	for name, required := range q.declared {
		if !required {
			continue
		}
		if v, ok := vars[name]; !ok || v == nil {
			return fmt.Errorf("%s requires $%s", q.Name, name)
		}
	}
	return nil
}

func mustParse(document string) Query {
	doc, err := parser.ParseQuery(&ast.Source{Input: document})
	if err != nil {
		panic(fmt.Sprintf("github: invalid query document: %v", err))
	}
	if len(doc.Operations) != 1 {
		panic(fmt.Sprintf("github: expected one operation, found %d", len(doc.Operations)))
	}

	op := doc.Operations[0]
	q := Query{
		Name:     op.Name,
		Document: document,
		declared: make(map[string]bool, len(op.VariableDefinitions)),
	}
	for _, def := range op.VariableDefinitions {
		q.declared[def.Variable] = def.Type.NonNull && def.DefaultValue == nil
	}
	return q
}

const repositoryFields = `
fragment RepositoryFields on Repository {
  id
  name
  nameWithOwner
  description
  homepageUrl
  url
  stargazerCount
  forkCount
  isPrivate
  isArchived
  isTemplate
  primaryLanguage {
    name
    color
  }
  updatedAt
  createdAt
  pushedAt
  languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
    totalSize
    edges {
      size
      node {
        name
        color
      }
    }
  }
  defaultBranchRef {
    target {
      ... on Commit {
        history {
          totalCount
        }
      }
    }
  }
}
`

// StatsQuery fetches aggregate profile counters and the first page of owned
// repositories. The merged pull request count is only requested when
// $includeMergedPullRequests is true.
var StatsQuery = mustParse(`
query PortfolioStats($login: String!, $startTime: DateTime!, $includeMergedPullRequests: Boolean!) {
  user(login: $login) {
    name
    login
    avatarUrl
    followers {
      totalCount
    }
    following {
      totalCount
    }
    contributionsCollection(from: $startTime) {
      totalCommitContributions
      totalPullRequestReviewContributions
    }
    pullRequests {
      totalCount
    }
    mergedPullRequests: pullRequests(states: MERGED) @include(if: $includeMergedPullRequests) {
      totalCount
    }
    openIssues: issues(states: OPEN) {
      totalCount
    }
    closedIssues: issues(states: CLOSED) {
      totalCount
    }
    repositoriesContributedTo(contributionTypes: [COMMIT, ISSUE, PULL_REQUEST, REPOSITORY]) {
      totalCount
    }
    repositories(first: 100, ownerAffiliations: OWNER, orderBy: {field: STARGAZERS, direction: DESC}) {
      totalCount
      nodes {
        ...RepositoryFields
      }
    }
  }
}
` + repositoryFields)

// ContributionsQuery fetches the contribution calendar for [from, to).
var ContributionsQuery = mustParse(`
query PortfolioContributions($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            color
          }
        }
      }
    }
  }
}
`)

// RepositoriesQuery fetches one page of owned repositories by stars.
var RepositoriesQuery = mustParse(`
query PortfolioRepositories($login: String!, $after: String) {
  user(login: $login) {
    repositories(first: 100, after: $after, ownerAffiliations: OWNER, orderBy: {field: STARGAZERS, direction: DESC}) {
      totalCount
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        ...RepositoryFields
      }
    }
  }
}
` + repositoryFields)
