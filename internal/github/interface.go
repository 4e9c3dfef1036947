package github

import (
	"context"
	"time"
)

// ReviewComment is a file-level review comment on a pull request.
type ReviewComment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	File      string    `json:"file"`
	Line      int       `json:"line"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a top-level review submission on a pull request.
type Review struct {
	ID          int64     `json:"id"`
	Author      string    `json:"author"`
	Body        string    `json:"body"`
	State       string    `json:"state"`
	URL         string    `json:"url"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// PullRequestSource defines the review feedback surface of a pull request.
// Callers adapt their provider's native objects to this interface, which
// keeps the collector testable with plain data instead of live API calls.
type PullRequestSource interface {
	ListReviewComments(ctx context.Context) ([]ReviewComment, error)
	ListReviews(ctx context.Context) ([]Review, error)
}

// AuthTokenProvider defines the interface for authentication token retrieval.
type AuthTokenProvider interface {
	GetToken() (string, error)
}

// RepoInfoProvider defines the interface for repository information retrieval.
type RepoInfoProvider interface {
	GetRepoInfo() (owner, repo string, err error)
}

// DefaultAuthTokenProvider resolves tokens through the standard chain.
type DefaultAuthTokenProvider struct{}

func (p *DefaultAuthTokenProvider) GetToken() (string, error) {
	return GetGitHubToken()
}

// DefaultRepoInfoProvider resolves the repository from the environment,
// falling back to the origin git remote.
type DefaultRepoInfoProvider struct{}

func (p *DefaultRepoInfoProvider) GetRepoInfo() (string, string, error) {
	return GetRepoInfo()
}

// Ensure PullRequest implements PullRequestSource
var _ PullRequestSource = (*PullRequest)(nil)
