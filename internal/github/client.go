package github

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-github/v58/github"
	"golang.org/x/oauth2"
)

// ErrNoRepoInfo is returned when the repository cannot be determined from
// the environment or the git remote.
var ErrNoRepoInfo = errors.New("repository owner and name could not be determined")

// Client wraps the GitHub API for a single repository.
type Client struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient creates an authenticated client for owner/repo.
func NewClient(token, owner, repo string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		client: github.NewClient(tc),
		owner:  owner,
		repo:   repo,
	}
}

// PullRequest returns a review feedback source for one PR.
func (c *Client) PullRequest(number int) *PullRequest {
	return &PullRequest{client: c, number: number}
}

// PullRequest adapts one GitHub pull request to PullRequestSource.
type PullRequest struct {
	client *Client
	number int
}

// ListReviewComments fetches all file-level review comments on the PR,
// following pagination.
func (p *PullRequest) ListReviewComments(ctx context.Context) ([]ReviewComment, error) {
	c := p.client
	opts := &github.PullRequestListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var result []ReviewComment
	for {
		comments, resp, err := c.client.PullRequests.ListComments(ctx, c.owner, c.repo, p.number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to get PR comments: %w", err)
		}

		for _, comment := range comments {
			result = append(result, ReviewComment{
				ID:        comment.GetID(),
				Author:    comment.GetUser().GetLogin(),
				Body:      comment.GetBody(),
				File:      comment.GetPath(),
				Line:      comment.GetOriginalLine(),
				URL:       comment.GetHTMLURL(),
				CreatedAt: comment.GetCreatedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

// ListReviews fetches all top-level review submissions on the PR.
func (p *PullRequest) ListReviews(ctx context.Context) ([]Review, error) {
	c := p.client
	opts := &github.ListOptions{PerPage: 100}

	var result []Review
	for {
		reviews, resp, err := c.client.PullRequests.ListReviews(ctx, c.owner, c.repo, p.number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to get reviews: %w", err)
		}

		for _, review := range reviews {
			result = append(result, Review{
				ID:          review.GetID(),
				Author:      review.GetUser().GetLogin(),
				Body:        review.GetBody(),
				State:       review.GetState(),
				URL:         review.GetHTMLURL(),
				SubmittedAt: review.GetSubmittedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

// IsAPIError reports whether err originated from the GitHub API rather
// than from local configuration or transport setup.
func IsAPIError(err error) bool {
	var apiErr *github.ErrorResponse
	return errors.As(err, &apiErr)
}

// GetRepoInfo resolves the target repository. REPO_OWNER and REPO_NAME
// take precedence; without them the origin git remote is parsed.
func GetRepoInfo() (string, string, error) {
	owner := os.Getenv("REPO_OWNER")
	repo := os.Getenv("REPO_NAME")
	if owner != "" && repo != "" {
		return owner, repo, nil
	}

	owner, repo, err := getRemoteRepoInfo()
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrNoRepoInfo, err)
	}
	return owner, repo, nil
}

func getRemoteRepoInfo() (string, string, error) {
	cmd := exec.Command("git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("failed to get git remote URL: %w", err)
	}

	url := strings.TrimSpace(string(output))

	// SSH: git@github.com:owner/repo.git
	// HTTPS: https://github.com/owner/repo.git
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.HasPrefix(url, "https://github.com/"):
		path = strings.TrimPrefix(url, "https://github.com/")
	default:
		return "", "", fmt.Errorf("unsupported git remote URL format: %s", url)
	}

	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid remote URL format: %s", url)
	}

	return parts[0], parts[1], nil
}
