package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v58/github"
)

// CheckRun summarizes a single CI check run on the PR head commit.
type CheckRun struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion"`
}

// ReviewStats counts review submissions by state.
type ReviewStats struct {
	Approved         int `json:"approved"`
	ChangesRequested int `json:"changes_requested"`
	Commented        int `json:"commented"`
	Total            int `json:"total"`
}

// PRStatus holds everything the status report renders for one PR.
type PRStatus struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	BaseRef string `json:"base_ref"`
	HeadRef string `json:"head_ref"`
	Draft   bool   `json:"draft"`
	URL     string `json:"url"`

	Commits      int `json:"commits"`
	ChangedFiles int `json:"changed_files"`
	Additions    int `json:"additions"`
	Deletions    int `json:"deletions"`

	Labels         []string `json:"labels"`
	Mergeable      *bool    `json:"mergeable"`
	MergeableState string   `json:"mergeable_state"`

	ReviewStats  ReviewStats `json:"review_stats"`
	CommentCount int         `json:"comment_count"`
	CheckRuns    []CheckRun  `json:"check_runs"`
}

// GetStatus assembles a consolidated PRStatus: metadata and size stats from
// the PR itself, review counts by state, total review-comment activity, and
// the check runs attached to the head commit.
func (c *Client) GetStatus(ctx context.Context, prNumber int) (*PRStatus, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, c.owner, c.repo, prNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR #%d: %w", prNumber, err)
	}

	src := c.PullRequest(prNumber)

	reviews, err := src.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	var stats ReviewStats
	for _, r := range reviews {
		switch r.State {
		case "APPROVED":
			stats.Approved++
		case "CHANGES_REQUESTED":
			stats.ChangesRequested++
		case "COMMENTED":
			stats.Commented++
		}
	}
	stats.Total = len(reviews)

	// Total comment count is a proxy for thread activity; grouping into
	// distinct threads would need reply-id mapping.
	comments, err := src.ListReviewComments(ctx)
	if err != nil {
		return nil, err
	}

	checkRuns, err := c.listCheckRuns(ctx, pr.GetHead().GetSHA())
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}

	mergeableState := pr.GetMergeableState()
	if mergeableState == "" {
		mergeableState = "unknown"
	}

	return &PRStatus{
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		Author:         pr.GetUser().GetLogin(),
		BaseRef:        pr.GetBase().GetRef(),
		HeadRef:        pr.GetHead().GetRef(),
		Draft:          pr.GetDraft(),
		URL:            pr.GetHTMLURL(),
		Commits:        pr.GetCommits(),
		ChangedFiles:   pr.GetChangedFiles(),
		Additions:      pr.GetAdditions(),
		Deletions:      pr.GetDeletions(),
		Labels:         labels,
		Mergeable:      pr.Mergeable,
		MergeableState: mergeableState,
		ReviewStats:    stats,
		CommentCount:   len(comments),
		CheckRuns:      checkRuns,
	}, nil
}

func (c *Client) listCheckRuns(ctx context.Context, sha string) ([]CheckRun, error) {
	opts := &github.ListCheckRunsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var result []CheckRun
	for {
		runs, resp, err := c.client.Checks.ListCheckRunsForRef(ctx, c.owner, c.repo, sha, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to get check runs for %s: %w", sha, err)
		}

		for _, run := range runs.CheckRuns {
			result = append(result, CheckRun{
				Name:       run.GetName(),
				Status:     run.GetStatus(),
				Conclusion: run.GetConclusion(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}
