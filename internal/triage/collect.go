package triage

import (
	"context"
	"sort"
	"time"

	"prcopilot/internal/github"
)

// Collect gathers actionable review feedback from a pull request.
//
// Every file-level comment is run through the actionability filter;
// top-level reviews are included only when their state is
// CHANGES_REQUESTED. Comments with empty bodies are dropped. The result
// is sorted ascending by (priority, timestamp), so the highest-priority
// items come first and ties keep the earliest feedback on top. Errors
// from the source propagate to the caller unchanged; no retries are
// attempted.
func Collect(ctx context.Context, src github.PullRequestSource, keywords []string) ([]ActionableItem, error) {
	var items []ActionableItem

	comments, err := src.ListReviewComments(ctx)
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		if !IsActionable(comment.Body, keywords) {
			continue
		}
		items = append(items, buildItem(comment.ID, comment.Author, comment.Body, comment.File, comment.Line, comment.URL, comment.CreatedAt))
	}

	reviews, err := src.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	for _, review := range reviews {
		if review.State != "CHANGES_REQUESTED" {
			continue
		}
		if !IsActionable(review.Body, keywords) {
			continue
		}
		// Top-level reviews never carry a file location
		items = append(items, buildItem(review.ID, review.Author, review.Body, "", 0, review.URL, review.SubmittedAt))
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority < items[j].Priority
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

func buildItem(id int64, author, body, file string, line int, url string, createdAt time.Time) ActionableItem {
	category, priority := Categorize(body)

	return ActionableItem{
		ID:              id,
		Author:          author,
		Body:            body,
		Category:        category,
		Priority:        priority,
		File:            file,
		Line:            line,
		CodeSuggestions: ExtractCodeSuggestions(body),
		URL:             url,
		CreatedAt:       createdAt,
	}
}

// CountByCategory tallies items per category.
func CountByCategory(items []ActionableItem) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Category]++
	}
	return counts
}
