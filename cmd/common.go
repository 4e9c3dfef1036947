package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"prcopilot/internal/config"
	"prcopilot/internal/github"
	"prcopilot/internal/storage"
	"prcopilot/internal/triage"
	"prcopilot/internal/ui"
)

// resolvePRNumber picks the PR number from the command argument, falling
// back to the PR_NUMBER environment variable. Both must parse as an
// integer; failures here are configuration errors, caught before any
// API call.
func resolvePRNumber(args []string) (int, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		raw = os.Getenv("PR_NUMBER")
	}

	if raw == "" {
		return 0, fmt.Errorf("no PR number: pass one as an argument or set PR_NUMBER")
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("PR number must be an integer, got %q", raw)
	}
	return n, nil
}

// newRepoClient builds an authenticated client for the target repository.
// Token and repository resolution are both configuration concerns and
// fail before any data fetch.
func newRepoClient(authProvider github.AuthTokenProvider, repoProvider github.RepoInfoProvider) (*github.Client, error) {
	token, err := authProvider.GetToken()
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	owner, repo, err := repoProvider.GetRepoInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	return github.NewClient(token, owner, repo), nil
}

// describeError distinguishes GitHub API failures from everything else,
// mirroring how the report consumer reads CI logs.
func describeError(err error) error {
	if github.IsAPIError(err) {
		return fmt.Errorf("GitHub API error: %w", err)
	}
	return err
}

// recordRun stores run statistics when a history database is configured.
// Failures are reported as warnings; history is bookkeeping, not a
// delivery destination.
func recordRun(ctx context.Context, cfg *config.Config, prNumber int, kind string, items []triage.ActionableItem) {
	url := cfg.HistoryDatabaseURL()
	if url == "" {
		return
	}

	history, err := storage.NewHistory(url)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warning(fmt.Sprintf("Warning: run history unavailable: %v", err)))
		return
	}
	defer history.Close()

	counts := triage.CountByCategory(items)
	rec := storage.RunRecord{
		PRNumber:     prNumber,
		Kind:         kind,
		TotalItems:   len(items),
		Critical:     counts["critical"],
		Bugs:         counts["bug"],
		Improvements: counts["improvement"],
		Style:        counts["style"],
		Questions:    counts["question"],
	}

	if err := history.Record(ctx, rec); err != nil {
		fmt.Fprintln(os.Stderr, ui.Warning(fmt.Sprintf("Warning: failed to record run history: %v", err)))
	}
}
