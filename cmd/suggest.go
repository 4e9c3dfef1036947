package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prcopilot/internal/config"
	"prcopilot/internal/github"
	"prcopilot/internal/report"
	"prcopilot/internal/storage"
	"prcopilot/internal/triage"
	"prcopilot/internal/ui"
)

// SuggestOptions contains options for the suggest command
type SuggestOptions struct {
	ConfigPath string
}

func newSuggestCmd() *cobra.Command {
	opts := &SuggestOptions{}

	cmd := &cobra.Command{
		Use:   "suggest [PR_NUMBER]",
		Short: "Parse review comments and generate fix proposals",
		Long: `Collect actionable review comments from a pull request, classify them
by category and priority, and render a fix-proposals report.

The report goes to stdout, to the GITHUB_STEP_SUMMARY file when that
variable is set, and to a uniquely named temp file.

Examples:
  prcopilot suggest          # PR number from the PR_NUMBER environment variable
  prcopilot suggest 123      # Fix proposals for PR #123`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "Path to the pr-copilot config file")

	return cmd
}

func runSuggest(args []string, opts *SuggestOptions) error {
	ctx := context.Background()

	// Configuration is validated in full before any data fetch
	prNumber, err := resolvePRNumber(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFrom(opts.ConfigPath)
	if err != nil {
		return err
	}

	client, err := newRepoClient(&github.DefaultAuthTokenProvider{}, &github.DefaultRepoInfoProvider{})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, ui.Dim(fmt.Sprintf("Parsing review comments for PR #%d...", prNumber)))

	items, err := triage.Collect(ctx, client.PullRequest(prNumber), cfg.ReviewHandling.ActionableKeywords)
	if err != nil {
		return describeError(err)
	}

	report.NewWriter().Write(report.Proposals(items))

	recordRun(ctx, cfg, prNumber, storage.RunKindSuggest, items)

	return nil
}
