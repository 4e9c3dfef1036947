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
	"prcopilot/internal/ui"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	ConfigPath string
}

func newStatusCmd() *cobra.Command {
	opts := &StatusOptions{}

	cmd := &cobra.Command{
		Use:   "status [PR_NUMBER]",
		Short: "Generate a detailed PR status report",
		Long: `Fetch pull request metadata, review activity, check runs, and merge
state, and render a status report with a readiness checklist.

Examples:
  prcopilot status           # PR number from the PR_NUMBER environment variable
  prcopilot status 123       # Status report for PR #123`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "Path to the pr-copilot config file")

	return cmd
}

func runStatus(args []string, opts *StatusOptions) error {
	ctx := context.Background()

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

	fmt.Fprintln(os.Stderr, ui.Dim(fmt.Sprintf("Fetching status for PR #%d...", prNumber)))

	st, err := client.GetStatus(ctx, prNumber)
	if err != nil {
		return describeError(err)
	}

	report.NewWriter().Write(report.Status(st))

	recordRun(ctx, cfg, prNumber, storage.RunKindStatus, nil)

	return nil
}
