package cmd

import (
	"github.com/spf13/cobra"
)

// Version information (set at build time)
var (
	appVersion    = "dev"
	appCommitHash = "unknown"
	appBuildDate  = "unknown"
)

// SetVersionInfo sets the version information from build-time variables
func SetVersionInfo(version, commitHash, buildDate string) {
	appVersion = version
	appCommitHash = commitHash
	appBuildDate = buildDate
}

// NewRootCmd creates a new instance of the root command for testing
// This prevents shared state issues in concurrent tests
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prcopilot",
		Short: "PR review triage and status reporting for CI",
		Long: `prcopilot turns GitHub Pull Request review feedback into Markdown
reports suitable for CI step summaries.

Examples:
  prcopilot suggest       # Fix proposals for the PR named by PR_NUMBER
  prcopilot suggest 123   # Fix proposals for PR #123
  prcopilot status 123    # Status report for PR #123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSuggestCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

var rootCmd = NewRootCmd()

func Execute() error {
	return rootCmd.Execute()
}
