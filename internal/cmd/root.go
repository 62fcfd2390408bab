package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "campusctl",
	Short: "Campus resource coordination CLI",
	Long: `campusctl is the command-line client for the campus resource
coordination platform. It manages your session with the API gateway and
wraps the resource, booking and user services behind typed commands.

Sign in once with 'campusctl auth login'; tokens are stored under
~/.campusctl and refreshed transparently when they expire.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Global flag values, applied on top of the configuration file.
var (
	flagAPIURL  string
	flagOutput  string
	flagVerbose bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context, so in-flight
// requests are cancelled when the process is interrupted.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "API gateway URL (overrides configuration)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
