// Package commands wires the CLI surface. Commands stay thin: they read
// records from the store, hand them to the pure analytics/score packages and
// render the result.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gobroke",
		Short: "Track spending, sort wants from needs, plan savings",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newExpenseCommand())
	rootCmd.AddCommand(newInsightsCommand())
	rootCmd.AddCommand(newQuizCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newGoalCommand())

	return rootCmd
}
