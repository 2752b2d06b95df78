package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gobroke/internal/cli"
	"gobroke/internal/theme"
)

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past quiz results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			entries, err := app.Store.QuizHistory(cmd.Context())
			if err != nil {
				return err
			}

			styles := theme.NewStyles(theme.ForAccent(app.Config.Accent))
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, styles.Muted.Render("No quiz results yet. Run: gobroke quiz <item>"))
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(out, "%s  need %3d%% / want %3d%%  %s\n",
					e.Date.Format("2006-01-02"),
					e.NeedPercent,
					e.WantPercent,
					e.ItemName)
			}
			return nil
		},
	}
}
