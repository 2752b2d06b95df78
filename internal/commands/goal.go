package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"gobroke/internal/cli"
	"gobroke/internal/core"
	"gobroke/internal/theme"
)

func newGoalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Plan savings toward the things you want",
	}
	cmd.AddCommand(newGoalAddCommand())
	cmd.AddCommand(newGoalListCommand())
	cmd.AddCommand(newGoalRemoveCommand())
	return cmd
}

func newGoalAddCommand() *cobra.Command {
	var (
		targetText string
		dateText   string
		incomeText string
		rate       float64
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			target, err := core.ParseAmount(targetText)
			if err != nil {
				return fmt.Errorf("parse target %q: %w", targetText, err)
			}

			income := decimal.Zero
			if incomeText == "" {
				incomeText = app.Config.WeeklyIncome
			}
			if parsed, err := core.ParseAmount(incomeText); err == nil {
				income = parsed
			}

			if !cmd.Flags().Changed("rate") {
				rate = app.Config.SavingsRate
			}

			g := core.Goal{
				Title:        strings.TrimSpace(args[0]),
				TargetAmount: target,
				CreatedAt:    time.Now(),
				WeeklyIncome: income,
				SavingsRate:  rate,
			}
			if dateText != "" {
				d, err := time.Parse("2006-01-02", dateText)
				if err != nil {
					return fmt.Errorf("parse date %q: %w", dateText, err)
				}
				g.TargetDate = &d
			}
			if err := g.Validate(); err != nil {
				return err
			}

			id, err := app.Store.CreateGoal(cmd.Context(), g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %d: %s (%s)\n", id, g.Title, formatAmount(target.InexactFloat64()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetText, "target", "t", "", "target amount (required)")
	cmd.Flags().StringVarP(&dateText, "date", "d", "", "target date as YYYY-MM-DD")
	cmd.Flags().StringVarP(&incomeText, "income", "i", "", "weekly income for the plan (default from config)")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0.2, "savings rate 0-0.8 (default from config)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGoalListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with their savings plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			goals, err := app.Store.ListGoals(cmd.Context())
			if err != nil {
				return err
			}

			styles := theme.NewStyles(theme.ForAccent(app.Config.Accent))
			out := cmd.OutOrStdout()
			if len(goals) == 0 {
				fmt.Fprintln(out, styles.Muted.Render("No goals yet. Save one from a quiz with --goal, or: gobroke goal add"))
				return nil
			}

			for _, g := range goals {
				fmt.Fprintf(out, "%4d %s %s\n", g.ID, styles.Title.Render(g.Title), formatAmount(g.TargetAmount.InexactFloat64()))
				if g.TargetDate != nil {
					fmt.Fprintf(out, "     target date %s\n", g.TargetDate.Format("2006-01-02"))
				}
				if weeks, ok := core.SavingsPlan(g); ok {
					fmt.Fprintf(out, "     %s\n", styles.Label.Render(fmt.Sprintf("estimated %d weeks at current savings", weeks)))
				} else {
					fmt.Fprintf(out, "     %s\n", styles.Muted.Render("add weekly income + savings rate to see a plan"))
				}
			}
			return nil
		},
	}
}

func newGoalRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q", args[0])
			}

			app, err := cli.Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Store.DeleteGoal(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %d\n", id)
			return nil
		},
	}
}
