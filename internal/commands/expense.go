package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gobroke/internal/cli"
	"gobroke/internal/core"
	"gobroke/internal/theme"
)

func newExpenseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and manage expenses",
	}
	cmd.AddCommand(newExpenseAddCommand())
	cmd.AddCommand(newExpenseListCommand())
	cmd.AddCommand(newExpenseRemoveCommand())
	return cmd
}

func newExpenseAddCommand() *cobra.Command {
	var (
		amountText string
		dateText   string
		category   string
		recurring  bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			amount, err := core.ParseAmount(amountText)
			if err != nil {
				return fmt.Errorf("parse amount %q: %w", amountText, err)
			}

			date := time.Now()
			if dateText != "" {
				if date, err = time.Parse("2006-01-02", dateText); err != nil {
					return fmt.Errorf("parse date %q: %w", dateText, err)
				}
			}

			e := core.Expense{
				Title:     strings.TrimSpace(args[0]),
				Amount:    amount,
				Date:      date,
				Category:  category,
				Recurring: recurring,
			}
			if err := e.Validate(); err != nil {
				return err
			}

			id, err := app.Store.CreateExpense(cmd.Context(), e)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded expense %d: %s %s\n", id, e.Title, formatAmount(e.Amount.InexactFloat64()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountText, "amount", "a", "", "amount, e.g. 12.50 (required)")
	cmd.Flags().StringVarP(&dateText, "date", "d", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&category, "category", "c", core.DefaultCategory, "category name")
	cmd.Flags().BoolVarP(&recurring, "recurring", "r", false, "repeat monthly")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newExpenseListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			expenses, err := app.Store.ListExpenses(cmd.Context())
			if err != nil {
				return err
			}

			styles := theme.NewStyles(theme.ForAccent(app.Config.Accent))
			out := cmd.OutOrStdout()
			if len(expenses) == 0 {
				fmt.Fprintln(out, styles.Muted.Render("No expenses yet. Add one with: gobroke expense add"))
				return nil
			}

			for _, e := range expenses {
				marker := " "
				if e.Recurring {
					marker = "~"
				}
				fmt.Fprintf(out, "%4d %s %s  %10s  %-12s %s\n",
					e.ID,
					marker,
					e.Date.Format("2006-01-02"),
					formatAmount(e.Amount.InexactFloat64()),
					e.Category,
					e.Title)
			}
			fmt.Fprintln(out, styles.Muted.Render("~ repeats monthly"))
			return nil
		},
	}
}

func newExpenseRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			app, err := cli.Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Store.DeleteExpense(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted expense %d\n", id)
			return nil
		},
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
