package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"gobroke/internal/analytics"
	"gobroke/internal/cli"
	"gobroke/internal/theme"
)

// barWidth is the widest daily bar in the spending graph.
const barWidth = 40

func newInsightsCommand() *cobra.Command {
	var graphDays int

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show spending summary and daily graph",
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

			now := time.Now()
			occurrences := analytics.Occurrences(expenses, analytics.Cutoff(expenses, now))
			summary := analytics.Summarize(occurrences, now, time.Local)
			points := analytics.DailyTotals(occurrences, time.Local)

			styles := theme.NewStyles(theme.ForAccent(app.Config.Accent))
			renderSummary(cmd.OutOrStdout(), styles, summary)
			renderDailyGraph(cmd.OutOrStdout(), styles, points, graphDays)
			return nil
		},
	}

	cmd.Flags().IntVar(&graphDays, "graph-days", 14, "how many recent days to graph")
	return cmd
}

func renderSummary(w io.Writer, styles theme.Styles, s analytics.InsightsSummary) {
	fmt.Fprintln(w, styles.Title.Render("Insights"))
	fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Total all time:"), styles.Value.Render(formatAmount(s.TotalAllTime)))
	fmt.Fprintf(w, "%s %s (%s/day)\n",
		styles.Label.Render("Last 30 days:"),
		styles.Value.Render(formatAmount(s.Last30Total)),
		formatAmount(s.AverageDailyLast30))

	if s.TopCategory != nil {
		fmt.Fprintf(w, "%s %s (%s)\n",
			styles.Label.Render("Top category:"),
			styles.Value.Render(s.TopCategory.Name),
			formatAmount(s.TopCategory.Total))
	}
	if s.BiggestDay != nil {
		fmt.Fprintf(w, "%s %s (%s)\n",
			styles.Label.Render("Biggest day:"),
			styles.Value.Render(s.BiggestDay.Date.Format("2006-01-02")),
			formatAmount(s.BiggestDay.Total))
	}

	fmt.Fprintf(w, "%s %s this week, %s the week before\n",
		styles.Label.Render("Weekly:"),
		formatAmount(s.Last7Total),
		formatAmount(s.Previous7Total))
	if s.TrendPercent != nil {
		fmt.Fprintf(w, "%s %+.1f%% week over week\n", styles.Label.Render("Trend:"), *s.TrendPercent)
	} else {
		fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Trend:"), styles.Muted.Render("not enough history"))
	}
}

func renderDailyGraph(w io.Writer, styles theme.Styles, points []analytics.DailyPoint, days int) {
	if days > 0 && len(points) > days {
		points = points[len(points)-days:]
	}
	if len(points) == 0 {
		return
	}

	maxTotal := 0.0
	for _, p := range points {
		if p.Total > maxTotal {
			maxTotal = p.Total
		}
	}
	if maxTotal <= 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Title.Render("Daily spending"))
	for _, p := range points {
		width := int(p.Total / maxTotal * barWidth)
		if width < 1 {
			width = 1
		}
		fmt.Fprintf(w, "%s %s %s\n",
			p.Date.Format("01-02"),
			styles.Bar.Render(strings.Repeat("█", width)),
			styles.Muted.Render(formatAmount(p.Total)))
	}
}
