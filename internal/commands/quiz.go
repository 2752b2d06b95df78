package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"gobroke/internal/cli"
	"gobroke/internal/core"
	"gobroke/internal/score"
	"gobroke/internal/theme"
)

func newQuizCommand() *cobra.Command {
	var saveGoal bool

	cmd := &cobra.Command{
		Use:   "quiz <item>",
		Short: "Run the want-versus-need questionnaire for a prospective purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemName := strings.TrimSpace(args[0])
			if itemName == "" {
				return core.ErrEmptyTitle
			}

			app, err := cli.Setup()
			if err != nil {
				return err
			}
			defer app.Close()

			questions := score.Questions()
			answers := askAnswers(cmd.InOrStdin(), cmd.OutOrStdout(), questions, itemName)
			result := score.Score(questions, answers)

			styles := theme.NewStyles(theme.ForAccent(app.Config.Accent))
			renderResult(cmd.OutOrStdout(), styles, itemName, result)

			if err := recordResult(cmd, app, itemName, result); err != nil {
				return err
			}

			if saveGoal {
				return savePrefilledGoal(cmd, app, itemName, questions, answers)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&saveGoal, "goal", false, "save a savings goal prefilled from this quiz")
	return cmd
}

// askAnswers walks the question list on the given reader. Input is forgiving:
// unparseable numbers coerce to 0, unrecognized yes/no input counts as no, and
// an out-of-range choice picks the first option. Running out of input stops
// early; scoring treats the answered prefix as intentional truncation.
func askAnswers(in io.Reader, out io.Writer, questions []score.Question, itemName string) []score.Answer {
	scanner := bufio.NewScanner(in)
	answers := make([]score.Answer, 0, len(questions))

	for _, q := range questions {
		text := strings.ReplaceAll(q.Text, "this item", itemName)
		fmt.Fprintln(out, text)

		switch q.Kind {
		case score.KindYesNo:
			fmt.Fprint(out, "  [y/n] > ")
		case score.KindNumber:
			fmt.Fprint(out, "  [number] > ")
		case score.KindChoice:
			for i, c := range q.Choices {
				fmt.Fprintf(out, "  %d) %s\n", i+1, c)
			}
			fmt.Fprint(out, "  [choice] > ")
		}

		if !scanner.Scan() {
			break
		}
		answers = append(answers, parseAnswer(q, scanner.Text()))
	}

	return answers
}

func parseAnswer(q score.Question, input string) score.Answer {
	input = strings.ToLower(strings.TrimSpace(input))

	switch q.Kind {
	case score.KindNumber:
		var n float64
		if amt, err := core.ParseAmount(input); err == nil {
			n = amt.InexactFloat64()
		}
		return score.Number(n)
	case score.KindChoice:
		i, err := strconv.Atoi(input)
		if err != nil || i < 1 || i > len(q.Choices) {
			i = 1
		}
		return score.ChoiceIndex(i - 1)
	default:
		if input == "y" || input == "yes" {
			return score.Yes()
		}
		return score.No()
	}
}

func renderResult(w io.Writer, styles theme.Styles, itemName string, r score.Result) {
	verdictStyle := styles.Middle
	switch r.Verdict {
	case score.VerdictNeed:
		verdictStyle = styles.Need
	case score.VerdictWant:
		verdictStyle = styles.Want
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n",
		styles.Title.Render("Result:"),
		verdictStyle.Render(fmt.Sprintf("Need %d%% | Want %d%%", r.NeedPercent, r.WantPercent)))
	fmt.Fprintln(w, r.Summary(itemName))
}

func recordResult(cmd *cobra.Command, app *cli.App, itemName string, r score.Result) error {
	ctx := cmd.Context()
	entries, err := app.Store.QuizHistory(ctx)
	if err != nil {
		return err
	}

	entry := score.HistoryEntry{
		ID:          uuid.NewString(),
		ItemName:    itemName,
		NeedPercent: r.NeedPercent,
		WantPercent: r.WantPercent,
		Date:        time.Now(),
	}
	updated := score.AppendHistory(entries, entry)
	if len(updated) > 0 && updated[0].ID != entry.ID {
		return nil // immediate repeat, nothing to persist
	}
	return app.Store.SaveQuizHistory(ctx, updated)
}

func savePrefilledGoal(cmd *cobra.Command, app *cli.App, itemName string, questions []score.Question, answers []score.Answer) error {
	price, ok := score.PriceAnswer(questions, answers)
	if !ok || price <= 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No price answered; goal not saved.")
		return nil
	}

	income, err := core.ParseAmount(app.Config.WeeklyIncome)
	if err != nil {
		income = decimal.Zero
	}

	g := core.Goal{
		Title:        itemName,
		TargetAmount: decimal.NewFromFloat(price),
		CreatedAt:    time.Now(),
		WeeklyIncome: income,
		SavingsRate:  app.Config.SavingsRate,
	}
	if err := g.Validate(); err != nil {
		return err
	}

	id, err := app.Store.CreateGoal(cmd.Context(), g)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved goal %d: %s (%s)\n", id, g.Title, formatAmount(price))
	return nil
}
