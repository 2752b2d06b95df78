package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobroke/internal/score"
)

func TestAskAnswersFullRun(t *testing.T) {
	questions := score.Questions()
	// One line per question: essential yes, health yes, price, affordable yes,
	// duration >6mo, no alternative, don't own, pay double, goal, holds value,
	// not impulse.
	input := strings.Join([]string{
		"y", "y", "40", "y", "3", "n", "n", "y", "y", "n", "n",
	}, "\n")

	var out strings.Builder
	answers := askAnswers(strings.NewReader(input), &out, questions, "a kettle")
	require.Len(t, answers, len(questions))

	r := score.Score(questions, answers)
	assert.Equal(t, 100, r.NeedPercent)
	assert.Equal(t, score.VerdictNeed, r.Verdict)

	// Question text substitutes the item name.
	assert.Contains(t, out.String(), "a kettle")
	assert.NotContains(t, out.String(), "this item")
}

func TestAskAnswersStopsWhenInputEnds(t *testing.T) {
	questions := score.Questions()
	answers := askAnswers(strings.NewReader("y\ny\n"), &strings.Builder{}, questions, "thing")
	assert.Len(t, answers, 2)
}

func TestParseAnswer(t *testing.T) {
	questions := score.Questions()
	yesNoQ := questions[0]
	priceQ := questions[2]
	choiceQ := questions[4]

	tests := []struct {
		name  string
		q     score.Question
		input string
		want  score.Answer
	}{
		{"yes", yesNoQ, "y", score.Yes()},
		{"yes word", yesNoQ, "YES", score.Yes()},
		{"no", yesNoQ, "n", score.No()},
		{"garbage counts as no", yesNoQ, "maybe", score.No()},
		{"price", priceQ, "129.99", score.Number(129.99)},
		{"price with currency symbol", priceQ, "€45", score.Number(45)},
		{"price with comma decimal", priceQ, "12,34", score.Number(12.34)},
		{"price with thousands separator", priceQ, "1.234,50", score.Number(1234.5)},
		{"unparseable price coerces to zero", priceQ, "cheap", score.Number(0)},
		{"negative price coerces to zero", priceQ, "-5", score.Number(0)},
		{"choice is one-based", choiceQ, "2", score.ChoiceIndex(1)},
		{"choice out of range picks first", choiceQ, "9", score.ChoiceIndex(0)},
		{"choice garbage picks first", choiceQ, "x", score.ChoiceIndex(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAnswer(tt.q, tt.input))
		})
	}
}
