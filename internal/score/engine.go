package score

import "math"

// Verdict classifies a need percentage.
type Verdict string

const (
	VerdictNeed       Verdict = "NEED"
	VerdictBorderline Verdict = "borderline, consider carefully"
	VerdictWant       Verdict = "WANT"
)

// Result is the outcome of scoring one questionnaire run.
type Result struct {
	NeedPercent int
	WantPercent int
	Verdict     Verdict
}

// Score zips questions with answers positionally and normalizes the summed
// contributions into a need percentage.
//
// The zip runs over the shorter of the two lists: extra answers are ignored,
// and unanswered questions contribute nothing. This truncation is intentional.
// The maximum score, however, always sums the best-possible answer of EVERY
// question, so an incomplete run can never reach 100%.
func Score(questions []Question, answers []Answer) Result {
	n := len(answers)
	if len(questions) < n {
		n = len(questions)
	}

	total := 0
	for i := 0; i < n; i++ {
		total += questions[i].Score(answers[i])
	}

	max := 0
	for _, q := range questions {
		max += q.Score(q.bestAnswer())
	}

	needPercent := 0
	if max > 0 {
		needPercent = int(math.Round(float64(total) / float64(max) * 100))
	}

	return Result{
		NeedPercent: needPercent,
		WantPercent: 100 - needPercent,
		Verdict:     classify(needPercent),
	}
}

// classify uses strict comparisons: exactly 70 is borderline, exactly 40 is
// a want.
func classify(needPercent int) Verdict {
	if needPercent > 70 {
		return VerdictNeed
	}
	if needPercent > 40 {
		return VerdictBorderline
	}
	return VerdictWant
}

// PriceAnswer extracts the value entered for the numeric price question, used
// to prefill a savings goal from a quiz run. ok is false when the price
// question was not answered.
func PriceAnswer(questions []Question, answers []Answer) (float64, bool) {
	n := len(answers)
	if len(questions) < n {
		n = len(questions)
	}
	for i := 0; i < n; i++ {
		if questions[i].Kind == KindNumber && answers[i].Kind == AnswerNumber {
			return answers[i].Number, true
		}
	}
	return 0, false
}

// Summary phrases the verdict for display.
func (r Result) Summary(itemName string) string {
	switch r.Verdict {
	case VerdictNeed:
		return itemName + " is quite likely a NEED. This purchase seems justified."
	case VerdictBorderline:
		return itemName + " is somewhere between a want and a need. Consider carefully."
	default:
		return itemName + " is more of a WANT. Think twice before buying."
	}
}
