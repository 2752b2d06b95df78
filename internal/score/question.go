// Package score implements the want-versus-need questionnaire: a fixed,
// ordered question set whose weighted answers are normalized into a
// need-percentage, plus a bounded history of past results.
package score

// QuestionKind tags how a question is answered.
type QuestionKind int

const (
	KindYesNo QuestionKind = iota
	KindNumber
	KindChoice
)

// AnswerKind tags the payload of an Answer.
type AnswerKind int

const (
	AnswerBool AnswerKind = iota
	AnswerNumber
	AnswerChoice
)

// Answer is a tagged union: exactly one payload field is meaningful,
// selected by Kind. Score functions match on the tag; a mismatched kind
// contributes zero, never an error.
type Answer struct {
	Kind   AnswerKind
	Bool   bool
	Number float64
	Choice int
}

func Yes() Answer              { return Answer{Kind: AnswerBool, Bool: true} }
func No() Answer               { return Answer{Kind: AnswerBool} }
func Number(n float64) Answer  { return Answer{Kind: AnswerNumber, Number: n} }
func ChoiceIndex(i int) Answer { return Answer{Kind: AnswerChoice, Choice: i} }

// Question is one questionnaire entry. Score maps an answer to an integer
// contribution; when defining questions, keep Score monotonically bounded by
// its best-possible answer so need percentages stay within [0, 100].
type Question struct {
	Text    string
	Kind    QuestionKind
	Choices []string
	Score   func(Answer) int
}

// bestAnswer is the answer that yields the question's maximum score: the
// higher-scoring of yes/no (several questions are inverted, so a flat "yes"
// would understate the maximum), the lowest price for number questions, the
// last choice for choice questions.
func (q Question) bestAnswer() Answer {
	switch q.Kind {
	case KindNumber:
		return Number(0)
	case KindChoice:
		return ChoiceIndex(len(q.Choices) - 1)
	default:
		if q.Score(No()) > q.Score(Yes()) {
			return No()
		}
		return Yes()
	}
}

func yesNo(text string, ifYes, ifNo int) Question {
	return Question{
		Text: text,
		Kind: KindYesNo,
		Score: func(a Answer) int {
			if a.Kind != AnswerBool {
				return 0
			}
			if a.Bool {
				return ifYes
			}
			return ifNo
		},
	}
}

// Questions returns the canonical ordered question set. Order is load-bearing:
// answers are zipped positionally, so reordering or removing a question
// changes every stored result's meaning.
func Questions() []Question {
	return []Question{
		yesNo("Is this item essential for your daily life?", 10, 0),
		yesNo("Will not having it negatively impact your health or safety?", 10, 0),
		{
			Text: "What is the price of this item? (in your currency)",
			Kind: KindNumber,
			Score: func(a Answer) int {
				if a.Kind != AnswerNumber {
					return 0
				}
				switch {
				case a.Number < 50:
					return 6
				case a.Number < 200:
					return 3
				default:
					return 0
				}
			},
		},
		yesNo("Can you afford it right now without debt or sacrificing essentials?", 8, 0),
		{
			Text:    "How long will you realistically use it?",
			Kind:    KindChoice,
			Choices: []string{"<1 month", "1-6 months", ">6 months"},
			Score: func(a Answer) int {
				if a.Kind != AnswerChoice {
					return 0
				}
				switch a.Choice {
				case 2:
					return 8
				case 1:
					return 4
				default:
					return 0
				}
			},
		},
		yesNo("Is there a cheaper or better alternative?", 0, 5),
		yesNo("Do you already own something similar?", 0, 5),
		yesNo("Would you buy this if it cost twice as much?", 5, 0),
		yesNo("Does it help you achieve an important goal?", 9, 0),
		yesNo("Will it lose most of its value quickly?", 0, 5),
		yesNo("Is this an impulse purchase?", 0, 4),
	}
}
