// Package analytics derives dated cash-flow occurrences from stored expenses
// and aggregates them into display summaries. Every function here is pure and
// total: inputs are never mutated or retained, and malformed input degrades to
// empty or nil results instead of errors.
package analytics

import (
	"time"

	"gobroke/internal/core"
)

// Occurrence is one concrete cash-flow instance derived from an expense.
// A recurring expense produces one occurrence per monthly cycle; amounts are
// converted to float64 here, at the aggregation boundary.
type Occurrence struct {
	Date      time.Time
	Amount    float64
	Category  string
	Title     string
	Recurring bool
}

// maxCycles bounds recurrence expansion so a pathological input can never
// spin the loop forever (100 years of monthly occurrences).
const maxCycles = 1200

// Occurrences flattens expenses into dated occurrences, expanding recurring
// expenses monthly from their stored date through the cutoff, inclusive.
//
// Monthly advancement preserves the time of day and clamps the day to the
// target month's last valid day, re-deriving the clamp from the expense's
// original day-of-month on every cycle. Jan 31 therefore yields Feb 28 (or 29)
// and then Mar 31, not a drifting Mar 28.
func Occurrences(expenses []core.Expense, through time.Time) []Occurrence {
	results := make([]Occurrence, 0, len(expenses))

	for _, e := range expenses {
		amount := e.Amount.InexactFloat64()
		if !e.Recurring {
			results = append(results, Occurrence{
				Date:     e.Date,
				Amount:   amount,
				Category: e.Category,
				Title:    e.Title,
			})
			continue
		}

		anchorDay := e.Date.Day()
		current := e.Date
		for cycle := 0; cycle < maxCycles && !current.After(through); cycle++ {
			results = append(results, Occurrence{
				Date:      current,
				Amount:    amount,
				Category:  e.Category,
				Title:     e.Title,
				Recurring: true,
			})
			next := nextMonthlyDate(current, anchorDay)
			if !next.After(current) {
				break
			}
			current = next
		}
	}

	return results
}

// Cutoff returns the default expansion cutoff: the latest expense date, or now
// when every expense is in the past. This guarantees at least one visible
// cycle for each recurring expense.
func Cutoff(expenses []core.Expense, now time.Time) time.Time {
	end := now
	for _, e := range expenses {
		if e.Date.After(end) {
			end = e.Date
		}
	}
	return end
}

// nextMonthlyDate advances one calendar month, keeping the time of day and
// clamping anchorDay to the target month's length.
func nextMonthlyDate(t time.Time, anchorDay int) time.Time {
	year, month := t.Year(), int(t.Month())
	month++
	if month > 12 {
		month = 1
		year++
	}

	day := anchorDay
	if last := daysInMonth(year, month, t.Location()); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year, month int, loc *time.Location) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, loc).Day()
}
