package analytics

import (
	"sort"
	"time"
)

type (
	// DailyPoint is the summed spend for one calendar day (start-of-day key).
	DailyPoint struct {
		Date  time.Time
		Total float64
	}

	// CategoryTotal pairs a category name with its summed spend.
	CategoryTotal struct {
		Name  string
		Total float64
	}

	// InsightsSummary is an immutable rollup snapshot over a set of
	// occurrences. TopCategory, BiggestDay and TrendPercent are nil when the
	// underlying data is empty (or, for the trend, when the previous week had
	// no spend — never a division by zero).
	InsightsSummary struct {
		TotalAllTime       float64
		Last30Total        float64
		AverageDailyLast30 float64
		TopCategory        *CategoryTotal
		BiggestDay         *DailyPoint
		Last7Total         float64
		Previous7Total     float64
		TrendPercent       *float64
	}
)

// DailyTotals buckets occurrences by calendar start-of-day and sums each
// bucket, returning points ordered ascending by date. Days without spend are
// absent, not zero-filled.
func DailyTotals(occurrences []Occurrence, loc *time.Location) []DailyPoint {
	grouped := make(map[time.Time]float64)
	for _, o := range occurrences {
		grouped[startOfDay(o.Date, loc)] += o.Amount
	}

	points := make([]DailyPoint, 0, len(grouped))
	for day, total := range grouped {
		points = append(points, DailyPoint{Date: day, Total: total})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// Summarize computes the full rollup for the insights screen.
//
// Windows are anchored at the local start of day: last-30 and last-7 are
// inclusive of now, previous-7 is half-open so the boundary day is counted
// once. Tie-breaks for TopCategory and BiggestDay are deterministic: candidates
// are scanned in order (first category appearance, ascending days) and an
// equal total replaces the current leader, so the last-seen tie wins.
func Summarize(occurrences []Occurrence, now time.Time, loc *time.Location) InsightsSummary {
	var s InsightsSummary
	for _, o := range occurrences {
		s.TotalAllTime += o.Amount
	}

	today := startOfDay(now, loc)
	last30Start := today.AddDate(0, 0, -29)
	last7Start := today.AddDate(0, 0, -6)
	prev7Start := today.AddDate(0, 0, -13)
	prev7End := today.AddDate(0, 0, -7)

	categoryTotals := make(map[string]float64)
	var categoryOrder []string
	for _, o := range occurrences {
		if inRange(o.Date, last30Start, now) {
			s.Last30Total += o.Amount
			if _, seen := categoryTotals[o.Category]; !seen {
				categoryOrder = append(categoryOrder, o.Category)
			}
			categoryTotals[o.Category] += o.Amount
		}
		if inRange(o.Date, last7Start, now) {
			s.Last7Total += o.Amount
		}
		if !o.Date.Before(prev7Start) && o.Date.Before(prev7End) {
			s.Previous7Total += o.Amount
		}
	}
	s.AverageDailyLast30 = s.Last30Total / 30.0

	for _, name := range categoryOrder {
		if s.TopCategory == nil || categoryTotals[name] >= s.TopCategory.Total {
			s.TopCategory = &CategoryTotal{Name: name, Total: categoryTotals[name]}
		}
	}

	// Biggest day looks at the entire history, not just the last 30 days.
	for _, p := range DailyTotals(occurrences, loc) {
		if s.BiggestDay == nil || p.Total >= s.BiggestDay.Total {
			point := p
			s.BiggestDay = &point
		}
	}

	if s.Previous7Total > 0 {
		trend := (s.Last7Total - s.Previous7Total) / s.Previous7Total * 100.0
		s.TrendPercent = &trend
	}

	return s
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
