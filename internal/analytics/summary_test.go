package analytics

import (
	"math"
	"testing"
	"time"
)

func occ(day time.Time, amount float64, category string) Occurrence {
	return Occurrence{Date: day, Amount: amount, Category: category, Title: category}
}

func TestDailyTotalsBucketsAndOrders(t *testing.T) {
	morning := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 10, 21, 30, 0, 0, time.UTC)
	later := time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC)

	points := DailyTotals([]Occurrence{
		occ(later, 7, "Food"),
		occ(morning, 10, "Food"),
		occ(evening, 5, "Fun"),
	}, time.UTC)

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if !points[0].Date.Equal(date(2025, 6, 10)) || points[0].Total != 15 {
		t.Fatalf("first point = %+v, want 2025-06-10 total 15", points[0])
	}
	if !points[1].Date.Equal(date(2025, 6, 12)) || points[1].Total != 7 {
		t.Fatalf("second point = %+v, want 2025-06-12 total 7", points[1])
	}
}

func TestDailyTotalsEmpty(t *testing.T) {
	if got := DailyTotals(nil, time.UTC); len(got) != 0 {
		t.Fatalf("expected no points, got %d", len(got))
	}
}

func TestSummarizeWindows(t *testing.T) {
	now := date(2025, 6, 30)

	occurrences := []Occurrence{
		occ(date(2025, 6, 30), 10, "Food"), // last 7
		occ(date(2025, 6, 24), 20, "Food"), // last-7 start day, inclusive
		occ(date(2025, 6, 23), 1, "Gap"),   // now-7: excluded from both weekly windows
		occ(date(2025, 6, 22), 40, "Fun"),  // previous 7
		occ(date(2025, 6, 17), 8, "Fun"),   // previous-7 start, inclusive
		occ(date(2025, 6, 2), 5, "Bills"),  // last 30 only
		occ(date(2025, 1, 1), 100, "Old"),  // all-time only
	}

	s := Summarize(occurrences, now, time.UTC)

	if s.TotalAllTime != 184 {
		t.Errorf("TotalAllTime = %v, want 184", s.TotalAllTime)
	}
	if s.Last30Total != 84 {
		t.Errorf("Last30Total = %v, want 84", s.Last30Total)
	}
	if want := 84.0 / 30.0; math.Abs(s.AverageDailyLast30-want) > 1e-9 {
		t.Errorf("AverageDailyLast30 = %v, want %v", s.AverageDailyLast30, want)
	}
	if s.Last7Total != 30 {
		t.Errorf("Last7Total = %v, want 30", s.Last7Total)
	}
	if s.Previous7Total != 48 {
		t.Errorf("Previous7Total = %v, want 48", s.Previous7Total)
	}
	if s.TrendPercent == nil {
		t.Fatal("TrendPercent is nil, want value")
	}
	if want := (30.0 - 48.0) / 48.0 * 100.0; math.Abs(*s.TrendPercent-want) > 1e-9 {
		t.Errorf("TrendPercent = %v, want %v", *s.TrendPercent, want)
	}
	if s.TopCategory == nil || s.TopCategory.Name != "Fun" || s.TopCategory.Total != 48 {
		t.Errorf("TopCategory = %+v, want Fun 48", s.TopCategory)
	}
	if s.BiggestDay == nil || !s.BiggestDay.Date.Equal(date(2025, 1, 1)) || s.BiggestDay.Total != 100 {
		t.Errorf("BiggestDay = %+v, want 2025-01-01 100", s.BiggestDay)
	}
}

func TestSummarizeTrendNilWhenPreviousWeekZero(t *testing.T) {
	now := date(2025, 6, 30)
	s := Summarize([]Occurrence{occ(date(2025, 6, 29), 50, "Food")}, now, time.UTC)
	if s.TrendPercent != nil {
		t.Fatalf("TrendPercent = %v, want nil", *s.TrendPercent)
	}
	if s.Last7Total != 50 {
		t.Fatalf("Last7Total = %v, want 50", s.Last7Total)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, date(2025, 6, 30), time.UTC)
	if s.TotalAllTime != 0 || s.Last30Total != 0 || s.AverageDailyLast30 != 0 {
		t.Fatalf("expected zero totals, got %+v", s)
	}
	if s.TopCategory != nil || s.BiggestDay != nil || s.TrendPercent != nil {
		t.Fatalf("expected nil optionals, got %+v", s)
	}
}

func TestSummarizeTieBreaksLastSeenWins(t *testing.T) {
	now := date(2025, 6, 30)

	// Two categories tied in the last-30 window: the later first-appearance
	// wins. Two days tied all-time: the later day wins.
	occurrences := []Occurrence{
		occ(date(2025, 6, 10), 25, "Food"),
		occ(date(2025, 6, 12), 25, "Fun"),
	}
	s := Summarize(occurrences, now, time.UTC)
	if s.TopCategory == nil || s.TopCategory.Name != "Fun" {
		t.Errorf("TopCategory = %+v, want Fun (last tied wins)", s.TopCategory)
	}
	if s.BiggestDay == nil || !s.BiggestDay.Date.Equal(date(2025, 6, 12)) {
		t.Errorf("BiggestDay = %+v, want 2025-06-12 (latest tied day wins)", s.BiggestDay)
	}
}
