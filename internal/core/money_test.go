package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12.34", "12.34", true},
		{"12,34", "12.34", true},
		{"$1,234.50", "1234.5", true},
		{"1.234,56", "1234.56", true},
		{"  9 ", "9", true},
		{"", "", false},
		{"abc", "", false},
		{"-5", "", false},
		{"0", "", false},
		{"0.00", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
			}
			want := decimal.RequireFromString(tc.want)
			if !got.Equal(want) {
				t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("ParseAmount(%q) expected error, got %s", tc.in, got)
		}
	}
}

func TestSavingsPlan(t *testing.T) {
	g := Goal{
		Title:        "Laptop",
		TargetAmount: decimal.NewFromInt(1200),
		WeeklyIncome: decimal.NewFromInt(500),
		SavingsRate:  0.2,
	}
	weeks, ok := SavingsPlan(g)
	if !ok {
		t.Fatal("expected plan to be computable")
	}
	if weeks != 12 {
		t.Fatalf("weeks = %d, want 12", weeks)
	}

	// Partial weeks round up.
	g.TargetAmount = decimal.NewFromInt(1250)
	weeks, ok = SavingsPlan(g)
	if !ok || weeks != 13 {
		t.Fatalf("weeks = %d ok=%v, want 13 true", weeks, ok)
	}

	g.WeeklyIncome = decimal.Zero
	if _, ok := SavingsPlan(g); ok {
		t.Fatal("expected no plan without income")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Title:    "Coffee",
		Amount:   decimal.NewFromInt(4),
		Date:     date(2025, 6, 1),
		Category: "Food",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{Title: "", Amount: decimal.NewFromInt(1), Date: date(2025, 6, 1), Category: "c"},
		{Title: "a", Amount: decimal.Zero, Date: date(2025, 6, 1), Category: "c"},
		{Title: "a", Amount: decimal.NewFromInt(-1), Date: date(2025, 6, 1), Category: "c"},
		{Title: "a", Amount: decimal.NewFromInt(1), Category: "c"}, // zero date
		{Title: "a", Amount: decimal.NewFromInt(1), Date: date(2025, 6, 1), Category: " "},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestGoalValidate(t *testing.T) {
	good := Goal{
		Title:        "Trip",
		TargetAmount: decimal.NewFromInt(800),
		CreatedAt:    date(2025, 6, 1),
		SavingsRate:  0.2,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bad := good
	bad.SavingsRate = 1.5
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for savings rate above 1")
	}
	bad = good
	bad.TargetAmount = decimal.Zero
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero target")
	}
}
