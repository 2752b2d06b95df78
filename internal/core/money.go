// Package core provides the domain types shared across the application.
//
// This file contains amount parsing for user-entered monetary values and the
// savings plan estimate used by goals.
package core

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a user-entered monetary string to a decimal amount.
//
// It tolerates leading currency symbols, grouping separators and a decimal
// comma, and requires the result to be strictly positive. All arithmetic on
// stored amounts happens on decimals; float64 conversion is reserved for the
// analytics/display boundary.
//
// Examples:
//
//	ParseAmount("12.34")    -> 12.34, nil
//	ParseAmount("12,34")    -> 12.34, nil
//	ParseAmount("$1,234.5") -> 1234.5, nil
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	// Strip anything that is not a digit or separator (currency symbols,
	// stray spaces). A leading sign is rejected below by the positivity check.
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	// "1.234,56" and "1,234.56" both appear in user input: treat the last
	// separator as the decimal point and drop the rest as grouping.
	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")
	switch {
	case lastComma > lastDot:
		cleaned = strings.ReplaceAll(cleaned[:lastComma], ".", "") + "." + strings.ReplaceAll(cleaned[lastComma+1:], ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case lastDot > lastComma:
		cleaned = strings.ReplaceAll(cleaned[:lastDot], ",", "") + "." + cleaned[lastDot+1:]
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// SavingsPlan estimates how many whole weeks of saving are needed to reach the
// goal's target at weeklyIncome x savingsRate per week. ok is false when the
// plan cannot be computed (no income or zero rate).
func SavingsPlan(g Goal) (weeks int, ok bool) {
	weekly := g.WeeklyIncome.InexactFloat64() * g.SavingsRate
	if weekly <= 0 {
		return 0, false
	}
	target := g.TargetAmount.InexactFloat64()
	return int(math.Ceil(target / weekly)), true
}
