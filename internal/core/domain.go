package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Expense is a stored spending record. Amount stays decimal until the
	// analytics boundary; only derived occurrences carry float64.
	Expense struct {
		ID        int64
		Title     string
		Amount    decimal.Decimal
		Date      time.Time
		Category  string
		Recurring bool
	}

	// Goal is a savings target, created manually or prefilled from a quiz
	// result. WeeklyIncome and SavingsRate feed the savings plan estimate.
	Goal struct {
		ID           int64
		Title        string
		TargetAmount decimal.Decimal
		TargetDate   *time.Time
		CreatedAt    time.Time
		WeeklyIncome decimal.Decimal
		SavingsRate  float64
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyTitle    = errors.New("empty title")
	ErrZeroDate      = errors.New("date cannot be zero")
	ErrEmptyCategory = errors.New("empty category")
)

// DefaultCategory is used when an expense is recorded without one.
const DefaultCategory = "General"

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Title)) == 0 {
		return ErrEmptyTitle
	}
	if len(e.Title) > 200 {
		return errors.New("title too long (max 200 characters)")
	}
	if e.Amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrZeroDate
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (g Goal) Validate() error {
	if len(strings.TrimSpace(g.Title)) == 0 {
		return ErrEmptyTitle
	}
	if len(g.Title) > 200 {
		return errors.New("title too long (max 200 characters)")
	}
	if g.TargetAmount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if g.SavingsRate < 0 || g.SavingsRate > 1 {
		return errors.New("savings rate must be between 0 and 1")
	}
	return nil
}
