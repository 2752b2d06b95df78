package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"gobroke/internal/core"
	"gobroke/internal/score"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateSchema brings the database up to the latest embedded migration. It
// opens its own short-lived connection so the repository's connection never
// sees a half-migrated schema.
func migrateSchema(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database for migration: %w", err)
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("embedded migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migration setup: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// SQLiteRepository persists expenses, goals and quiz history. The analytics
// and scoring packages never touch it; commands read records wholesale and
// hand them to the pure core.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateSchema(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateExpense inserts a new expense and returns its id.
func (r *SQLiteRepository) CreateExpense(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (title, amount, date, category, recurring) VALUES (?, ?, ?, ?, ?)`,
		e.Title, e.Amount.String(), e.Date.Format(time.RFC3339Nano), e.Category, boolToInt(e.Recurring))
	if err != nil {
		return 0, fmt.Errorf("create expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"title", e.Title,
		"amount", e.Amount.String(),
		"category", e.Category,
		"recurring", e.Recurring)

	return id, nil
}

// ListExpenses returns every stored expense ordered by date ascending.
func (r *SQLiteRepository) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, amount, date, category, recurring FROM expenses ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var (
			e         core.Expense
			amount    string
			date      string
			recurring int64
		)
		if err := rows.Scan(&e.ID, &e.Title, &amount, &date, &e.Category, &recurring); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse expense amount %q: %w", amount, err)
		}
		if e.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("parse expense date %q: %w", date, err)
		}
		e.Recurring = recurring != 0
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense overwrites every mutable field of the expense with the given id.
func (r *SQLiteRepository) UpdateExpense(ctx context.Context, e core.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET title = ?, amount = ?, date = ?, category = ?, recurring = ? WHERE id = ?`,
		e.Title, e.Amount.String(), e.Date.Format(time.RFC3339Nano), e.Category, boolToInt(e.Recurring), e.ID)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return requireRow(res, e.ID)
}

// DeleteExpense removes an expense by id.
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if err := requireRow(res, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

// CreateGoal inserts a new goal and returns its id.
func (r *SQLiteRepository) CreateGoal(ctx context.Context, g core.Goal) (int64, error) {
	var targetDate any
	if g.TargetDate != nil {
		targetDate = g.TargetDate.Format(time.RFC3339Nano)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO goals (title, target_amount, target_date, created_at, weekly_income, savings_rate)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		g.Title, g.TargetAmount.String(), targetDate, g.CreatedAt.Format(time.RFC3339Nano),
		g.WeeklyIncome.String(), g.SavingsRate)
	if err != nil {
		return 0, fmt.Errorf("create goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("goal insert id: %w", err)
	}

	slog.InfoContext(ctx, "Goal saved", "id", id, "title", g.Title, "target", g.TargetAmount.String())
	return id, nil
}

// ListGoals returns every stored goal, newest first.
func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]core.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, target_amount, target_date, created_at, weekly_income, savings_rate
		 FROM goals ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []core.Goal
	for rows.Next() {
		var (
			g            core.Goal
			targetAmount string
			targetDate   sql.NullString
			createdAt    string
			weeklyIncome string
		)
		if err := rows.Scan(&g.ID, &g.Title, &targetAmount, &targetDate, &createdAt, &weeklyIncome, &g.SavingsRate); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		if g.TargetAmount, err = decimal.NewFromString(targetAmount); err != nil {
			return nil, fmt.Errorf("parse goal target %q: %w", targetAmount, err)
		}
		if g.WeeklyIncome, err = decimal.NewFromString(weeklyIncome); err != nil {
			return nil, fmt.Errorf("parse goal income %q: %w", weeklyIncome, err)
		}
		if g.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse goal created_at %q: %w", createdAt, err)
		}
		if targetDate.Valid {
			d, err := time.Parse(time.RFC3339Nano, targetDate.String)
			if err != nil {
				return nil, fmt.Errorf("parse goal target date %q: %w", targetDate.String, err)
			}
			g.TargetDate = &d
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}

	return goals, nil
}

// UpdateGoal overwrites every mutable field of the goal with the given id.
func (r *SQLiteRepository) UpdateGoal(ctx context.Context, g core.Goal) error {
	var targetDate any
	if g.TargetDate != nil {
		targetDate = g.TargetDate.Format(time.RFC3339Nano)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE goals SET title = ?, target_amount = ?, target_date = ?, weekly_income = ?, savings_rate = ? WHERE id = ?`,
		g.Title, g.TargetAmount.String(), targetDate, g.WeeklyIncome.String(), g.SavingsRate, g.ID)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return requireRow(res, g.ID)
}

// DeleteGoal removes a goal by id.
func (r *SQLiteRepository) DeleteGoal(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return requireRow(res, id)
}

// QuizHistory returns the stored quiz results, newest first.
func (r *SQLiteRepository) QuizHistory(ctx context.Context) ([]score.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_name, need_percent, want_percent, date FROM quiz_history ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list quiz history: %w", err)
	}
	defer rows.Close()

	var entries []score.HistoryEntry
	for rows.Next() {
		var (
			e    score.HistoryEntry
			date string
		)
		if err := rows.Scan(&e.ID, &e.ItemName, &e.NeedPercent, &e.WantPercent, &date); err != nil {
			return nil, fmt.Errorf("scan quiz history: %w", err)
		}
		if e.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("parse quiz history date %q: %w", date, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz history: %w", err)
	}

	return entries, nil
}

// SaveQuizHistory replaces the stored history wholesale. The cap and dedupe
// rules live in score.AppendHistory; this just persists the resulting list.
func (r *SQLiteRepository) SaveQuizHistory(ctx context.Context, entries []score.HistoryEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quiz_history`); err != nil {
		return fmt.Errorf("clear quiz history: %w", err)
	}
	for _, e := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO quiz_history (id, item_name, need_percent, want_percent, date) VALUES (?, ?, ?, ?, ?)`,
			e.ID, e.ItemName, e.NeedPercent, e.WantPercent, e.Date.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert quiz history entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit quiz history: %w", err)
	}
	return nil
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("record %d not found", id)
	}
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
