package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"expense_tracker/internal/models"

	"github.com/google/uuid"
)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const timestampLayout = "2006-01-02 15:04:05"

type ExpenseSQLite struct {
	db *sql.DB
}

func NewExpenseSQLite(db *sql.DB) *ExpenseSQLite { return &ExpenseSQLite{db: db} }

var _ Expenses = (*ExpenseSQLite)(nil)

const (
	insertExpenseSQL      = `INSERT INTO expenses (id, user_id, amount, description, category, date) VALUES (?, ?, ?, ?, ?, ?)`
	selectExpenseByIDSQL  = `SELECT id, user_id, amount, description, category, date FROM expenses WHERE id = ? AND user_id = ?`
	updateExpenseSQL      = `UPDATE expenses SET amount = ?, description = ?, category = ? WHERE id = ? AND user_id = ?`
	deleteExpenseSQL      = `DELETE FROM expenses WHERE id = ? AND user_id = ?`
	deleteAllExpensesSQL  = `DELETE FROM expenses`
	summarizeExpensesSQL  = `SELECT category, COUNT(*), COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = ? GROUP BY category ORDER BY SUM(amount) DESC`
	selectExpensesBaseSQL = `SELECT id, user_id, amount, description, category, date FROM expenses`
)

// Insert persists a new expense. If ID or Date are empty, they’re set.
func (r *ExpenseSQLite) Insert(ctx context.Context, e models.Expense) (models.Expense, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	} else {
		e.Date = e.Date.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertExpenseSQL,
		e.ID,
		e.UserID,
		e.Amount,
		e.Description,
		e.Category,
		e.Date.Format(timestampLayout),
	)
	if err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	return e, nil
}

// List returns the expenses matching q, most recent first.
func (r *ExpenseSQLite) List(ctx context.Context, q ExpenseQuery) ([]models.Expense, error) {
	conds := []string{"user_id = ?"}
	args := []any{q.UserID}

	if q.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, q.Category)
	}
	if q.DateFrom != "" {
		conds = append(conds, "date >= ?")
		args = append(args, q.DateFrom)
	}
	if q.DateTo != "" {
		conds = append(conds, "date <= ?")
		args = append(args, q.DateTo)
	}

	query := selectExpensesBaseSQL + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select expenses: %w", err)
	}
	defer rows.Close()

	out := make([]models.Expense, 0, 32)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Category, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Date = e.Date.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches an expense scoped to (id, userID).
// Returns (nil, nil) when no record matches both, so a record owned by
// someone else is indistinguishable from a missing one.
func (r *ExpenseSQLite) GetByID(ctx context.Context, id string, userID int) (*models.Expense, error) {
	var e models.Expense
	err := r.db.QueryRowContext(ctx, selectExpenseByIDSQL, id, userID).
		Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Category, &e.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select expense %q: %w", id, err)
	}
	e.Date = e.Date.UTC()
	return &e, nil
}

// Update persists the mutable fields of e. UserID and Date are never
// written back.
func (r *ExpenseSQLite) Update(ctx context.Context, e models.Expense) error {
	_, err := r.db.ExecContext(ctx, updateExpenseSQL,
		e.Amount, e.Description, e.Category, e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("update expense %q: %w", e.ID, err)
	}
	return nil
}

// Delete removes the expense scoped to (id, userID) and reports whether
// a row was actually deleted.
func (r *ExpenseSQLite) Delete(ctx context.Context, id string, userID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteExpenseSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete expense %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for expense %q: %w", id, err)
	}
	return n > 0, nil
}

// DeleteAll clears the expenses table. Used by the seeder.
func (r *ExpenseSQLite) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllExpensesSQL); err != nil {
		return fmt.Errorf("delete all expenses: %w", err)
	}
	return nil
}

// Summarize rolls up the user's expenses per category, biggest spend first.
func (r *ExpenseSQLite) Summarize(ctx context.Context, userID int) (models.SpendingSummary, error) {
	rows, err := r.db.QueryContext(ctx, summarizeExpensesSQL, userID)
	if err != nil {
		return models.SpendingSummary{}, fmt.Errorf("summarize expenses: %w", err)
	}
	defer rows.Close()

	var s models.SpendingSummary
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Count, &ct.Total); err != nil {
			return models.SpendingSummary{}, fmt.Errorf("scan category total: %w", err)
		}
		s.Categories = append(s.Categories, ct)
		s.Count += ct.Count
		s.Total += ct.Total
	}
	if err := rows.Err(); err != nil {
		return models.SpendingSummary{}, err
	}
	s.UpdatedAt = time.Now().UTC()
	return s, nil
}
