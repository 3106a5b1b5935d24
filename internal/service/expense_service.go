package service

import (
	"context"
	"errors"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// ErrExpenseNotFound covers both a truly missing record and one owned
// by another user. The two cases are never distinguished.
var ErrExpenseNotFound = errors.New("expense not found")

var (
	errDescriptionRequired = errors.New("description is required")
	errCategoryRequired    = errors.New("category is required")
)

type ExpenseService struct {
	expenses repository.Expenses
}

func NewExpenseService(expenses repository.Expenses) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

var _ Expenses = (*ExpenseService)(nil)

// Create persists a new expense owned by userID with date defaulted to
// now. Amount carries no sign or range constraint beyond the store's
// schema.
func (s *ExpenseService) Create(ctx context.Context, userID int, p CreateParams) (models.Expense, error) {
	if p.Description == "" {
		return models.Expense{}, errDescriptionRequired
	}
	if p.Category == "" {
		return models.Expense{}, errCategoryRequired
	}

	return s.expenses.Insert(ctx, models.Expense{
		UserID:      userID,
		Amount:      p.Amount,
		Description: p.Description,
		Category:    p.Category,
		Date:        time.Now().UTC(),
	})
}

// List returns the user's expenses matching f, most recent first,
// together with the applied-filter echo.
func (s *ExpenseService) List(ctx context.Context, userID int, f FilterParams) ([]models.Expense, AppliedFilters, error) {
	q, applied := buildExpenseQuery(userID, f, time.Now().UTC())
	out, err := s.expenses.List(ctx, q)
	if err != nil {
		return nil, AppliedFilters{}, err
	}
	return out, applied, nil
}

// Update applies a partial update to the expense scoped to (id, userID).
// Each field is replaced only when its input is non-zero; an amount of 0
// or an empty string retains the stored value (legacy parity).
func (s *ExpenseService) Update(ctx context.Context, userID int, id string, p UpdateParams) (models.Expense, error) {
	e, err := s.expenses.GetByID(ctx, id, userID)
	if err != nil {
		return models.Expense{}, err
	}
	if e == nil {
		return models.Expense{}, ErrExpenseNotFound
	}

	if p.Amount != 0 {
		e.Amount = p.Amount
	}
	if p.Description != "" {
		e.Description = p.Description
	}
	if p.Category != "" {
		e.Category = p.Category
	}

	if err := s.expenses.Update(ctx, *e); err != nil {
		return models.Expense{}, err
	}
	return *e, nil
}

// Delete removes the expense scoped to (id, userID).
func (s *ExpenseService) Delete(ctx context.Context, userID int, id string) error {
	deleted, err := s.expenses.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}
