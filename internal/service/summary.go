package service

import (
	"context"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

type SummaryService struct {
	expenses repository.Expenses
}

func NewSummaryService(expenses repository.Expenses) *SummaryService {
	return &SummaryService{expenses: expenses}
}

var _ Summary = (*SummaryService)(nil)

// Overview returns the current per-category rollup for the user.
func (s *SummaryService) Overview(ctx context.Context, userID int) (models.SpendingSummary, error) {
	return s.expenses.Summarize(ctx, userID)
}
