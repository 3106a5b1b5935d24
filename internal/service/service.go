package service

import (
	"context"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

type Authorization interface {
	SignUp(name, email, password string) (int, error)
	GenerateToken(email, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Expenses exposes the per-user CRUD operations. Every operation is
// scoped to the calling user; a record owned by someone else behaves
// exactly like a missing one.
type Expenses interface {
	Create(ctx context.Context, userID int, p CreateParams) (models.Expense, error)
	List(ctx context.Context, userID int, f FilterParams) ([]models.Expense, AppliedFilters, error)
	Update(ctx context.Context, userID int, id string, p UpdateParams) (models.Expense, error)
	Delete(ctx context.Context, userID int, id string) error
}

// Summary exposes the read-only spending rollup used by the live stream.
type Summary interface {
	Overview(ctx context.Context, userID int) (models.SpendingSummary, error)
}

// CreateParams carries the client-supplied fields of a new expense.
type CreateParams struct {
	Amount      float64
	Description string
	Category    string
}

// UpdateParams carries a partial update. A zero value means "not
// provided": the stored field is retained. This mirrors the legacy
// falsy-coercion behavior, so amount 0 or an empty string can never be
// written through a PATCH.
type UpdateParams struct {
	Amount      float64
	Description string
	Category    string
}

// FilterParams are the raw listing query parameters, untouched by the
// handler; the filter builder owns all interpretation.
type FilterParams struct {
	Category   string
	DateFilter string // "week" | "month" | "3months" | "custom" | anything else
	StartDate  string // only meaningful when DateFilter == "custom"
	EndDate    string
}

// AppliedFilters echoes back which filters were recognized, for the
// client to confirm what was applied.
type AppliedFilters struct {
	Category   string `json:"category"`
	DateFilter string `json:"dateFilter"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
}

// AuthConfig carries the token-signing settings loaded from config.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type Service struct {
	Authorization
	Expenses
	Summary
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, authCfg),
		Expenses:      NewExpenseService(repos.Expenses),
		Summary:       NewSummaryService(repos.Expenses),
	}
}
