package repository

import (
	"context"
	"database/sql"

	"expense_tracker/internal/models"
)

// ExpenseQuery scopes a listing to one user, optionally narrowed by
// category and a date range. Date bounds are strings in the stored
// TIMESTAMP format; an unparseable client value is passed through
// verbatim and compared by the store as-is.
type ExpenseQuery struct {
	UserID   int
	Category string // "" means no category constraint
	DateFrom string // "" means no lower bound
	DateTo   string // "" means no upper bound
}

type Users interface {
	Create(name, email, passwordHash string) (int, error)
	GetByEmail(email string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
}

type Expenses interface {
	Insert(ctx context.Context, e models.Expense) (models.Expense, error)
	List(ctx context.Context, q ExpenseQuery) ([]models.Expense, error)
	// GetByID is scoped to (id, userID); a record owned by another user
	// is reported the same way as a missing one: (nil, nil).
	GetByID(ctx context.Context, id string, userID int) (*models.Expense, error)
	Update(ctx context.Context, e models.Expense) error
	Delete(ctx context.Context, id string, userID int) (bool, error)
	DeleteAll(ctx context.Context) error
	Summarize(ctx context.Context, userID int) (models.SpendingSummary, error)
}

type Repository struct {
	Users    Users
	Expenses Expenses
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Expenses: NewExpenseSQLite(db),
	}
}
