package models

import "time"

// Expense is a single spending record owned by exactly one user.
// UserID and Date are immutable once the record is created.
type Expense struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// CategoryTotal aggregates spending for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Total    float64 `json:"total"`
}

// SpendingSummary is a point-in-time rollup of a user's expenses,
// pushed over the live stream.
type SpendingSummary struct {
	Count      int             `json:"count"`
	Total      float64         `json:"total"`
	Categories []CategoryTotal `json:"categories,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
