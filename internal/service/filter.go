package service

import (
	"time"

	"expense_tracker/internal/repository"
)

// Recognized dateFilter values. Anything else means no date narrowing.
const (
	filterWeek        = "week"
	filterMonth       = "month"
	filterThreeMonths = "3months"
	filterCustom      = "custom"

	echoAllCategories = "all"
	echoNoDateFilter  = "none"
)

const (
	layoutTimestamp = "2006-01-02 15:04:05"
	layoutDate      = "2006-01-02"
)

// buildExpenseQuery translates raw query parameters into a store query
// scoped to userID, plus an echo of which filters were recognized.
//
// The named filters compute a lower bound only: "week" means anything
// from 7 days ago onward, with no upper bound at now. That open-ended
// range matches the legacy behavior and is kept as-is.
func buildExpenseQuery(userID int, f FilterParams, now time.Time) (repository.ExpenseQuery, AppliedFilters) {
	q := repository.ExpenseQuery{UserID: userID}
	applied := AppliedFilters{
		Category:   echoAllCategories,
		DateFilter: echoNoDateFilter,
	}

	if f.Category != "" {
		q.Category = f.Category
		applied.Category = f.Category
	}

	switch f.DateFilter {
	case filterWeek:
		q.DateFrom = formatBound(now.AddDate(0, 0, -7))
		applied.DateFilter = filterWeek
	case filterMonth:
		q.DateFrom = formatBound(now.AddDate(0, -1, 0))
		applied.DateFilter = filterMonth
	case filterThreeMonths:
		q.DateFrom = formatBound(now.AddDate(0, -3, 0))
		applied.DateFilter = filterThreeMonths
	case filterCustom:
		// Whichever bounds were supplied; none at all still echoes "custom".
		applied.DateFilter = filterCustom
		if f.StartDate != "" {
			q.DateFrom = normalizeBound(f.StartDate)
			applied.StartDate = f.StartDate
		}
		if f.EndDate != "" {
			q.DateTo = normalizeBound(f.EndDate)
			applied.EndDate = f.EndDate
		}
	}

	return q, applied
}

func formatBound(t time.Time) string {
	return t.UTC().Format(layoutTimestamp)
}

// normalizeBound converts a client-supplied date string into the stored
// TIMESTAMP format. An unparseable value is passed through verbatim and
// compared by the store as a plain string, which in practice matches
// nothing; no validation error is raised.
func normalizeBound(s string) string {
	for _, layout := range []string{time.RFC3339, layoutTimestamp, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return formatBound(t)
		}
	}
	return s
}
