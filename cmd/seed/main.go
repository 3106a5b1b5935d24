package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"
	"time"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
	"expense_tracker/internal/repository/db"
)

// Sample expense categories and their typical amount ranges.
type categorySpec struct {
	category  string
	minAmount int
	maxAmount int
}

var categories = []categorySpec{
	{"Groceries", 20, 150},
	{"Transportation", 5, 50},
	{"Utilities", 30, 200},
	{"Entertainment", 10, 80},
	{"Healthcare", 15, 300},
	{"Dining Out", 8, 75},
	{"Shopping", 15, 250},
	{"Gas", 25, 80},
	{"Insurance", 50, 400},
	{"Internet", 40, 100},
}

var descriptions = map[string][]string{
	"Groceries":      {"Weekly grocery shopping", "Fresh produce", "Meat and dairy", "Household items", "Snacks and beverages"},
	"Transportation": {"Bus fare", "Taxi ride", "Uber/Lyft", "Train ticket", "Parking fee"},
	"Utilities":      {"Electricity bill", "Water bill", "Gas bill", "Phone bill", "Cable/Internet"},
	"Entertainment":  {"Movie tickets", "Concert", "Streaming subscription", "Games", "Books"},
	"Healthcare":     {"Doctor visit", "Prescription medication", "Dental checkup", "Eye exam", "Pharmacy"},
	"Dining Out":     {"Restaurant dinner", "Fast food lunch", "Coffee shop", "Takeout order", "Food delivery"},
	"Shopping":       {"Clothing", "Electronics", "Home decor", "Personal care", "Gifts"},
	"Gas":            {"Gas station fill-up", "Fuel for car", "Gas for generator", "Propane refill"},
	"Insurance":      {"Car insurance", "Health insurance", "Home insurance", "Life insurance"},
	"Internet":       {"Monthly internet bill", "WiFi upgrade", "Mobile data plan", "Cable package"},
}

const (
	minPerUser = 60
	maxPerUser = 100
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dbPath := fs.String("db", "expenses.db", "Path to database file")
	keep := fs.Bool("keep", false, "Keep existing expenses instead of clearing them")

	if err := fs.Parse(args); err != nil {
		return err
	}

	conn, err := db.InitDB(*dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ctx := context.Background()
	repos := repository.NewRepository(conn)

	users, err := repos.Users.All(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return fmt.Errorf("no users found; create a user before seeding expenses")
	}

	if !*keep {
		if err := repos.Expenses.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear expenses: %w", err)
		}
		fmt.Fprintln(stdout, "Cleared existing expenses")
	}

	summary := map[string]*struct {
		count int
		total float64
	}{}
	inserted := 0

	for _, u := range users {
		n := minPerUser + rand.IntN(maxPerUser-minPerUser+1)
		for i := 0; i < n; i++ {
			e := randomExpense(u)
			if _, err := repos.Expenses.Insert(ctx, e); err != nil {
				return fmt.Errorf("insert expense for user %d: %w", u.ID, err)
			}
			inserted++
			s := summary[e.Category]
			if s == nil {
				s = &struct {
					count int
					total float64
				}{}
				summary[e.Category] = s
			}
			s.count++
			s.total += e.Amount
		}
	}

	fmt.Fprintf(stdout, "Successfully seeded %d expenses for %d user(s)\n", inserted, len(users))
	fmt.Fprintln(stdout, "Expense categories generated:")

	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := summary[name]
		fmt.Fprintf(stdout, "  %s: %d expenses, $%.2f total\n", name, s.count, s.total)
	}
	return nil
}

// randomExpense builds one plausible expense for u, dated within the
// trailing 3 months.
func randomExpense(u models.User) models.Expense {
	spec := categories[rand.IntN(len(categories))]
	descs := descriptions[spec.category]
	return models.Expense{
		UserID:      u.ID,
		Amount:      float64(spec.minAmount + rand.IntN(spec.maxAmount-spec.minAmount+1)),
		Description: descs[rand.IntN(len(descs))],
		Category:    spec.category,
		Date:        randomDate(),
	}
}

// randomDate picks a uniform instant within the last 3 calendar months.
func randomDate() time.Time {
	now := time.Now().UTC()
	start := now.AddDate(0, -3, 0)
	span := now.Sub(start)
	return start.Add(time.Duration(rand.Int64N(int64(span))))
}
