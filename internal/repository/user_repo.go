package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"expense_tracker/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`
	selectAllUsersSQL    = `SELECT id, name, email, password_hash, created_at FROM users ORDER BY id ASC`
)

// Create inserts a new user and returns its ID. Email uniqueness is
// enforced by the store; a duplicate surfaces as a constraint error.
func (r *UserRepository) Create(name, email, passwordHash string) (int, error) {
	createdAt := time.Now().UTC().Format(timestampLayout)
	res, err := r.db.Exec(insertUserSQL, name, email, passwordHash, createdAt)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// All returns every user, oldest first. Used by the seeder.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.CreatedAt = u.CreatedAt.UTC()
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
