package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"expense_tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func contains(s, sub string) bool { return strings.Contains(s, sub) }

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name           string
		userName       string
		email          string
		hash           string
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int
		wantErr        bool
		errContainsStr string
	}{
		{
			name:     "success",
			userName: "Alice",
			email:    "alice@example.com",
			hash:     "h123",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Alice", "alice@example.com", "h123", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name:     "duplicate email",
			userName: "Bob",
			email:    "alice@example.com",
			hash:     "h456",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Bob", "alice@example.com", "h456", sqlmock.AnyArg()).
					WillReturnError(errors.New("UNIQUE constraint failed: users.email"))
			},
			wantErr:        true,
			errContainsStr: "insert user",
		},
		{
			name:     "last insert id error",
			userName: "Carol",
			email:    "carol@example.com",
			hash:     "h789",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Carol", "carol@example.com", "h789", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			wantErr:        true,
			errContainsStr: "get last insert id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			id, err := repo.Create(tt.userName, tt.email, tt.hash)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errContainsStr != "" && !contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error to contain %q, got %q", tt.errContainsStr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		email      string
		mockExpect func(sqlmock.Sqlmock)
		wantUser   *models.User
		wantErr    bool
	}{
		{
			name:  "found",
			email: "alice@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
					AddRow(1, "Alice", "alice@example.com", "h123", createdAt)
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("alice@example.com").
					WillReturnRows(rows)
			},
			wantUser: &models.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: "h123", CreatedAt: createdAt},
		},
		{
			// (nil, nil) convention for no row.
			name:  "not found",
			email: "ghost@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("ghost@example.com").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name:  "query error",
			email: "alice@example.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("alice@example.com").
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.GetByEmail(tt.email)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil || *u != *tt.wantUser {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
		})
	}
}

func TestUserRepository_All(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow(1, "Alice", "alice@example.com", "h1", createdAt).
		AddRow(2, "Bob", "bob@example.com", "h2", createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(selectAllUsersSQL)).WillReturnRows(rows)

	users, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 || users[0].ID != 1 || users[1].Email != "bob@example.com" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
