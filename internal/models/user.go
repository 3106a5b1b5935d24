package models

import "time"

// User is a registered account. Email is stored trimmed and lowercased
// and is unique across all users.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // don’t expose hash
	CreatedAt    time.Time `json:"createdAt"`
}
