package domain

import "time"

// User models a registered account. Accounts are immutable after
// registration and are never deleted.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
