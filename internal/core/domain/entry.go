package domain

import (
	"errors"
	"time"
)

// Time entry categories. Admin hours count against the friction score;
// anything else is treated as productive time.
const (
	CategoryBillable = "Billable"
	CategoryAdmin    = "Admin"
	CategoryOther    = "Other"
)

var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingToken = errors.New("token is missing")
var ErrInvalidToken = errors.New("token is invalid")
var ErrInvalidUpdate = errors.New("invalid update target")

// ErrEntryNotFound covers both "no such record" and "owned by someone
// else"; callers must not be able to tell the two apart.
var ErrEntryNotFound = errors.New("entry not found or unauthorized")

// ErrStoreBusy signals a contended or timed-out store operation. Safe to
// retry.
var ErrStoreBusy = errors.New("store busy")

// TimeEntry is a single logged block of work. Ascending ID is insertion
// order, which the forecast treats as chronology.
type TimeEntry struct {
	ID       int64     `json:"id" bson:"seq"`
	UserID   string    `json:"-" bson:"user_id"`
	Client   string    `json:"Client" bson:"client"`
	Hours    float64   `json:"Hours" bson:"hours"`
	Category string    `json:"Type" bson:"category"`
	LoggedAt time.Time `json:"Date" bson:"logged_at"`
}

// IncomeEntry is a single payment received from a client.
type IncomeEntry struct {
	ID       int64     `json:"id" bson:"seq"`
	UserID   string    `json:"-" bson:"user_id"`
	Client   string    `json:"Client" bson:"client"`
	Amount   float64   `json:"Amount" bson:"amount"`
	LoggedAt time.Time `json:"Date" bson:"logged_at"`
}
