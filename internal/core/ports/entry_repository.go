package ports

import (
	"context"

	"github.com/freelancedash/profit-engine/internal/core/domain"
)

// EntryRepository defines persistence operations for time and income logs.
// Every method is owner-scoped: rows belonging to other users are invisible
// to it by contract, and updates that match no owned row report
// domain.ErrEntryNotFound.
type EntryRepository interface {
	InsertTime(ctx context.Context, e *domain.TimeEntry) error
	InsertIncome(ctx context.Context, e *domain.IncomeEntry) error

	// ListTimeByOwner returns all of one user's time entries in insertion
	// order (ascending id).
	ListTimeByOwner(ctx context.Context, userID string) ([]domain.TimeEntry, error)
	ListIncomeByOwner(ctx context.Context, userID string) ([]domain.IncomeEntry, error)

	// TimeHistory and IncomeHistory return one client's rows newest first
	// (descending id).
	TimeHistory(ctx context.Context, userID, client string) ([]domain.TimeEntry, error)
	IncomeHistory(ctx context.Context, userID, client string) ([]domain.IncomeEntry, error)

	// UpdateTimeField sets a single whitelisted field on the row matching
	// both id and userID. Zero matched rows is domain.ErrEntryNotFound.
	UpdateTimeField(ctx context.Context, userID string, id int64, field string, value any) error
	UpdateIncomeField(ctx context.Context, userID string, id int64, field string, value any) error
}
