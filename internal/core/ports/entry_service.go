package ports

import (
	"context"

	"github.com/freelancedash/profit-engine/internal/core/domain"
)

// AddTimeInput carries a new time log. The owning user id is never part of
// the input; it is always the identity resolved by the authorization gate.
type AddTimeInput struct {
	Client   string
	Hours    float64
	Category string
}

// AddIncomeInput carries a new income log.
type AddIncomeInput struct {
	Client string
	Amount float64
}

// UpdateLogInput identifies one owned row and the field to change.
// RecordType is "time" or "income"; Field must be on the per-type
// whitelist.
type UpdateLogInput struct {
	RecordType string
	ID         int64
	Field      string
	Value      any
}

// ClientHistory is the raw-row view of one client, newest first.
type ClientHistory struct {
	Time   []domain.TimeEntry   `json:"time"`
	Income []domain.IncomeEntry `json:"income"`
}

// EntryService defines use-case operations on raw time/income rows.
type EntryService interface {
	AddTime(ctx context.Context, userID string, in AddTimeInput) error
	AddIncome(ctx context.Context, userID string, in AddIncomeInput) error
	ClientHistory(ctx context.Context, userID, client string) (*ClientHistory, error)
	UpdateLog(ctx context.Context, userID string, in UpdateLogInput) error
}

// DashboardService computes the per-client metrics view for one user.
type DashboardService interface {
	Dashboard(ctx context.Context, userID string) ([]domain.ClientMetrics, error)
}
