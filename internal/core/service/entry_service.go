package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancedash/profit-engine/internal/core/domain"
	"github.com/freelancedash/profit-engine/internal/core/ports"
)

// updatableFields is the fixed whitelist of mutable fields per record type.
// The client-facing field name maps through the repository to the stored
// column; anything outside this map is rejected before touching the store.
var updatableFields = map[string]map[string]bool{
	"time":   {"Client": true, "Hours": true, "Type": true},
	"income": {"Client": true, "Amount": true},
}

type entryService struct {
	repo ports.EntryRepository
	log  zerolog.Logger
}

// NewEntryService returns an EntryService implementation.
func NewEntryService(repo ports.EntryRepository, log zerolog.Logger) ports.EntryService {
	return &entryService{repo: repo, log: log}
}

// AddTime inserts a time log owned by userID. The owner id always comes
// from the verified token, never from the request body.
func (s *entryService) AddTime(ctx context.Context, userID string, in ports.AddTimeInput) error {
	entry := &domain.TimeEntry{
		UserID:   userID,
		Client:   in.Client,
		Hours:    in.Hours,
		Category: in.Category,
		LoggedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertTime(ctx, entry); err != nil {
		return fmt.Errorf("add time: %w", err)
	}
	s.log.Debug().Str("user_id", userID).Str("client", in.Client).Float64("hours", in.Hours).Msg("time entry added")
	return nil
}

func (s *entryService) AddIncome(ctx context.Context, userID string, in ports.AddIncomeInput) error {
	entry := &domain.IncomeEntry{
		UserID:   userID,
		Client:   in.Client,
		Amount:   in.Amount,
		LoggedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertIncome(ctx, entry); err != nil {
		return fmt.Errorf("add income: %w", err)
	}
	s.log.Debug().Str("user_id", userID).Str("client", in.Client).Float64("amount", in.Amount).Msg("income entry added")
	return nil
}

// ClientHistory returns one client's raw rows, newest first.
func (s *entryService) ClientHistory(ctx context.Context, userID, client string) (*ports.ClientHistory, error) {
	times, err := s.repo.TimeHistory(ctx, userID, client)
	if err != nil {
		return nil, fmt.Errorf("client history: %w", err)
	}
	incomes, err := s.repo.IncomeHistory(ctx, userID, client)
	if err != nil {
		return nil, fmt.Errorf("client history: %w", err)
	}
	if times == nil {
		times = []domain.TimeEntry{}
	}
	if incomes == nil {
		incomes = []domain.IncomeEntry{}
	}
	return &ports.ClientHistory{Time: times, Income: incomes}, nil
}

// UpdateLog changes a single whitelisted field on one owned row. A miss on
// either the id or the owner reports domain.ErrEntryNotFound without
// revealing which check failed.
func (s *entryService) UpdateLog(ctx context.Context, userID string, in ports.UpdateLogInput) error {
	fields, ok := updatableFields[in.RecordType]
	if !ok {
		return fmt.Errorf("%w: unknown record type %q", domain.ErrInvalidUpdate, in.RecordType)
	}
	if !fields[in.Field] {
		return fmt.Errorf("%w: field %q is not updatable", domain.ErrInvalidUpdate, in.Field)
	}

	value, err := coerceValue(in.Field, in.Value)
	if err != nil {
		return err
	}

	if in.RecordType == "time" {
		err = s.repo.UpdateTimeField(ctx, userID, in.ID, in.Field, value)
	} else {
		err = s.repo.UpdateIncomeField(ctx, userID, in.ID, in.Field, value)
	}
	if err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("type", in.RecordType).Int64("id", in.ID).Str("field", in.Field).Msg("log updated")
	return nil
}

// coerceValue enforces the expected JSON type per field. Numeric fields
// must arrive as numbers, text fields as strings.
func coerceValue(field string, value any) (any, error) {
	switch field {
	case "Hours", "Amount":
		v, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidUpdate, field)
		}
		if field == "Hours" && v < 0 {
			return nil, fmt.Errorf("%w: Hours must be non-negative", domain.ErrInvalidUpdate)
		}
		return v, nil
	default:
		v, ok := value.(string)
		if !ok || v == "" {
			return nil, fmt.Errorf("%w: %s must be a non-empty string", domain.ErrInvalidUpdate, field)
		}
		return v, nil
	}
}
