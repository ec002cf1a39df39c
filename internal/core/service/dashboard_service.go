package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancedash/profit-engine/internal/core/domain"
	"github.com/freelancedash/profit-engine/internal/core/ports"
)

type dashboardService struct {
	repo ports.EntryRepository
	log  zerolog.Logger
}

// NewDashboardService returns a DashboardService implementation.
func NewDashboardService(repo ports.EntryRepository, log zerolog.Logger) ports.DashboardService {
	return &dashboardService{repo: repo, log: log}
}

// Dashboard recomputes all per-client metrics for one user from the
// current store state. Nothing is cached between requests.
//
// Any fetch failure degrades to an empty result rather than propagating;
// the read path stays available and the cause is logged.
func (s *dashboardService) Dashboard(ctx context.Context, userID string) ([]domain.ClientMetrics, error) {
	times, err := s.repo.ListTimeByOwner(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("time fetch failed, serving empty dashboard")
		return []domain.ClientMetrics{}, nil
	}
	incomes, err := s.repo.ListIncomeByOwner(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("income fetch failed, serving empty dashboard")
		return []domain.ClientMetrics{}, nil
	}

	rows := aggregateClients(times, incomes)
	if len(rows) == 0 {
		return []domain.ClientMetrics{}, nil
	}

	// Per-client hours in insertion order; ListTimeByOwner sorts ascending.
	hoursByClient := make(map[string][]float64)
	for _, t := range times {
		hoursByClient[t.Client] = append(hoursByClient[t.Client], t.Hours)
	}

	for i := range rows {
		rows[i].ForecastNextHour = forecastNextHours(hoursByClient[rows[i].Client])
	}
	return rows, nil
}
