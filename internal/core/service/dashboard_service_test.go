package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancedash/profit-engine/internal/core/domain"
	"github.com/freelancedash/profit-engine/internal/core/ports"
)

// stubEntryRepo is an in-memory EntryRepository honoring the owner-scoping
// contract, shared by the dashboard and entry service tests.
type stubEntryRepo struct {
	times    []domain.TimeEntry
	incomes  []domain.IncomeEntry
	nextTime int64
	nextInc  int64
	failAll  bool
}

var errStubDown = errors.New("stub repository down")

func (r *stubEntryRepo) InsertTime(_ context.Context, e *domain.TimeEntry) error {
	if r.failAll {
		return errStubDown
	}
	r.nextTime++
	e.ID = r.nextTime
	r.times = append(r.times, *e)
	return nil
}

func (r *stubEntryRepo) InsertIncome(_ context.Context, e *domain.IncomeEntry) error {
	if r.failAll {
		return errStubDown
	}
	r.nextInc++
	e.ID = r.nextInc
	r.incomes = append(r.incomes, *e)
	return nil
}

func (r *stubEntryRepo) ListTimeByOwner(_ context.Context, userID string) ([]domain.TimeEntry, error) {
	if r.failAll {
		return nil, errStubDown
	}
	var out []domain.TimeEntry
	for _, e := range r.times {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) ListIncomeByOwner(_ context.Context, userID string) ([]domain.IncomeEntry, error) {
	if r.failAll {
		return nil, errStubDown
	}
	var out []domain.IncomeEntry
	for _, e := range r.incomes {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEntryRepo) TimeHistory(_ context.Context, userID, client string) ([]domain.TimeEntry, error) {
	if r.failAll {
		return nil, errStubDown
	}
	var out []domain.TimeEntry
	for i := len(r.times) - 1; i >= 0; i-- {
		if r.times[i].UserID == userID && r.times[i].Client == client {
			out = append(out, r.times[i])
		}
	}
	return out, nil
}

func (r *stubEntryRepo) IncomeHistory(_ context.Context, userID, client string) ([]domain.IncomeEntry, error) {
	if r.failAll {
		return nil, errStubDown
	}
	var out []domain.IncomeEntry
	for i := len(r.incomes) - 1; i >= 0; i-- {
		if r.incomes[i].UserID == userID && r.incomes[i].Client == client {
			out = append(out, r.incomes[i])
		}
	}
	return out, nil
}

func (r *stubEntryRepo) UpdateTimeField(_ context.Context, userID string, id int64, field string, value any) error {
	for i := range r.times {
		if r.times[i].ID == id && r.times[i].UserID == userID {
			switch field {
			case "Client":
				r.times[i].Client = value.(string)
			case "Hours":
				r.times[i].Hours = value.(float64)
			case "Type":
				r.times[i].Category = value.(string)
			}
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func (r *stubEntryRepo) UpdateIncomeField(_ context.Context, userID string, id int64, field string, value any) error {
	for i := range r.incomes {
		if r.incomes[i].ID == id && r.incomes[i].UserID == userID {
			switch field {
			case "Client":
				r.incomes[i].Client = value.(string)
			case "Amount":
				r.incomes[i].Amount = value.(float64)
			}
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

func seedTime(r *stubEntryRepo, userID, client string, hours float64, category string) {
	r.nextTime++
	r.times = append(r.times, domain.TimeEntry{
		ID: r.nextTime, UserID: userID, Client: client, Hours: hours, Category: category,
	})
}

func seedIncome(r *stubEntryRepo, userID, client string, amount float64) {
	r.nextInc++
	r.incomes = append(r.incomes, domain.IncomeEntry{
		ID: r.nextInc, UserID: userID, Client: client, Amount: amount,
	})
}

func TestDashboardService_OwnerIsolation(t *testing.T) {
	repo := &stubEntryRepo{}
	seedTime(repo, "alice", "Acme", 2, domain.CategoryBillable)
	seedTime(repo, "bob", "Acme", 40, domain.CategoryBillable)
	seedTime(repo, "bob", "SecretCorp", 10, domain.CategoryAdmin)
	seedIncome(repo, "bob", "Acme", 9999)

	svc := NewDashboardService(repo, zerolog.Nop())

	rows, err := svc.Dashboard(context.Background(), "alice")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row for alice, got %d", len(rows))
	}
	if rows[0].TotalHours != 2 {
		t.Fatalf("alice's row includes foreign hours: %+v", rows[0])
	}
	if rows[0].Revenue != 0 {
		t.Fatalf("alice's row includes bob's revenue: %+v", rows[0])
	}
	for _, r := range rows {
		if r.Client == "SecretCorp" {
			t.Fatalf("bob's client leaked into alice's dashboard")
		}
	}
}

func TestDashboardService_RoundTrip(t *testing.T) {
	repo := &stubEntryRepo{}
	svc := NewDashboardService(repo, zerolog.Nop())

	// An inserted entry is reflected on the next request without any
	// explicit recomputation trigger.
	entries := NewEntryService(repo, zerolog.Nop())
	if err := entries.AddTime(context.Background(), "alice", ports.AddTimeInput{
		Client: "Acme", Hours: 3.5, Category: domain.CategoryBillable,
	}); err != nil {
		t.Fatalf("add time failed: %v", err)
	}

	rows, err := svc.Dashboard(context.Background(), "alice")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if len(rows) != 1 || rows[0].TotalHours != 3.5 {
		t.Fatalf("inserted entry not reflected: %+v", rows)
	}
	if rows[0].ForecastNextHour != 3.5 {
		t.Fatalf("single entry must forecast itself, got %v", rows[0].ForecastNextHour)
	}
}

func TestDashboardService_ForecastPerClient(t *testing.T) {
	repo := &stubEntryRepo{}
	seedTime(repo, "alice", "Acme", 2, domain.CategoryBillable)
	seedTime(repo, "alice", "Acme", 4, domain.CategoryBillable)
	seedTime(repo, "alice", "Globex", 5, domain.CategoryBillable)

	svc := NewDashboardService(repo, zerolog.Nop())
	rows, err := svc.Dashboard(context.Background(), "alice")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	byClient := map[string]domain.ClientMetrics{}
	for _, r := range rows {
		byClient[r.Client] = r
	}
	if byClient["Acme"].ForecastNextHour != 6.0 {
		t.Fatalf("expected Acme forecast 6.0, got %v", byClient["Acme"].ForecastNextHour)
	}
	if byClient["Globex"].ForecastNextHour != 5.0 {
		t.Fatalf("expected Globex forecast 5.0, got %v", byClient["Globex"].ForecastNextHour)
	}
}

func TestDashboardService_IncomeOnlyClientForecastsZero(t *testing.T) {
	repo := &stubEntryRepo{}
	seedTime(repo, "alice", "Acme", 2, domain.CategoryBillable)
	seedIncome(repo, "alice", "Initech", 500)

	svc := NewDashboardService(repo, zerolog.Nop())
	rows, err := svc.Dashboard(context.Background(), "alice")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}

	for _, r := range rows {
		if r.Client == "Initech" {
			if r.ForecastNextHour != 0 || r.TotalHours != 0 {
				t.Fatalf("unexpected income-only row: %+v", r)
			}
			return
		}
	}
	t.Fatalf("income-only client missing from outer union: %+v", rows)
}

func TestDashboardService_NoData(t *testing.T) {
	svc := NewDashboardService(&stubEntryRepo{}, zerolog.Nop())

	rows, err := svc.Dashboard(context.Background(), "alice")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", rows)
	}
}

func TestDashboardService_DegradesToEmptyOnFetchFailure(t *testing.T) {
	svc := NewDashboardService(&stubEntryRepo{failAll: true}, zerolog.Nop())

	rows, err := svc.Dashboard(context.Background(), "alice")
	if err != nil {
		t.Fatalf("read path must not propagate fetch failures, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty result on fetch failure, got %+v", rows)
	}
}
