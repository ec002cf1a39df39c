package service

import (
	"github.com/freelancedash/profit-engine/internal/core/domain"
)

// aggregateClients groups one user's rows by client and computes the
// profitability columns of the dashboard. Clients appearing in either
// source are represented (outer union); missing sums fill as 0. Rows come
// out in first-appearance order: time-entry clients first, then
// income-only clients.
//
// A user with zero time entries yields an empty result, even when income
// rows exist; the dashboard short-circuits to empty in that case.
func aggregateClients(times []domain.TimeEntry, incomes []domain.IncomeEntry) []domain.ClientMetrics {
	if len(times) == 0 {
		return nil
	}

	type bucket struct {
		totalHours float64
		adminHours float64
		revenue    float64
	}

	buckets := make(map[string]*bucket)
	var order []string

	get := func(client string) *bucket {
		b, ok := buckets[client]
		if !ok {
			b = &bucket{}
			buckets[client] = b
			order = append(order, client)
		}
		return b
	}

	for _, t := range times {
		b := get(t.Client)
		b.totalHours += t.Hours
		if t.Category == domain.CategoryAdmin {
			b.adminHours += t.Hours
		}
	}
	for _, in := range incomes {
		get(in.Client).revenue += in.Amount
	}

	rows := make([]domain.ClientMetrics, 0, len(order))
	for _, client := range order {
		b := buckets[client]
		row := domain.ClientMetrics{
			Client:     client,
			TotalHours: b.totalHours,
			AdminHours: b.adminHours,
			Revenue:    b.revenue,
		}
		// Division by zero is defined as exactly 0, never an error or NaN.
		if b.totalHours > 0 {
			row.RealHourlyRate = b.revenue / b.totalHours
			row.FrictionScore = b.adminHours / b.totalHours * 100
		}
		rows = append(rows, row)
	}
	return rows
}
