package dataprocessing

import (
	"context"
	"log/slog"

	"salescli/pkg/contracts/domain"
)

// Aggregate runs the three independent reductions over the valid record
// set: monthly sales sums, product sales sums, and per-state record counts.
// Records must already be in chronological order (see FilterValid) so the
// monthly aggregate comes out chronological by construction. All summation
// is exact decimal arithmetic.
func Aggregate(ctx context.Context, valid []domain.SalesRecord) domain.Aggregates {
	agg := domain.Aggregates{
		Monthly:  make(domain.MonthlyAggregate, 0),
		Products: make(domain.ProductAggregate),
		States:   make(domain.StateCustomerCount),
	}

	monthIndex := make(map[string]int)

	for _, r := range valid {
		if i, ok := monthIndex[r.MonthLabel]; ok {
			agg.Monthly[i].Total = agg.Monthly[i].Total.Add(r.TotalSales)
		} else {
			monthIndex[r.MonthLabel] = len(agg.Monthly)
			agg.Monthly = append(agg.Monthly, domain.MonthlySales{
				Month: r.Month,
				Label: r.MonthLabel,
				Total: r.TotalSales,
			})
		}

		agg.Products[r.Product] = agg.Products[r.Product].Add(r.TotalSales)
		agg.States[r.StateCode]++
	}

	slog.InfoContext(ctx, "computed aggregates",
		slog.Int("month_count", len(agg.Monthly)),
		slog.Int("product_count", len(agg.Products)),
		slog.Int("state_count", len(agg.States)))

	return agg
}
