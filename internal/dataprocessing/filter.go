package dataprocessing

import (
	"context"
	"log/slog"
	"sort"

	"salescli/pkg/contracts/domain"
)

// FilterValid returns the records whose four required fields are all
// present, re-ordered by ascending month. The sort is stable: records
// sharing a month keep their input order. A record failing any single
// presence check is dropped whole; partial records never reach aggregation.
func FilterValid(ctx context.Context, records []domain.SalesRecord) []domain.SalesRecord {
	valid := make([]domain.SalesRecord, 0, len(records))
	for _, r := range records {
		if r.Valid() {
			valid = append(valid, r)
		}
	}

	// Month labels must read chronologically downstream, not in first
	// appearance or alphabetical order.
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Month.Before(valid[j].Month)
	})

	slog.InfoContext(ctx, "filtered valid records",
		slog.Int("input_count", len(records)),
		slog.Int("valid_count", len(valid)),
		slog.Int("dropped_count", len(records)-len(valid)))

	return valid
}
