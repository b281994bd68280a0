package dataprocessing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"salescli/pkg/contracts/domain"
)

// dateLayouts are the accepted day-month-year forms. Anything else,
// including impossible day/month combinations, leaves the date absent.
var dateLayouts = []string{
	"2-1-2006",
	"2/1/2006",
}

// currencyMarkers are the symbols stripped before decimal parsing.
var currencyMarkers = "$£€"

// Normalizer parses raw rows into typed records. It never fails a run:
// unparsable cells become absent fields on the produced record.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer creates a normalizer. A nil logger falls back to the default.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// Normalize converts raw rows into typed records of equal length and order,
// and tallies raw missing-field counters as it goes. The counters measure
// input quality against original field presence: a non-empty cell that
// fails to parse is absent on the record but is NOT counted missing here.
func (n *Normalizer) Normalize(ctx context.Context, raw []domain.RawRecord) ([]domain.SalesRecord, domain.MissingSummary) {
	records := make([]domain.SalesRecord, 0, len(raw))
	var missing domain.MissingSummary

	for _, r := range raw {
		if !r.HasOrderDate() {
			missing.Dates++
		}
		if !r.HasProduct() {
			missing.Products++
		}
		if !r.HasTotalSales() {
			missing.Sales++
		}
		if !r.HasStateCode() {
			missing.States++
		}

		rec := domain.SalesRecord{
			Product:   strings.TrimSpace(r.Product),
			StateCode: strings.TrimSpace(r.StateCode),
		}

		if date, ok := parseOrderDate(r.OrderDate); ok {
			rec.OrderDate = date
			rec.HasDate = true
			rec.Month = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
			rec.MonthLabel = rec.Month.Format(domain.MonthLabelLayout)
		}

		if amount, ok := parseCurrency(r.TotalSales); ok {
			rec.TotalSales = amount
			rec.HasSales = true
		}

		records = append(records, rec)
	}

	n.logger.InfoContext(ctx, "normalized raw records",
		slog.Int("record_count", len(records)),
		slog.Int("missing_dates", missing.Dates),
		slog.Int("missing_products", missing.Products),
		slog.Int("missing_sales", missing.Sales),
		slog.Int("missing_states", missing.States))

	return records, missing
}

// parseOrderDate interprets text strictly as day-month-year.
func parseOrderDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if date, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}

// parseCurrency strips currency markers and thousands separators, then
// parses the remainder as an exact decimal.
func parseCurrency(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Decimal{}, false
	}

	text = strings.TrimLeft(text, currencyMarkers)
	text = strings.ReplaceAll(text, ",", "")
	text = strings.TrimSpace(text)

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}

	return amount, true
}
