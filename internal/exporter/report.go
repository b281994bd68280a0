package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ReportExporter renders the combined human-readable text report.
type ReportExporter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewReportExporter creates a text report exporter.
func NewReportExporter(paths *config.Paths, logger *slog.Logger) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportExporter{paths: paths, logger: logger}
}

// Export writes the combined report summarizing every selection under
// section headers. An empty valid set renders an explicit notice instead
// of empty tables.
func (e *ReportExporter) Export(ctx context.Context, missing domain.MissingSummary, agg domain.Aggregates, sel domain.Selections) error {
	var b strings.Builder

	writeHeader(&b, "SALES REPORT")

	writeSection(&b, "Missing Value Summary")
	fmt.Fprintf(&b, "Missing dates:    %d\n", missing.Dates)
	fmt.Fprintf(&b, "Missing products: %d\n", missing.Products)
	fmt.Fprintf(&b, "Missing sales:    %d\n", missing.Sales)
	fmt.Fprintf(&b, "Missing states:   %d\n", missing.States)

	if !sel.HasData {
		writeSection(&b, "Results")
		b.WriteString("No valid records after filtering; no aggregates were produced.\n")
		return e.write(ctx, b.String())
	}

	writeSection(&b, "Monthly Sales")
	for _, m := range agg.Monthly {
		fmt.Fprintf(&b, "%-10s %s\n", m.Label, formatAmount(m.Total))
	}

	writeSection(&b, "Peak Sales Month")
	for _, m := range sel.PeakMonths {
		fmt.Fprintf(&b, "%-10s %s\n", m.Label, formatAmount(m.Total))
	}

	writeSection(&b, "Lowest Sales Month")
	for _, m := range sel.LowestMonths {
		fmt.Fprintf(&b, "%-10s %s\n", m.Label, formatAmount(m.Total))
	}

	writeSection(&b, "Top Product")
	fmt.Fprintf(&b, "%s (%s)\n", sel.TopProduct.Product, formatAmount(sel.TopProduct.Total))

	writeSection(&b, "Top 5 Products")
	for i, p := range sel.Top5Products {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, p.Product, formatAmount(p.Total))
	}

	writeSection(&b, "Customers by State")
	for _, s := range sel.CustomerCountByState {
		fmt.Fprintf(&b, "%-6s %d\n", s.StateCode, s.Customers)
	}
	fmt.Fprintf(&b, "\nMost customers:   %s (%d)\n", sel.StateMostCustomers.StateCode, sel.StateMostCustomers.Customers)
	fmt.Fprintf(&b, "Fewest customers: %s (%d)\n", sel.StateFewestCustomers.StateCode, sel.StateFewestCustomers.Customers)

	return e.write(ctx, b.String())
}

func (e *ReportExporter) write(ctx context.Context, content string) error {
	if err := os.WriteFile(e.paths.SalesReportTXT, []byte(content), 0644); err != nil {
		return errors.NewStorageError("failed to write text report", err)
	}

	e.logger.InfoContext(ctx, "wrote text report",
		slog.String("path", e.paths.SalesReportTXT))
	return nil
}

func writeHeader(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n")
}

func writeSection(b *strings.Builder, title string) {
	b.WriteString("\n" + title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
}
