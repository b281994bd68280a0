package exporter

import (
	"context"
	"log/slog"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// AggregateExporter writes the per-aggregate CSV outputs. It consumes the
// fully computed result bundle; no aggregation happens here.
type AggregateExporter struct {
	paths  *config.Paths
	writer *CSVWriter
	logger *slog.Logger
}

// NewAggregateExporter creates an aggregate exporter rooted at the
// configured output paths.
func NewAggregateExporter(paths *config.Paths, logger *slog.Logger) *AggregateExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &AggregateExporter{
		paths:  paths,
		writer: NewCSVWriter(),
		logger: logger,
	}
}

// ExportMissingSummary writes the raw missing-value counters as a single
// CSV row.
func (e *AggregateExporter) ExportMissingSummary(ctx context.Context, missing domain.MissingSummary) error {
	err := e.writer.WriteSimpleCSV(e.paths.MissingSummaryCSV,
		[]string{"MissingDates", "MissingProducts", "MissingSales", "MissingStates"},
		[][]string{{
			formatCount(missing.Dates),
			formatCount(missing.Products),
			formatCount(missing.Sales),
			formatCount(missing.States),
		}})
	if err != nil {
		return errors.NewStorageError("failed to write missing-value summary", err)
	}

	e.logger.InfoContext(ctx, "wrote missing-value summary",
		slog.String("path", e.paths.MissingSummaryCSV))
	return nil
}

// ExportSelections writes one CSV per rank selection. Peak and lowest
// month files carry one row per tied month; the single-row selections
// (top product, most/fewest customers) always carry exactly one row when
// data exists, and no data rows otherwise.
func (e *AggregateExporter) ExportSelections(ctx context.Context, sel domain.Selections) error {
	monthHeaders := []string{"MonthLabel", "TotalSales"}
	stateHeaders := []string{"StateCode", "CustomerCount"}

	if err := e.writer.WriteSimpleCSV(e.paths.PeakMonthCSV, monthHeaders, monthRows(sel.PeakMonths)); err != nil {
		return errors.NewStorageError("failed to write peak month CSV", err)
	}
	if err := e.writer.WriteSimpleCSV(e.paths.LowestMonthCSV, monthHeaders, monthRows(sel.LowestMonths)); err != nil {
		return errors.NewStorageError("failed to write lowest month CSV", err)
	}

	var topProductRows [][]string
	if sel.HasData {
		topProductRows = [][]string{{sel.TopProduct.Product, formatAmount(sel.TopProduct.Total)}}
	}
	if err := e.writer.WriteSimpleCSV(e.paths.TopProductCSV, []string{"Product", "TotalSales"}, topProductRows); err != nil {
		return errors.NewStorageError("failed to write top product CSV", err)
	}

	if err := e.writer.WriteSimpleCSV(e.paths.CustomerCountByStateCSV, stateHeaders, stateRows(sel.CustomerCountByState)); err != nil {
		return errors.NewStorageError("failed to write customer count CSV", err)
	}

	var most, fewest [][]string
	if sel.HasData {
		most = stateRows([]domain.StateCustomers{sel.StateMostCustomers})
		fewest = stateRows([]domain.StateCustomers{sel.StateFewestCustomers})
	}
	if err := e.writer.WriteSimpleCSV(e.paths.StateMostCustomersCSV, stateHeaders, most); err != nil {
		return errors.NewStorageError("failed to write most customers CSV", err)
	}
	if err := e.writer.WriteSimpleCSV(e.paths.StateFewestCustomersCSV, stateHeaders, fewest); err != nil {
		return errors.NewStorageError("failed to write fewest customers CSV", err)
	}

	e.logger.InfoContext(ctx, "wrote selection CSVs",
		slog.String("output_dir", e.paths.OutputDir),
		slog.Bool("has_data", sel.HasData))
	return nil
}

func monthRows(months []domain.MonthlySales) [][]string {
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{m.Label, formatAmount(m.Total)})
	}
	return rows
}

func stateRows(states []domain.StateCustomers) [][]string {
	rows := make([][]string, 0, len(states))
	for _, s := range states {
		rows = append(rows, []string{s.StateCode, formatCount(s.Customers)})
	}
	return rows
}
