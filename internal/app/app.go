package app

import (
	"context"
	"fmt"
	"log/slog"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	"salescli/internal/exporter"
	"salescli/internal/infrastructure"
	"salescli/pkg/contracts/domain"
)

// Application wires the pipeline stages to the writer collaborators.
type Application struct {
	Config *config.Config
	Paths  *config.Paths
	Logger *slog.Logger

	normalizer *dataprocessing.Normalizer
	aggregates *exporter.AggregateExporter
	report     *exporter.ReportExporter
	workbook   *exporter.WorkbookExporter
	charts     *exporter.ChartExporter
}

// Results is the complete computed bundle of one pipeline run. It is built
// in full before any output file is opened, so serialization failures can
// never corrupt computation and reruns on identical input are identical.
type Results struct {
	Missing    domain.MissingSummary
	Aggregates domain.Aggregates
	Selections domain.Selections

	RawCount   int
	ValidCount int
}

// NewApplication creates an application instance with dependency injection
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds an application from an explicit configuration.
func NewWithConfig(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths := config.NewPaths(cfg)
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	return &Application{
		Config:     cfg,
		Paths:      paths,
		Logger:     logger,
		normalizer: dataprocessing.NewNormalizer(logger),
		aggregates: exporter.NewAggregateExporter(paths, logger),
		report:     exporter.NewReportExporter(paths, logger),
		workbook:   exporter.NewWorkbookExporter(paths, logger),
		charts:     exporter.NewChartExporter(paths, logger),
	}, nil
}

// Run executes one batch run: read, compute everything, then write every
// output. Per-record problems never fail the run; only the fatal
// conditions (unreadable input, bad schema, unwritable outputs) do.
func (a *Application) Run(ctx context.Context) error {
	ctx = infrastructure.NewRunContext(ctx)

	a.Logger.InfoContext(ctx, "Pipeline run starting",
		slog.String("input_file", a.Paths.InputFile),
		slog.String("output_dir", a.Paths.OutputDir))

	results, err := a.Compute(ctx)
	if err != nil {
		return err
	}

	if err := a.Write(ctx, results); err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "Pipeline run complete",
		slog.Int("raw_records", results.RawCount),
		slog.Int("valid_records", results.ValidCount),
		slog.Bool("has_data", results.Selections.HasData))

	return nil
}

// Compute runs the pure pipeline stages and returns the result bundle.
func (a *Application) Compute(ctx context.Context) (*Results, error) {
	raw, err := dataprocessing.ReadFile(a.Paths.InputFile, a.Config.Input.Sheet)
	if err != nil {
		return nil, err
	}

	normalized, missing := a.normalizer.Normalize(ctx, raw)
	valid := dataprocessing.FilterValid(ctx, normalized)
	aggregates := dataprocessing.Aggregate(ctx, valid)
	selections := dataprocessing.Select(aggregates)

	return &Results{
		Missing:    missing,
		Aggregates: aggregates,
		Selections: selections,
		RawCount:   len(raw),
		ValidCount: len(valid),
	}, nil
}

// Write hands the complete result bundle to every writer collaborator.
func (a *Application) Write(ctx context.Context, results *Results) error {
	if err := a.aggregates.ExportMissingSummary(ctx, results.Missing); err != nil {
		return err
	}
	if err := a.aggregates.ExportSelections(ctx, results.Selections); err != nil {
		return err
	}
	if err := a.report.Export(ctx, results.Missing, results.Aggregates, results.Selections); err != nil {
		return err
	}
	if err := a.workbook.Export(ctx, results.Selections); err != nil {
		return err
	}
	if err := a.charts.ExportMonthlyTrend(ctx, results.Aggregates.Monthly); err != nil {
		return err
	}
	if err := a.charts.ExportTopProducts(ctx, results.Selections.Top5Products); err != nil {
		return err
	}
	return nil
}
