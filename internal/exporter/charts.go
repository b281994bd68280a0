package exporter

import (
	"context"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// ChartExporter renders the PNG chart outputs.
type ChartExporter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewChartExporter creates a chart exporter.
func NewChartExporter(paths *config.Paths, logger *slog.Logger) *ChartExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartExporter{paths: paths, logger: logger}
}

// ExportMonthlyTrend renders the monthly sales line chart, x-axis in the
// chronological order the aggregate already carries.
func (e *ChartExporter) ExportMonthlyTrend(ctx context.Context, monthly domain.MonthlyAggregate) error {
	p := plot.New()
	p.Title.Text = "Monthly Sales Trend"
	p.Y.Label.Text = "Total Sales"

	// An empty aggregate renders a titled blank chart; the nominal axis
	// cannot be built from zero labels.
	if len(monthly) > 0 {
		points := make(plotter.XYs, len(monthly))
		labels := make([]string, len(monthly))
		for i, m := range monthly {
			points[i].X = float64(i)
			points[i].Y, _ = m.Total.Float64()
			labels[i] = m.Label
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return errors.NewRenderError("failed to build trend line", err)
		}
		p.Add(line)
		p.NominalX(labels...)
	}

	if err := p.Save(10*vg.Inch, 4*vg.Inch, e.paths.MonthlyTrendPNG); err != nil {
		return errors.NewRenderError("failed to save monthly trend chart", err)
	}

	e.logger.InfoContext(ctx, "wrote monthly trend chart",
		slog.String("path", e.paths.MonthlyTrendPNG),
		slog.Int("month_count", len(monthly)))
	return nil
}

// ExportTopProducts renders the top products horizontal bar chart, best
// seller as the topmost bar.
func (e *ChartExporter) ExportTopProducts(ctx context.Context, products []domain.ProductSales) error {
	p := plot.New()
	p.Title.Text = "Top 5 Products by Sales"
	p.X.Label.Text = "Total Sales"

	// An empty ranking renders a titled blank chart; the nominal axis
	// cannot be built from zero labels.
	if len(products) > 0 {
		// Horizontal bars draw index 0 at the bottom; reverse so rank 1
		// lands on top.
		values := make(plotter.Values, len(products))
		names := make([]string, len(products))
		for i, prod := range products {
			j := len(products) - 1 - i
			values[j], _ = prod.Total.Float64()
			names[j] = prod.Product
		}

		bars, err := plotter.NewBarChart(values, vg.Points(20))
		if err != nil {
			return errors.NewRenderError("failed to build product bars", err)
		}
		bars.Horizontal = true
		p.Add(bars)
		p.NominalY(names...)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, e.paths.Top5ProductsPNG); err != nil {
		return errors.NewRenderError("failed to save top products chart", err)
	}

	e.logger.InfoContext(ctx, "wrote top products chart",
		slog.String("path", e.paths.Top5ProductsPNG),
		slog.Int("product_count", len(products)))
	return nil
}
