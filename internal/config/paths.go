package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains every file path the pipeline reads or writes.
// This is the single source of truth: writer collaborators receive a Paths
// value instead of assuming directories exist on disk.
type Paths struct {
	InputFile string
	OutputDir string
	ChartsDir string
	LogsDir   string

	// Well-known output files inside OutputDir
	MissingSummaryCSV       string
	PeakMonthCSV            string
	LowestMonthCSV          string
	TopProductCSV           string
	CustomerCountByStateCSV string
	StateMostCustomersCSV   string
	StateFewestCustomersCSV string
	SalesReportTXT          string
	SummaryWorkbookXLSX     string
	MonthlyTrendPNG         string
	Top5ProductsPNG         string
}

// NewPaths derives the full path set from configuration. Relative paths
// stay relative to the working directory the tool was launched from.
func NewPaths(cfg *Config) *Paths {
	out := cfg.Report.OutputDir
	charts := filepath.Join(out, "charts")

	return &Paths{
		InputFile: cfg.Input.File,
		OutputDir: out,
		ChartsDir: charts,
		LogsDir:   filepath.Dir(cfg.Logging.FilePath),

		MissingSummaryCSV:       filepath.Join(out, "missing_summary.csv"),
		PeakMonthCSV:            filepath.Join(out, "peak_month.csv"),
		LowestMonthCSV:          filepath.Join(out, "lowest_month.csv"),
		TopProductCSV:           filepath.Join(out, "top_product.csv"),
		CustomerCountByStateCSV: filepath.Join(out, "customer_count_by_state.csv"),
		StateMostCustomersCSV:   filepath.Join(out, "state_most_customers.csv"),
		StateFewestCustomersCSV: filepath.Join(out, "state_fewest_customers.csv"),
		SalesReportTXT:          filepath.Join(out, "sales_report.txt"),
		SummaryWorkbookXLSX:     filepath.Join(out, "sales_summary.xlsx"),
		MonthlyTrendPNG:         filepath.Join(charts, "monthly_sales_trend.png"),
		Top5ProductsPNG:         filepath.Join(charts, "top5_products.png"),
	}
}

// EnsureDirectories creates all output directories if they don't exist.
// The input file's directory is deliberately not created: a missing input
// is a fatal condition, not something to paper over.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.OutputDir,
		p.ChartsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// GetOutputPath resolves a file name inside the output directory.
func (p *Paths) GetOutputPath(name string) string {
	return filepath.Join(p.OutputDir, name)
}

// GetLogPath resolves a file name inside the logs directory.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
