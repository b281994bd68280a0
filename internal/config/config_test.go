package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data/sales_data.csv", cfg.Input.File)
	assert.Empty(t, cfg.Input.Sheet)
	assert.Equal(t, "data/reports", cfg.Report.OutputDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "logs/salesreport.log", cfg.Logging.FilePath)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty input file rejected",
			mutate:  func(c *Config) { c.Input.File = "" },
			wantErr: true,
		},
		{
			name:    "empty output dir rejected",
			mutate:  func(c *Config) { c.Report.OutputDir = "" },
			wantErr: true,
		},
		{
			name:    "unknown log level rejected",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "unknown log output rejected",
			mutate:  func(c *Config) { c.Logging.Output = "syslog" },
			wantErr: true,
		},
		{
			name:   "debug level accepted",
			mutate: func(c *Config) { c.Logging.Level = "debug" },
		},
		{
			name:   "non-json format normalized",
			mutate: func(c *Config) { c.Logging.Format = "text" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateNormalizesFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "text"

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestMergeConfigs(t *testing.T) {
	dst := Default()
	file := &Config{}
	file.Input.File = "custom/input.xlsx"
	file.Input.Sheet = "Orders"
	file.Logging.Level = "debug"

	mergeConfigs(dst, file)

	assert.Equal(t, "custom/input.xlsx", dst.Input.File)
	assert.Equal(t, "Orders", dst.Input.Sheet)
	assert.Equal(t, "debug", dst.Logging.Level)
	// Untouched file values keep the defaults
	assert.Equal(t, "data/reports", dst.Report.OutputDir)
	assert.Equal(t, "both", dst.Logging.Output)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
input:
  file: sales.xlsx
  sheet: Q1
report:
  output_dir: out
logging:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sales.xlsx", cfg.Input.File)
	assert.Equal(t, "Q1", cfg.Input.Sheet)
	assert.Equal(t, "out", cfg.Report.OutputDir)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unbalanced"), 0644))

	_, err := loadFromFile(path)
	assert.Error(t, err)
}

func TestNewPaths(t *testing.T) {
	cfg := Default()
	cfg.Input.File = "in/sales.csv"
	cfg.Report.OutputDir = "out"
	cfg.Logging.FilePath = "var/log/salesreport.log"

	paths := NewPaths(cfg)

	assert.Equal(t, "in/sales.csv", paths.InputFile)
	assert.Equal(t, "out", paths.OutputDir)
	assert.Equal(t, filepath.Join("out", "charts"), paths.ChartsDir)
	assert.Equal(t, filepath.Join("var", "log"), paths.LogsDir)
	assert.Equal(t, filepath.Join("out", "missing_summary.csv"), paths.MissingSummaryCSV)
	assert.Equal(t, filepath.Join("out", "peak_month.csv"), paths.PeakMonthCSV)
	assert.Equal(t, filepath.Join("out", "sales_report.txt"), paths.SalesReportTXT)
	assert.Equal(t, filepath.Join("out", "sales_summary.xlsx"), paths.SummaryWorkbookXLSX)
	assert.Equal(t, filepath.Join("out", "charts", "monthly_sales_trend.png"), paths.MonthlyTrendPNG)
	assert.Equal(t, filepath.Join("out", "charts", "top5_products.png"), paths.Top5ProductsPNG)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Input.File = filepath.Join(dir, "missing", "input.csv")
	cfg.Report.OutputDir = filepath.Join(dir, "reports")
	cfg.Logging.FilePath = filepath.Join(dir, "logs", "run.log")

	paths := NewPaths(cfg)
	require.NoError(t, paths.EnsureDirectories())

	for _, d := range []string{paths.OutputDir, paths.ChartsDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// The input directory is never created
	_, err := os.Stat(filepath.Dir(paths.InputFile))
	assert.True(t, os.IsNotExist(err))
}

func TestPaths_GetOutputPath(t *testing.T) {
	cfg := Default()
	cfg.Report.OutputDir = "out"

	paths := NewPaths(cfg)
	assert.Equal(t, filepath.Join("out", "extra.csv"), paths.GetOutputPath("extra.csv"))
	assert.Equal(t, filepath.Join("logs", "other.log"), paths.GetLogPath("other.log"))
}
