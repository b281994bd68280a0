package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
// Pipeline behavior is fixed; configuration covers ambient concerns only:
// where the input lives, where reports go, and how logging behaves.
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the source dataset.
type InputConfig struct {
	// File is the tabular sales dataset (.csv or .xlsx). Missing file is
	// a fatal error at run start.
	File string `yaml:"file" envconfig:"FILE" default:"data/sales_data.csv" validate:"required"`
	// Sheet is the worksheet read from Excel inputs; empty means the
	// first sheet in the workbook.
	Sheet string `yaml:"sheet" envconfig:"SHEET"`
}

// ReportConfig describes the output surface.
type ReportConfig struct {
	// OutputDir receives every generated file and is created if absent.
	// All outputs are regenerated on every run.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"data/reports" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/salesreport.log"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment values (SALES_*) take precedence over the file.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := getConfigFilePath(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		mergeConfigs(cfg, fileCfg)
	}

	if err := envconfig.Process("SALES", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays non-empty file values onto the defaults
func mergeConfigs(dst, file *Config) {
	if file.Input.File != "" {
		dst.Input.File = file.Input.File
	}
	if file.Input.Sheet != "" {
		dst.Input.Sheet = file.Input.Sheet
	}
	if file.Report.OutputDir != "" {
		dst.Report.OutputDir = file.Report.OutputDir
	}
	if file.Logging.Level != "" {
		dst.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		dst.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" {
		dst.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" {
		dst.Logging.FilePath = file.Logging.FilePath
	}
}

// validate validates the configuration using struct tags
func (c *Config) validate() error {
	// JSON is the only supported log format; normalize rather than fail
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/salesreport.log"
	}

	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use defaults and env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Input: InputConfig{
			File: "data/sales_data.csv",
		},
		Report: ReportConfig{
			OutputDir: "data/reports",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/salesreport.log",
		},
	}
}
