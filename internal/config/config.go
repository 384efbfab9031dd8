package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ChartConfig holds the chart window, indicator spans and the
// color/style scheme.
type ChartConfig struct {
	WindowDays   int     `yaml:"window_days"`
	ShortEMASpan int     `yaml:"short_ema_span"`
	LongEMASpan  int     `yaml:"long_ema_span"`
	UpColor      string  `yaml:"up_color"`
	DownColor    string  `yaml:"down_color"`
	Background   string  `yaml:"background"`
	GridColor    string  `yaml:"grid_color"`
	GridDashed   bool    `yaml:"grid_dashed"`
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
	DPI          float64 `yaml:"dpi"`
	FontPath     string  `yaml:"font_path"`
}

// TranscriptConfig holds transcript fetch settings.
type TranscriptConfig struct {
	Language string `yaml:"language"`
}

// Config holds all application configuration.
type Config struct {
	OutputDir    string `yaml:"output_dir"`
	DataCacheDir string `yaml:"data_cache_dir"`
	CacheEnabled bool   `yaml:"cache_enabled"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`

	Chart      ChartConfig      `yaml:"chart"`
	Transcript TranscriptConfig `yaml:"transcript"`
}

// DefaultConfig returns the built-in defaults with .env and environment
// overrides applied. The chart defaults mirror the original hand-tuned
// scheme.
func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		OutputDir:    currentDir,
		DataCacheDir: filepath.Join(currentDir, "data", "cache"),
		CacheEnabled: true,
		LogLevel:     "info",
		LogFile:      "stock_chart.log",

		Chart: ChartConfig{
			WindowDays:   180,
			ShortEMASpan: 10,
			LongEMASpan:  60,
			UpColor:      "#D94848",
			DownColor:    "#4985D9",
			Background:   "#EAEAEA",
			GridColor:    "#D9D9D9",
			GridDashed:   true,
			WidthInches:  16,
			HeightInches: 8,
			DPI:          96,
		},
		Transcript: TranscriptConfig{
			Language: "ko",
		},
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

// LoadFile layers a YAML configuration file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("TRADELOG_OUTPUT_DIR"); val != "" {
		c.OutputDir = val
	}
	if val := os.Getenv("TRADELOG_DATA_CACHE_DIR"); val != "" {
		c.DataCacheDir = val
	}
	if val := os.Getenv("TRADELOG_CACHE_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.CacheEnabled = enabled
		}
	}
	if val := os.Getenv("TRADELOG_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv("TRADELOG_LOG_FILE"); val != "" {
		c.LogFile = val
	}
	if val := os.Getenv("TRADELOG_CHART_WINDOW_DAYS"); val != "" {
		if days, err := strconv.Atoi(val); err == nil && days > 0 {
			c.Chart.WindowDays = days
		}
	}
	if val := os.Getenv("TRADELOG_CHART_FONT_PATH"); val != "" {
		c.Chart.FontPath = val
	}
	if val := os.Getenv("TRADELOG_TRANSCRIPT_LANGUAGE"); val != "" {
		c.Transcript.Language = val
	}
}

// EnsureDirectories creates the output and cache directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.OutputDir, c.DataCacheDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
