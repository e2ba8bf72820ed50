// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/sartorproj/pageviews/logger"
)

// ErrInvalid is returned when a configuration value cannot be used.
var ErrInvalid = errors.NewKind("invalid %s: %s")

// Config holds the application configuration.
type Config struct {
	CSVPath       string
	OutputDir     string
	LogLevel      string
	LowerQuantile float64
	UpperQuantile float64
}

// Default values
const (
	defaultCSVPath       = "fcc-forum-pageviews.csv"
	defaultOutputDir     = "."
	defaultLogLevel      = "info"
	defaultLowerQuantile = 0.025
	defaultUpperQuantile = 0.975
)

// Environment variable names.
const (
	EnvCSVPath       = "PAGEVIEWS_CSV"
	EnvOutputDir     = "PAGEVIEWS_OUTPUT_DIR"
	EnvLogLevel      = "PAGEVIEWS_LOG_LEVEL"
	EnvLowerQuantile = "PAGEVIEWS_LOWER_QUANTILE"
	EnvUpperQuantile = "PAGEVIEWS_UPPER_QUANTILE"
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		CSVPath:       defaultCSVPath,
		OutputDir:     defaultOutputDir,
		LogLevel:      defaultLogLevel,
		LowerQuantile: defaultLowerQuantile,
		UpperQuantile: defaultUpperQuantile,
	}
}

// Load reads configuration from a .env file in the working directory, if any,
// and from environment variables. Variables already set in the environment
// take precedence over the .env file.
func Load() (*Config, error) {
	if cwd, err := os.Getwd(); err == nil {
		path := filepath.Join(cwd, ".env")
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				logger.Warn("ignoring unreadable .env file", "path", path, "error", err)
			}
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.CSVPath = getEnvString(EnvCSVPath, cfg.CSVPath)
	cfg.OutputDir = getEnvString(EnvOutputDir, cfg.OutputDir)
	cfg.LogLevel = strings.ToLower(getEnvString(EnvLogLevel, cfg.LogLevel))

	var err error
	if cfg.LowerQuantile, err = getEnvFloat(EnvLowerQuantile, cfg.LowerQuantile); err != nil {
		return nil, err
	}
	if cfg.UpperQuantile, err = getEnvFloat(EnvUpperQuantile, cfg.UpperQuantile); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the quantile band is usable and paths are set.
func (c *Config) Validate() error {
	if c.LowerQuantile < 0 || c.UpperQuantile > 1 || c.LowerQuantile >= c.UpperQuantile {
		return ErrInvalid.New("quantile band",
			"need 0 <= lower < upper <= 1, got ["+
				strconv.FormatFloat(c.LowerQuantile, 'g', -1, 64)+", "+
				strconv.FormatFloat(c.UpperQuantile, 'g', -1, 64)+"]")
	}
	if c.CSVPath == "" {
		return ErrInvalid.New("csv path", "empty")
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ErrInvalid.Wrap(err, key, strconv.Quote(v))
	}
	return f, nil
}
