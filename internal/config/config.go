package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the harness settings.
type Config struct {
	Inputs      string     `yaml:"inputs"`
	PersistPath string     `yaml:"persist_path"`
	LogLevel    string     `yaml:"log_level"`
	HTTP        HTTPConfig `yaml:"http"`

	Observability ObservabilityConfig `yaml:"observability"`
}

// HTTPConfig holds the serve command settings.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
	// RateLimit is requests per second across all API routes, 0 disables.
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
}

// ObservabilityConfig holds the tracing settings.
type ObservabilityConfig struct {
	// TraceExporter is none or stdout.
	TraceExporter   string  `yaml:"trace_exporter"`
	TraceSampleRate float64 `yaml:"trace_sample_rate"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Inputs:      "./inputs",
		PersistPath: "./data",
		LogLevel:    "info",
		HTTP: HTTPConfig{
			Addr:      ":8080",
			RateLimit: 20,
			Burst:     40,
		},
		Observability: ObservabilityConfig{
			TraceExporter:   "none",
			TraceSampleRate: 1,
		},
	}
}

// LoadConfig reads filename over the defaults, then applies environment
// overrides. A missing file is not an error. A .env file in the working
// directory is loaded first when present.
func LoadConfig(filename string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	if v := os.Getenv("ADVENT_INPUTS"); v != "" {
		cfg.Inputs = v
	}
	if v := os.Getenv("ADVENT_PERSIST"); v != "" {
		cfg.PersistPath = v
	}
	if v := os.Getenv("ADVENT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ADVENT_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("ADVENT_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("ADVENT_RATE_LIMIT: %w", err)
		}
		cfg.HTTP.RateLimit = f
	}
	if v := os.Getenv("ADVENT_TRACE_EXPORTER"); v != "" {
		cfg.Observability.TraceExporter = v
	}
	if v := os.Getenv("ADVENT_TRACE_SAMPLE_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("ADVENT_TRACE_SAMPLE_RATE: %w", err)
		}
		cfg.Observability.TraceSampleRate = f
	}
	return cfg, nil
}
