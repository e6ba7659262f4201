// ABOUTME: Demo tool configuration loaded from a YAML file with defaults
// ABOUTME: Missing file yields defaults; bad values are rejected at load time

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls the bbdemo binary.
type Config struct {
	// Height is the number of terminal rows reserved for the region.
	Height int `yaml:"height"`
	// Title is drawn on the region's top row.
	Title string `yaml:"title"`
	// Workers is the number of concurrent producers feeding the log feed.
	Workers int `yaml:"workers"`
	// Tick is the delay between task completions per worker.
	Tick Duration `yaml:"tick"`
	// LogLevel filters the scrolling log feed: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Duration wraps time.Duration so YAML configs can use "200ms" syntax,
// which yaml.v3 does not decode into time.Duration on its own.
type Duration time.Duration

// UnmarshalYAML decodes a duration string like "50ms" or "2s".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("config: tick must be a duration string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: bad duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Height:   4,
		Title:    "bottombar demo",
		Workers:  3,
		Tick:     Duration(200 * time.Millisecond),
		LogLevel: "info",
	}
}

// Load reads the YAML config at path, filling unset fields from Default.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges. It mirrors the renderer's own height
// invariant so bad configs fail before any terminal output happens.
func (c Config) Validate() error {
	if c.Height < 1 {
		return fmt.Errorf("config: height must be at least 1, got %d", c.Height)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("config: tick must be positive, got %s", c.Tick.Std())
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps the configured log level name to a slog.Level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
}
