package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/schedule"
	"gopkg.in/yaml.v3"
)

// SourceConfig selects where the dataset is loaded from
type SourceConfig struct {
	Driver string `yaml:"driver" json:"driver"` // builtin, yaml, sqlite, postgres, http
	DSN    string `yaml:"dsn" json:"dsn"`       // File path, connection URL or base URL
}

// Config holds user preferences
type Config struct {
	ConfirmDelete bool `yaml:"confirm_delete" json:"confirm_delete"` // Ask before announcing a deletion

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging

	Source SourceConfig    `yaml:"source" json:"source"`
	Widget schedule.Config `yaml:"widget" json:"widget"`

	path string
}

// Dir returns ~/.ironplan
func Dir() string {
	home, _ := os.UserHomeDir()
	if home == "" {
		return ".ironplan"
	}
	return filepath.Join(home, ".ironplan")
}

// DefaultPath returns ~/.ironplan/config.yaml
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	return &Config{
		ConfirmDelete: true,
		LogLevel:      "INFO",
		LogFile:       filepath.Join(Dir(), "logs", "ironplan.log"),
		LogConsole:    false,
		Source:        SourceConfig{Driver: "builtin"},
		Widget:        schedule.DefaultConfig(),
		path:          DefaultPath(),
	}
}

// Load loads config from ~/.ironplan/config.yaml
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads config from path. A missing file yields the defaults.
// IRONPLAN_* environment variables override whatever the file says.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("IRONPLAN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("IRONPLAN_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("IRONPLAN_LOG_CONSOLE"); v != "" {
		c.LogConsole = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv("IRONPLAN_SOURCE_DRIVER"); v != "" {
		c.Source.Driver = v
	}
	if v := os.Getenv("IRONPLAN_SOURCE_DSN"); v != "" {
		c.Source.DSN = v
	}
}

// normalize replaces widget options a widget cannot use with defaults
func (c *Config) normalize() {
	def := schedule.DefaultConfig()
	if c.Widget.Zoom < 0 {
		c.Widget.Zoom = def.Zoom
	}
	if c.Widget.MaxRecordsPerPage <= 0 {
		c.Widget.MaxRecordsPerPage = def.MaxRecordsPerPage
	}
	if c.Source.Driver == "" {
		c.Source.Driver = "builtin"
	}
}

// Path returns the file the config is saved to
func (c *Config) Path() string {
	if c.path == "" {
		return DefaultPath()
	}
	return c.path
}

// Logger converts the logging settings to a logger configuration
func (c *Config) Logger() logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = logger.ParseLevel(c.LogLevel)
	lc.FilePath = c.LogFile
	lc.Console = c.LogConsole
	return lc
}

// Save writes the config back to Path()
func (c *Config) Save() error {
	path := c.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
