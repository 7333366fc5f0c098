package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
// It is read-only after Load() returns and thread-safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Suggest  SuggestConfig  `yaml:"suggest"`
	Auth     AuthConfig     `yaml:"auth"`
	Worker   WorkerConfig   `yaml:"worker"`
	Log      LogConfig      `yaml:"log"`
	Coach    CoachConfig    `yaml:"coach"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SuggestConfig contains inbox triage suggestion settings.
type SuggestConfig struct {
	APIKey     string `yaml:"-"` // env-only, never in YAML
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	APIKey string `yaml:"-"` // env-only, never in YAML
}

// WorkerConfig contains background worker settings.
type WorkerConfig struct {
	BackupInterval Duration `yaml:"backup_interval"`
	BackupDir      string   `yaml:"backup_dir"`
	BackupKeep     int      `yaml:"backup_keep"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CoachConfig tunes the coaching signals.
type CoachConfig struct {
	IgnoredGoalDays int `yaml:"ignored_goal_days"`
	HeatmapDays     int `yaml:"heatmap_days"`
}

// Duration is a wrapper around time.Duration that supports YAML string parsing.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Load loads configuration with precedence: defaults → YAML file → env vars.
// Returns an immutable Config suitable for concurrent read access.
func Load() (*Config, error) {
	cfg := newDefaults()

	configPath := getEnv("ASTRAL_CONFIG_PATH", "config/astral.yaml")

	// Missing file is not an error; defaults apply.
	if err := loadYAMLFile(cfg, configPath); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadLocal loads configuration for offline CLI commands. Same precedence
// as Load but skips required-key validation; local commands never serve
// requests.
func LoadLocal() (*Config, error) {
	cfg := newDefaults()

	configPath := getEnv("ASTRAL_CONFIG_PATH", "config/astral.yaml")
	if err := loadYAMLFile(cfg, configPath); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific path.
// Used for testing and explicit config paths.
func LoadFromFile(path string) (*Config, error) {
	cfg := newDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newDefaults returns a Config with all default values.
func newDefaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     Duration(30 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(15 * time.Second),
		},
		Database: DatabaseConfig{
			Path: "data/astral.db",
		},
		Suggest: SuggestConfig{
			Model:      "text-embedding-3-small",
			Dimensions: 1536,
		},
		Worker: WorkerConfig{
			BackupInterval: Duration(1 * time.Hour),
			BackupDir:      "data/backups",
			BackupKeep:     24,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Coach: CoachConfig{
			IgnoredGoalDays: 7,
			HeatmapDays:     30,
		},
	}
}

// loadYAMLFile loads configuration from a YAML file if it exists.
func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Only non-empty env vars override config values.
func applyEnvOverrides(cfg *Config) {
	// Server
	if v := os.Getenv("ASTRAL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ASTRAL_READ_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ReadTimeout = Duration(d)
		}
	}
	if v := os.Getenv("ASTRAL_WRITE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.WriteTimeout = Duration(d)
		}
	}
	if v := os.Getenv("ASTRAL_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ShutdownTimeout = Duration(d)
		}
	}

	// Database
	if v := os.Getenv("ASTRAL_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}

	// Suggestions (OPENAI_API_KEY is industry convention)
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Suggest.APIKey = v
	}
	if v := os.Getenv("ASTRAL_SUGGEST_MODEL"); v != "" {
		cfg.Suggest.Model = v
	}

	// Auth
	if v := os.Getenv("ASTRAL_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}

	// Worker
	if v := os.Getenv("ASTRAL_BACKUP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Worker.BackupInterval = Duration(d)
		}
	}
	if v := os.Getenv("ASTRAL_BACKUP_DIR"); v != "" {
		cfg.Worker.BackupDir = v
	}
	if v := os.Getenv("ASTRAL_BACKUP_KEEP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Worker.BackupKeep = n
		}
	}

	// Log
	if v := os.Getenv("ASTRAL_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ASTRAL_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	// Coach
	if v := os.Getenv("ASTRAL_IGNORED_GOAL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Coach.IgnoredGoalDays = n
		}
	}
	if v := os.Getenv("ASTRAL_HEATMAP_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Coach.HeatmapDays = n
		}
	}
}

// validate checks that required configuration values are set.
// In dev mode (ASTRAL_DEV_MODE=true), API key validation is skipped.
func (c *Config) validate() error {
	if os.Getenv("ASTRAL_DEV_MODE") == "true" {
		return nil
	}

	if c.Auth.APIKey == "" {
		return errors.New("ASTRAL_API_KEY is required")
	}
	if c.Coach.IgnoredGoalDays <= 0 {
		return errors.New("coach.ignored_goal_days must be positive")
	}
	if c.Coach.HeatmapDays <= 0 {
		return errors.New("coach.heatmap_days must be positive")
	}
	return nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
