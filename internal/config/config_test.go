package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// Helper to clear all config-related env vars
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"ASTRAL_PORT",
		"ASTRAL_READ_TIMEOUT",
		"ASTRAL_WRITE_TIMEOUT",
		"ASTRAL_SHUTDOWN_TIMEOUT",
		"ASTRAL_DB_PATH",
		"OPENAI_API_KEY",
		"ASTRAL_SUGGEST_MODEL",
		"ASTRAL_API_KEY",
		"ASTRAL_BACKUP_INTERVAL",
		"ASTRAL_BACKUP_DIR",
		"ASTRAL_BACKUP_KEEP",
		"ASTRAL_LOG_LEVEL",
		"ASTRAL_LOG_FORMAT",
		"ASTRAL_IGNORED_GOAL_DAYS",
		"ASTRAL_HEATMAP_DAYS",
		"ASTRAL_CONFIG_PATH",
		"ASTRAL_DEV_MODE",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func setDevModeEnv(t *testing.T) {
	t.Helper()
	os.Setenv("ASTRAL_DEV_MODE", "true")
}

// dur converts Duration to time.Duration for comparison
func dur(d Duration) time.Duration {
	return time.Duration(d)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	setDevModeEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if dur(cfg.Server.ReadTimeout) != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
	if dur(cfg.Server.ShutdownTimeout) != 15*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 15s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Path != "data/astral.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "data/astral.db")
	}
	if cfg.Suggest.Model != "text-embedding-3-small" {
		t.Errorf("Suggest.Model = %q, want %q", cfg.Suggest.Model, "text-embedding-3-small")
	}
	if dur(cfg.Worker.BackupInterval) != 1*time.Hour {
		t.Errorf("Worker.BackupInterval = %v, want 1h", cfg.Worker.BackupInterval)
	}
	if cfg.Worker.BackupKeep != 24 {
		t.Errorf("Worker.BackupKeep = %d, want 24", cfg.Worker.BackupKeep)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
	if cfg.Coach.IgnoredGoalDays != 7 {
		t.Errorf("Coach.IgnoredGoalDays = %d, want 7", cfg.Coach.IgnoredGoalDays)
	}
	if cfg.Coach.HeatmapDays != 30 {
		t.Errorf("Coach.HeatmapDays = %d, want 30", cfg.Coach.HeatmapDays)
	}
}

func TestLoad_ValidationFailsWithoutAPIKey(t *testing.T) {
	clearEnv(t)
	// No ASTRAL_DEV_MODE set, so validation should fail

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error when API key missing, got nil")
	}
}

func TestLoad_ValidationPassesWithAPIKey(t *testing.T) {
	clearEnv(t)
	os.Setenv("ASTRAL_API_KEY", "test-api-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.APIKey != "test-api-key" {
		t.Errorf("Auth.APIKey = %q, want %q", cfg.Auth.APIKey, "test-api-key")
	}
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	clearEnv(t)
	setDevModeEnv(t)

	os.Setenv("ASTRAL_PORT", "9090")
	os.Setenv("ASTRAL_DB_PATH", "/custom/path.db")
	os.Setenv("ASTRAL_LOG_LEVEL", "debug")
	os.Setenv("ASTRAL_BACKUP_INTERVAL", "2h")
	os.Setenv("ASTRAL_IGNORED_GOAL_DAYS", "14")
	os.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Path != "/custom/path.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/custom/path.db")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if dur(cfg.Worker.BackupInterval) != 2*time.Hour {
		t.Errorf("Worker.BackupInterval = %v, want 2h", cfg.Worker.BackupInterval)
	}
	if cfg.Coach.IgnoredGoalDays != 14 {
		t.Errorf("Coach.IgnoredGoalDays = %d, want 14", cfg.Coach.IgnoredGoalDays)
	}
	if cfg.Suggest.APIKey != "sk-test" {
		t.Errorf("Suggest.APIKey = %q, want %q", cfg.Suggest.APIKey, "sk-test")
	}
}

func TestLoad_EmptyEnvVarDoesNotOverride(t *testing.T) {
	clearEnv(t)
	setDevModeEnv(t)
	os.Setenv("ASTRAL_PORT", "") // Empty string

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (default)", cfg.Server.Port)
	}
}

func TestLoadFromFile_ValidYAML(t *testing.T) {
	clearEnv(t)
	setDevModeEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	yamlContent := `
server:
  port: 9999
  read_timeout: 60s
database:
  path: /yaml/path.db
coach:
  ignored_goal_days: 10
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if dur(cfg.Server.ReadTimeout) != 60*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 60s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.Path != "/yaml/path.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/yaml/path.db")
	}
	if cfg.Coach.IgnoredGoalDays != 10 {
		t.Errorf("Coach.IgnoredGoalDays = %d, want 10", cfg.Coach.IgnoredGoalDays)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	setDevModeEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	yamlContent := `
server:
  port: 9000
log:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("ASTRAL_CONFIG_PATH", configPath)
	os.Setenv("ASTRAL_PORT", "8888") // Should override YAML

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888 (env override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q (from YAML)", cfg.Log.Level, "warn")
	}
}

func TestLoad_MissingConfigFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	setDevModeEnv(t)
	os.Setenv("ASTRAL_CONFIG_PATH", "/nonexistent/path/config.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file, got: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (default)", cfg.Server.Port)
	}
}

func TestLoadFromFile_InvalidDuration(t *testing.T) {
	clearEnv(t)
	setDevModeEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad_duration.yaml")
	yamlContent := `
server:
  read_timeout: not_a_duration
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadFromFile(configPath)
	if err == nil {
		t.Error("LoadFromFile() expected error for invalid duration, got nil")
	}
}

func TestLoadLocal_SkipsValidation(t *testing.T) {
	clearEnv(t)
	// No dev mode and no API key; a server Load would fail here.

	cfg, err := LoadLocal()
	if err != nil {
		t.Fatalf("LoadLocal() error = %v", err)
	}
	if cfg.Auth.APIKey != "" {
		t.Errorf("Auth.APIKey = %q, want empty", cfg.Auth.APIKey)
	}
}

func TestConfig_SecretsNotInYAML(t *testing.T) {
	cfg := &Config{
		Suggest: SuggestConfig{APIKey: "secret-key", Model: "test"},
		Auth:    AuthConfig{APIKey: "another-secret"},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	yamlStr := string(data)
	if strings.Contains(yamlStr, "secret-key") {
		t.Errorf("YAML contains Suggest.APIKey secret: %s", yamlStr)
	}
	if strings.Contains(yamlStr, "another-secret") {
		t.Errorf("YAML contains Auth.APIKey secret: %s", yamlStr)
	}
}

func TestLoad_InvalidCoachWindowFailsValidation(t *testing.T) {
	clearEnv(t)
	os.Setenv("ASTRAL_API_KEY", "test-api-key")
	os.Setenv("ASTRAL_IGNORED_GOAL_DAYS", "0")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for non-positive coach window, got nil")
	}
}
