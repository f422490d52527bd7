package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.MaxConcurrency != 0 {
		t.Errorf("MaxConcurrency = %d, want 0", cfg.MaxConcurrency)
	}
	if cfg.Profiles == nil {
		t.Error("Profiles map must not be nil")
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestLoadConfig(t *testing.T) {
	content := `
log_level: debug
max_concurrency: 4
profiles:
  plans:
    dirs: ["docs/plans", "archive/plans"]
    globs: ["plan-*"]
    extensions: [".md", ".yaml"]
    type: f
  workspaces:
    regexps: ["^ws-\\d+$"]
    type: d
`
	path := filepath.Join(t.TempDir(), "pathfind.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.MaxConcurrency != 4 {
		t.Errorf("MaxConcurrency = %d, want 4", cfg.MaxConcurrency)
	}

	plans, err := cfg.Profile("plans")
	if err != nil {
		t.Fatalf("Profile(plans): %v", err)
	}
	if len(plans.Dirs) != 2 || plans.Dirs[0] != "docs/plans" {
		t.Errorf("plans.Dirs = %v", plans.Dirs)
	}
	if len(plans.Globs) != 1 || plans.Globs[0] != "plan-*" {
		t.Errorf("plans.Globs = %v", plans.Globs)
	}
	if plans.Type != "f" {
		t.Errorf("plans.Type = %q, want f", plans.Type)
	}

	if _, err := cfg.Profile("missing"); err == nil {
		t.Error("unknown profile must return an error")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("profiles: [not: a map"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed yaml must return an error")
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("max_concurrency: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
	if cfg.MaxConcurrency != 2 {
		t.Errorf("MaxConcurrency = %d, want 2", cfg.MaxConcurrency)
	}
}
