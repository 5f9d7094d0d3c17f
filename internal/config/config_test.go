package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("exists = true for missing file")
	}
	if path == "" {
		t.Fatal("resolved path empty")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Paths.StateDir == "" || strings.HasPrefix(cfg.Paths.StateDir, "~") {
		t.Fatalf("state dir not expanded: %q", cfg.Paths.StateDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
state_dir = "` + filepath.Join(dir, "state") + `"

[backup]
destination_dir = "` + filepath.Join(dir, "backups") + `"

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("exists = false for present file")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("overrides not applied: %+v", cfg.Logging)
	}
	if cfg.Backup.DestinationDir != filepath.Join(dir, "backups") {
		t.Fatalf("backup dir = %q", cfg.Backup.DestinationDir)
	}
	if cfg.HistoryDBPath() != filepath.Join(dir, "state", "history.db") {
		t.Fatalf("history db = %q", cfg.HistoryDBPath())
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for bad log format")
	}
}

func TestBackupDirEnvFallback(t *testing.T) {
	override := filepath.Join(t.TempDir(), "env-backups")
	t.Setenv("PLUGVAULT_BACKUP_DIR", override)

	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backup.DestinationDir != override {
		t.Fatalf("backup dir = %q, want %q", cfg.Backup.DestinationDir, override)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[backup]") {
		t.Fatal("sample config missing backup section")
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.StateDir = filepath.Join(dir, "state")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	for _, d := range []string{cfg.Paths.LogDir, cfg.Paths.StateDir} {
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			t.Fatalf("directory %s not created", d)
		}
	}
}
