// Package testsupport builds plugin fixtures and configs for tests: fake
// bundles with metadata containers, flat legacy files, and temp-dir scoped
// configuration.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"plugvault/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.TrashDir = filepath.Join(base, "trash")
	cfg.Backup.DestinationDir = filepath.Join(base, "backups")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// Bucket creates (or reuses) a format bucket directory under root.
func Bucket(t testing.TB, root, bucket string) string {
	t.Helper()
	dir := filepath.Join(root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}
