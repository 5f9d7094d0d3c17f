package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.Paths.LogDir, err = normalizeDir(c.Paths.LogDir, defaultLogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.StateDir, err = normalizeDir(c.Paths.StateDir, defaultStateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.TrashDir, err = normalizeDir(c.Paths.TrashDir, defaultTrashDir); err != nil {
		return fmt.Errorf("paths.trash_dir: %w", err)
	}

	if c.Backup.DestinationDir == "" {
		if value, ok := os.LookupEnv("PLUGVAULT_BACKUP_DIR"); ok {
			c.Backup.DestinationDir = value
		}
	}
	if c.Backup.DestinationDir, err = normalizeDir(c.Backup.DestinationDir, defaultBackupDir); err != nil {
		return fmt.Errorf("backup.destination_dir: %w", err)
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

func normalizeDir(value, fallback string) (string, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	return ExpandPath(value)
}

// ExpandPath resolves a leading tilde against the current user's home
// directory and absolutizes the result.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty path")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
