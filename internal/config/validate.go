package config

import "fmt"

// Validate checks invariants the rest of the tool relies on.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Paths.StateDir == c.Paths.TrashDir {
		return fmt.Errorf("paths.trash_dir must not equal paths.state_dir")
	}
	return nil
}
