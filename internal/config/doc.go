// Package config loads, normalizes, and validates plugvault configuration.
//
// It supplies repository defaults, expands tilde shortcuts in path fields,
// reads the TOML config file, and honours environment fallbacks such as
// PLUGVAULT_BACKUP_DIR. Obtain settings through this package so downstream
// code receives sanitized paths and canonical log formats.
//
// Plugin scan roots are deliberately not configuration: they follow OS
// convention and live in the scanner package.
package config
