package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"plugvault/internal/plugin"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped on schema changes; users delete the history
// database to adopt a new schema.
const schemaVersion = 1

// ErrSchemaMismatch indicates the history database was written by a
// different plugvault version.
var ErrSchemaMismatch = errors.New("history schema version mismatch")

// History persists per-scan summaries in SQLite.
type History struct {
	db   *sql.DB
	path string
}

// ScanSummary is one row of scan history.
type ScanSummary struct {
	ID        int64
	ScannedAt time.Time
	Total     int
	ByFormat  map[plugin.Format]int
}

// OpenHistory initializes or connects to the scan-history database.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	h := &History{db: db, path: path}
	if err := h.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return h, nil
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}

func (h *History) initSchema(ctx context.Context) error {
	var tableExists int
	err := h.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return h.createSchema(ctx)
	}

	var version int
	if err := h.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to rebuild)",
			ErrSchemaMismatch, version, schemaVersion, h.path)
	}
	return nil
}

func (h *History) createSchema(ctx context.Context) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return tx.Commit()
}

// RecordScan persists one completed catalog as a history row plus one row
// per resolved plugin.
func (h *History) RecordScan(ctx context.Context, cat *plugin.Catalog) (int64, error) {
	counts := cat.FormatCounts()

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin scan tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO scans (scanned_at, total, vst2_count, vst3_count, au_count, clap_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		cat.ScannedAt.UTC().Format(time.RFC3339),
		len(cat.Records),
		counts[plugin.FormatVST2],
		counts[plugin.FormatVST3],
		counts[plugin.FormatAU],
		counts[plugin.FormatCLAP],
	)
	if err != nil {
		return 0, fmt.Errorf("insert scan row: %w", err)
	}
	scanID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("scan row id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO scan_plugins (scan_id, name, manufacturer, version, formats, paths)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare plugin insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range cat.Records {
		if _, err := stmt.ExecContext(ctx,
			scanID, rec.Name, rec.Manufacturer, rec.Version,
			rec.FormatLabel(), strings.Join(rec.Paths(), "\n"),
		); err != nil {
			return 0, fmt.Errorf("insert plugin row %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit scan: %w", err)
	}
	return scanID, nil
}

// ListScans returns the most recent scan summaries, newest first. A limit of
// zero returns everything.
func (h *History) ListScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	query := `SELECT id, scanned_at, total, vst2_count, vst3_count, au_count, clap_count
	          FROM scans ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	var summaries []ScanSummary
	for rows.Next() {
		var (
			summary   ScanSummary
			scannedAt string
			vst2      int
			vst3      int
			au        int
			clap      int
		)
		if err := rows.Scan(&summary.ID, &scannedAt, &summary.Total, &vst2, &vst3, &au, &clap); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, scannedAt); err == nil {
			summary.ScannedAt = ts
		}
		summary.ByFormat = map[plugin.Format]int{
			plugin.FormatVST2: vst2,
			plugin.FormatVST3: vst3,
			plugin.FormatAU:   au,
			plugin.FormatCLAP: clap,
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
