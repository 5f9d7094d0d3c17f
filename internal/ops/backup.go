package ops

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"plugvault/internal/fileutil"
	"plugvault/internal/logging"
	"plugvault/internal/plugin"
	"plugvault/internal/report"
)

// ErrDestination indicates the backup root could not be created; the whole
// invocation is abandoned and no partial manifest is written.
var ErrDestination = errors.New("backup destination unavailable")

// backupDirFormat names the timestamped directory created per backup run.
const backupDirFormat = "PluginBackup_20060102_150405"

// BackupResult aggregates a backup run.
type BackupResult struct {
	// Dir is the timestamped backup directory.
	Dir string
	// ManifestPath is the manifest written inside Dir.
	ManifestPath string
	Items        []ItemResult
}

// Succeeded reports whether every record was fully backed up.
func (r BackupResult) Succeeded() bool {
	for _, item := range r.Items {
		if item.Err != nil {
			return false
		}
	}
	return true
}

// Backuper copies plugins into timestamped backup sets.
type Backuper struct {
	logger *slog.Logger
	// now is swappable for tests that need a stable directory name.
	now func() time.Time
}

// NewBackuper constructs a backup executor.
func NewBackuper(logger *slog.Logger) *Backuper {
	return &Backuper{
		logger: logging.NewComponentLogger(logger, "backup"),
		now:    time.Now,
	}
}

// Backup copies every path of every record into a fresh timestamped
// directory under destDir, one subdirectory per format bucket. Destination
// filename collisions get a numeric suffix before the extension; an
// existing destination file is never overwritten. A manifest listing every
// copied item per format is written last.
func (b *Backuper) Backup(ctx context.Context, records []*plugin.Record, destDir string, progress ProgressFunc) (BackupResult, error) {
	backupDir := filepath.Join(destDir, b.now().Format(backupDirFormat))
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return BackupResult{}, fmt.Errorf("%w: create %s: %v", ErrDestination, backupDir, err)
	}

	result := BackupResult{
		Dir:   backupDir,
		Items: make([]ItemResult, 0, len(records)),
	}
	var manifest []report.ManifestEntry

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			result.Items = append(result.Items, ItemResult{Record: rec, Err: err})
			continue
		}

		var firstErr error
		for _, path := range rec.Paths() {
			entry, err := b.backupPath(backupDir, rec, path)
			if err != nil {
				b.logger.Warn("backup path failed",
					logging.String("plugin", rec.Name),
					logging.String("path", path),
					logging.Error(err),
				)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			manifest = append(manifest, entry)
		}
		result.Items = append(result.Items, ItemResult{Record: rec, Err: firstErr})

		if progress != nil {
			progress(i+1, len(records), rec)
		}
	}

	manifestPath := filepath.Join(backupDir, "manifest.txt")
	if err := os.WriteFile(manifestPath, []byte(report.RenderManifest(manifest)), 0o644); err != nil {
		return result, fmt.Errorf("write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

func (b *Backuper) backupPath(backupDir string, rec *plugin.Record, path string) (report.ManifestEntry, error) {
	format, ok := plugin.FormatForExtension(filepath.Ext(path))
	if !ok {
		return report.ManifestEntry{}, fmt.Errorf("unclassifiable path %s", path)
	}

	bucketDir := filepath.Join(backupDir, format.Bucket())
	if err := os.MkdirAll(bucketDir, 0o755); err != nil {
		return report.ManifestEntry{}, fmt.Errorf("create bucket %s: %w", bucketDir, err)
	}

	target := fileutil.AvailablePath(filepath.Join(bucketDir, filepath.Base(path)))
	if err := fileutil.CopyEntry(path, target); err != nil {
		return report.ManifestEntry{}, fmt.Errorf("copy %s: %w", path, err)
	}

	return report.ManifestEntry{
		Format:      format,
		DisplayName: rec.Name,
		Filename:    filepath.Base(target),
	}, nil
}
