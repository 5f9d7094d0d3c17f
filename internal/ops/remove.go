package ops

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"plugvault/internal/fileutil"
	"plugvault/internal/logging"
	"plugvault/internal/plugin"
)

// Mode selects how removal disposes of plugin files.
type Mode int

const (
	// ModeTrash moves plugins into the trash directory.
	ModeTrash Mode = iota
	// ModePermanent deletes plugins outright.
	ModePermanent
)

func (m Mode) String() string {
	if m == ModePermanent {
		return "permanent"
	}
	return "trash"
}

// ProgressFunc receives fractional progress after each processed record.
type ProgressFunc func(processed, total int, rec *plugin.Record)

// ItemResult is the per-record outcome of an executor run.
type ItemResult struct {
	Record *plugin.Record
	Err    error
}

// RemoveResult aggregates a removal run.
type RemoveResult struct {
	Items []ItemResult
}

// Succeeded reports whether every record was fully processed.
func (r RemoveResult) Succeeded() bool {
	for _, item := range r.Items {
		if item.Err != nil {
			return false
		}
	}
	return true
}

// Remover deletes or trashes plugin files.
type Remover struct {
	trashDir string
	logger   *slog.Logger
}

// NewRemover constructs a remover that trashes into trashDir.
func NewRemover(trashDir string, logger *slog.Logger) *Remover {
	return &Remover{
		trashDir: trashDir,
		logger:   logging.NewComponentLogger(logger, "remove"),
	}
}

// Remove processes every path of every record sequentially. A single path
// failure marks that record failed but processing continues; the aggregate
// result reports partial failures via Succeeded.
func (r *Remover) Remove(ctx context.Context, records []*plugin.Record, mode Mode, progress ProgressFunc) RemoveResult {
	result := RemoveResult{Items: make([]ItemResult, 0, len(records))}

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			result.Items = append(result.Items, ItemResult{Record: rec, Err: err})
			continue
		}

		var firstErr error
		for _, path := range rec.Paths() {
			if err := r.removePath(path, mode); err != nil {
				r.logger.Warn("remove path failed",
					logging.String("plugin", rec.Name),
					logging.String("path", path),
					logging.Error(err),
				)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		result.Items = append(result.Items, ItemResult{Record: rec, Err: firstErr})

		if progress != nil {
			progress(i+1, len(records), rec)
		}
	}
	return result
}

func (r *Remover) removePath(path string, mode Mode) error {
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if mode == ModePermanent {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("delete %s: %w", path, err)
		}
		return nil
	}

	if r.trashDir == "" {
		return errors.New("no trash directory configured")
	}
	if err := os.MkdirAll(r.trashDir, 0o755); err != nil {
		return fmt.Errorf("ensure trash directory: %w", err)
	}
	target := fileutil.AvailablePath(filepath.Join(r.trashDir, filepath.Base(path)))
	if err := fileutil.Move(path, target); err != nil {
		return fmt.Errorf("trash %s: %w", path, err)
	}
	return nil
}
