// Package fileutil provides bundle-aware filesystem helpers for the backup
// and removal executors. Plugins are either flat files or directory bundles,
// so every operation here handles both.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// CopyFile streams src to dst, creating dst with the given mode.
func CopyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// CopyEntry copies a plugin entry to dst: a flat file is copied directly, a
// bundle directory is copied recursively with file modes preserved.
func CopyEntry(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return CopyFile(src, dst, info.Mode().Perm())
	}
	return copyTree(src, dst)
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if entry.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !entry.Type().IsRegular() {
			// Symlinks inside bundles are rare; recreate them as links.
			if entry.Type()&fs.ModeSymlink != 0 {
				dest, err := os.Readlink(path)
				if err != nil {
					return err
				}
				return os.Symlink(dest, target)
			}
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		return CopyFile(path, target, info.Mode().Perm())
	})
}

// Move renames src to dst, falling back to copy+delete for cross-device
// moves.
func Move(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := CopyEntry(src, dst); err != nil {
			return fmt.Errorf("cross-device copy: %w", err)
		}
		if err := os.RemoveAll(src); err != nil {
			return fmt.Errorf("remove source after copy: %w", err)
		}
		return nil
	}
	return renameErr
}

// AvailablePath returns path if nothing exists there, otherwise the first
// collision-free variant with a numeric suffix before the extension:
// "name.ext", "name_1.ext", "name_2.ext", ...
func AvailablePath(path string) string {
	if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
		return path
	}
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Lstat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
	}
}
