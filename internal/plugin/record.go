package plugin

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Record is one logical plugin resolved from one or more on-disk entries.
// The ID is assigned once at creation and never reused; it is stable for the
// lifetime of a single scan only.
type Record struct {
	ID           string
	Name         string
	Manufacturer string
	Version      string
	Selected     bool

	formats map[Format]struct{}
	paths   []string
}

// NewRecord creates a record for a freshly discovered plugin entry.
func NewRecord(name string, format Format, path string) *Record {
	rec := &Record{
		ID:      uuid.NewString(),
		Name:    name,
		formats: make(map[Format]struct{}, 2),
	}
	rec.AddFormat(format)
	rec.AddPath(path)
	return rec
}

// AddFormat unions the format into the record's format set.
func (r *Record) AddFormat(format Format) {
	if r.formats == nil {
		r.formats = make(map[Format]struct{}, 2)
	}
	r.formats[format] = struct{}{}
}

// HasFormat reports whether the record was discovered in the given format.
func (r *Record) HasFormat(format Format) bool {
	_, ok := r.formats[format]
	return ok
}

// FormatCount returns the number of distinct formats backing the record.
func (r *Record) FormatCount() int {
	return len(r.formats)
}

// Formats returns the record's formats in canonical display order.
func (r *Record) Formats() []Format {
	out := make([]Format, 0, len(r.formats))
	for _, f := range AllFormats() {
		if _, ok := r.formats[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// FormatLabel renders the format set as a comma-separated display string.
func (r *Record) FormatLabel() string {
	formats := r.Formats()
	parts := make([]string, 0, len(formats))
	for _, f := range formats {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ", ")
}

// AddPath appends a backing path unless an identical path is already present.
// Order of first insertion is preserved.
func (r *Record) AddPath(path string) {
	for _, existing := range r.paths {
		if existing == path {
			return
		}
	}
	r.paths = append(r.paths, path)
}

// Paths returns the backing filesystem locations in insertion order.
func (r *Record) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// PathForFormat returns the first backing path whose extension classifies to
// the given format.
func (r *Record) PathForFormat(format Format) (string, bool) {
	for _, p := range r.paths {
		if f, ok := FormatForExtension(filepath.Ext(p)); ok && f == format {
			return p, true
		}
	}
	return "", false
}

// SetManufacturer backfills the manufacturer if it is currently unset.
// First-writer-wins: a non-empty value is never overwritten.
func (r *Record) SetManufacturer(manufacturer string) {
	if r.Manufacturer == "" && manufacturer != "" {
		r.Manufacturer = manufacturer
	}
}

// SetVersion backfills the version if it is currently unset.
func (r *Record) SetVersion(version string) {
	if r.Version == "" && version != "" {
		r.Version = version
	}
}

// TotalSize sums the on-disk size of every backing path. Bundles are walked
// recursively; unreadable entries contribute zero rather than failing.
func (r *Record) TotalSize() int64 {
	var total int64
	for _, p := range r.paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			total += info.Size()
			continue
		}
		_ = filepath.WalkDir(p, func(_ string, entry fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if entry.Type().IsRegular() {
				if fi, err := entry.Info(); err == nil {
					total += fi.Size()
				}
			}
			return nil
		})
	}
	return total
}

// Clone returns a deep copy of the record. Snapshots hand clones to callers
// so published catalogs stay immutable.
func (r *Record) Clone() *Record {
	cp := &Record{
		ID:           r.ID,
		Name:         r.Name,
		Manufacturer: r.Manufacturer,
		Version:      r.Version,
		Selected:     r.Selected,
		formats:      make(map[Format]struct{}, len(r.formats)),
		paths:        make([]string, len(r.paths)),
	}
	for f := range r.formats {
		cp.formats[f] = struct{}{}
	}
	copy(cp.paths, r.paths)
	return cp
}
