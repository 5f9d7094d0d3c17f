// Package report renders the plain-text catalog export and the backup
// manifest. Both share the same layout: one section per plugin format with
// an upper-cased heading, a count in parentheses, and an underline of '='
// characters.
package report

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"plugvault/internal/plugin"
)

// RenderCatalog renders the full catalog export. Every record appears under
// each format heading it was discovered in, with the locations backing that
// format.
func RenderCatalog(records []*plugin.Record) string {
	var b strings.Builder
	b.WriteString("Installed Audio Plugins\n\n")

	for _, format := range plugin.AllFormats() {
		var section []*plugin.Record
		for _, rec := range records {
			if rec.HasFormat(format) {
				section = append(section, rec)
			}
		}
		if len(section) == 0 {
			continue
		}

		writeHeading(&b, format, len(section))
		for _, rec := range section {
			b.WriteString(rec.Name)
			b.WriteByte('\n')
			if rec.Manufacturer != "" {
				fmt.Fprintf(&b, "  Manufacturer: %s\n", rec.Manufacturer)
			}
			if rec.Version != "" {
				fmt.Fprintf(&b, "  Version: %s\n", rec.Version)
			}
			for _, path := range formatPaths(rec, format) {
				fmt.Fprintf(&b, "  Size: %s\n", humanize.IBytes(uint64(entrySize(path))))
				fmt.Fprintf(&b, "  Location: %s\n", path)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ManifestEntry is one backed-up item in the manifest.
type ManifestEntry struct {
	Format      plugin.Format
	DisplayName string
	Filename    string
}

// RenderManifest renders the backup manifest: per format, each item's
// display name and its final on-disk filename (which may carry a collision
// suffix).
func RenderManifest(entries []ManifestEntry) string {
	var b strings.Builder
	b.WriteString("Plugin Backup Manifest\n\n")

	for _, format := range plugin.AllFormats() {
		var section []ManifestEntry
		for _, entry := range entries {
			if entry.Format == format {
				section = append(section, entry)
			}
		}
		if len(section) == 0 {
			continue
		}

		writeHeading(&b, format, len(section))
		for _, entry := range section {
			fmt.Fprintf(&b, "%s -> %s\n", entry.DisplayName, entry.Filename)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeHeading(b *strings.Builder, format plugin.Format, count int) {
	heading := fmt.Sprintf("%s (%d)", strings.ToUpper(format.String()), count)
	b.WriteString(heading)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len(heading)))
	b.WriteByte('\n')
}

func formatPaths(rec *plugin.Record, format plugin.Format) []string {
	var out []string
	for _, path := range rec.Paths() {
		if f, ok := plugin.FormatForExtension(filepath.Ext(path)); ok && f == format {
			out = append(out, path)
		}
	}
	return out
}

// entrySize returns the on-disk size of a file or bundle. Unreadable
// entries count as zero.
func entrySize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}
	var total int64
	_ = filepath.WalkDir(path, func(_ string, entry fs.DirEntry, err error) error {
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
	return total
}
