package scanner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"plugvault/internal/logging"
	"plugvault/internal/metadata"
	"plugvault/internal/plugin"
)

// Scanner walks plugin install roots and resolves discovered entries into
// logical plugin records.
type Scanner struct {
	roots     []string
	extractor *metadata.Extractor
	logger    *slog.Logger
}

// New constructs a scanner over the given roots. Nil roots select the
// standard install locations.
func New(roots []string, logger *slog.Logger) *Scanner {
	if roots == nil {
		roots = DefaultRoots()
	}
	logger = logging.NewComponentLogger(logger, "scanner")
	return &Scanner{
		roots:     roots,
		extractor: metadata.NewExtractor(logger),
		logger:    logger,
	}
}

// Roots returns the scan roots in processing order.
func (s *Scanner) Roots() []string {
	out := make([]string, len(s.roots))
	copy(out, s.roots)
	return out
}

// Scan enumerates every root and resolves the complete catalog. Missing
// roots, unreadable directories, and malformed metadata are soft misses;
// the only error Scan returns is context cancellation.
func (s *Scanner) Scan(ctx context.Context) (*plugin.Catalog, error) {
	resolver := newResolver(s.extractor)

	for _, root := range s.roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			// Absent by OS convention, not an error.
			continue
		}
		if err := s.walk(ctx, root, resolver); err != nil {
			return nil, err
		}
	}

	catalog := plugin.NewCatalog(resolver.records, s.roots)
	s.logger.Info("scan complete",
		logging.Int("plugins", len(catalog.Records)),
		logging.Int("roots", len(s.roots)),
	)
	return catalog, nil
}

// walk recursively enumerates dir in lexicographic order. Recognized plugin
// entries are handed to the resolver; bundle directories are not descended
// into.
func (s *Scanner) walk(ctx context.Context, dir string, resolver *resolver) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("unreadable directory", logging.String("path", dir), logging.Error(err))
		return nil
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, entry.Name())
		format, recognized := classify(entry.Name())
		switch {
		case recognized:
			resolver.add(path, format)
		case entry.IsDir():
			if err := s.walk(ctx, path, resolver); err != nil {
				return err
			}
		}
	}
	return nil
}

// classify maps a directory entry name to a plugin format by extension.
// Entries with unrecognized or empty extensions are ignored.
func classify(name string) (plugin.Format, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return "", false
	}
	return plugin.FormatForExtension(ext)
}

// resolver accumulates records and performs the identity merge.
type resolver struct {
	extractor *metadata.Extractor
	records   []*plugin.Record
	byName    map[string]*plugin.Record
}

func newResolver(extractor *metadata.Extractor) *resolver {
	return &resolver{
		extractor: extractor,
		byName:    make(map[string]*plugin.Record),
	}
}

// add merges one discovered entry into the record set. Entries join an
// existing record on an exact case-insensitive name match; metadata
// backfills only fields that are still empty.
func (r *resolver) add(path string, format plugin.Format) {
	name := canonicalName(path, format)
	key := strings.ToLower(name)

	rec, ok := r.byName[key]
	if !ok {
		rec = plugin.NewRecord(name, format, path)
		r.byName[key] = rec
		r.records = append(r.records, rec)
	} else {
		rec.AddFormat(format)
		rec.AddPath(path)
	}

	info := r.extractor.Extract(path, format)
	rec.SetManufacturer(info.Manufacturer)
	rec.SetVersion(info.Version)
}
