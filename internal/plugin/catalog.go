package plugin

import (
	"sort"
	"strings"
	"time"
)

// UnknownManufacturer is the bucket label for records without a resolved
// manufacturer.
const UnknownManufacturer = "Unknown Manufacturer"

// Group is a read-only projection of the catalog: one manufacturer label and
// the records attributed to it, sorted by record name.
type Group struct {
	Manufacturer string
	Records      []*Record
}

// Catalog is one complete, immutable scan result. A scan builds the whole
// catalog off to the side and publishes it by replacement; consumers never
// observe a partially built one.
type Catalog struct {
	Records   []*Record
	ScannedAt time.Time
	Roots     []string
}

// NewCatalog sorts the records by name (case-sensitive ascending) and wraps
// them in a snapshot.
func NewCatalog(records []*Record, roots []string) *Catalog {
	sorted := make([]*Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &Catalog{
		Records:   sorted,
		ScannedAt: time.Now(),
		Roots:     roots,
	}
}

// FormatCounts tallies how many records carry each format.
func (c *Catalog) FormatCounts() map[Format]int {
	counts := make(map[Format]int, 4)
	for _, rec := range c.Records {
		for _, f := range rec.Formats() {
			counts[f]++
		}
	}
	return counts
}

// Find returns the first record whose name matches exactly,
// case-insensitively.
func (c *Catalog) Find(name string) (*Record, bool) {
	for _, rec := range c.Records {
		if strings.EqualFold(rec.Name, name) {
			return rec, true
		}
	}
	return nil, false
}
