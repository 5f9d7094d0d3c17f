package catalog

import (
	"sort"
	"strings"

	"plugvault/internal/plugin"
)

// GroupByManufacturer buckets records by manufacturer, using the sentinel
// "Unknown Manufacturer" label for records without one. Groups come back
// sorted by label, each group's records sorted by name, both case-sensitive
// ascending.
func GroupByManufacturer(records []*plugin.Record) []plugin.Group {
	buckets := make(map[string][]*plugin.Record)
	for _, rec := range records {
		label := rec.Manufacturer
		if label == "" {
			label = plugin.UnknownManufacturer
		}
		buckets[label] = append(buckets[label], rec)
	}

	groups := make([]plugin.Group, 0, len(buckets))
	for label, recs := range buckets {
		sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
		groups = append(groups, plugin.Group{Manufacturer: label, Records: recs})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Manufacturer < groups[j].Manufacturer })
	return groups
}

// FilterByFormat keeps records whose format set contains the given format.
// The zero format is the identity filter.
func FilterByFormat(records []*plugin.Record, format plugin.Format) []*plugin.Record {
	if format == "" {
		return records
	}
	out := make([]*plugin.Record, 0, len(records))
	for _, rec := range records {
		if rec.HasFormat(format) {
			out = append(out, rec)
		}
	}
	return out
}

// MultiFormat keeps records installed in more than one format.
func MultiFormat(records []*plugin.Record) []*plugin.Record {
	out := make([]*plugin.Record, 0, len(records))
	for _, rec := range records {
		if rec.FormatCount() > 1 {
			out = append(out, rec)
		}
	}
	return out
}

// Search keeps records whose name contains text, case-insensitively. Empty
// text matches everything.
func Search(records []*plugin.Record, text string) []*plugin.Record {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return records
	}
	out := make([]*plugin.Record, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), needle) {
			out = append(out, rec)
		}
	}
	return out
}
