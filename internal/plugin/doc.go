// Package plugin defines the resolved data model for the catalog: plugin
// formats, logical plugin records, manufacturer groups, and immutable catalog
// snapshots.
//
// A Record represents one logical plugin regardless of how many packaging
// formats it was installed in. Records are produced wholesale by a scan and
// replaced wholesale by the next one; identity is stable within a single scan
// only. Manufacturer and version follow a first-writer-wins policy: once set
// they are never overwritten by later-discovered data.
package plugin
