// Package catalog provides read-only projections over a resolved plugin set
// and a SQLite-backed scan history.
//
// The projections (grouping, format filters, search) are pure functions over
// a catalog snapshot; they never mutate records. The History store persists
// per-scan summaries so past catalog sizes can be inspected without
// rescanning. It is transient bookkeeping, not an identity scheme: record
// identities remain per-scan.
package catalog
