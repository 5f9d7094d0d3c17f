// Package scanner discovers installed audio plugins and reconciles them into
// one logical record per plugin.
//
// A scan walks the fixed set of install roots, classifies every entry by
// extension, derives a canonical display name, and merges entries that name
// the same logical plugin across packaging formats: the format set is
// unioned, paths are accumulated, and manufacturer/version metadata is
// backfilled first-writer-wins from whichever entry yields it first.
//
// Directory entries are processed in lexicographic order and roots in their
// declared order, so a scan over an unchanged tree is deterministic even
// though the underlying filesystem makes no ordering promise.
//
// The Service wrapper runs scans on a background goroutine, allows exactly
// one scan in flight, and publishes each finished catalog by atomic
// replacement so consumers never observe a partial one.
package scanner
