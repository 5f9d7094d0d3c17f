// Package ops executes removal and backup of resolved plugins.
//
// Both executors process records strictly one at a time and report
// fractional progress after each: backups depend on sequential visibility of
// earlier copies for collision-suffix naming, and removals keep the failure
// accounting simple. A failing path marks its record (and the aggregate) as
// failed but never stops the remaining work; the only fatal condition is an
// unusable backup destination, which aborts that invocation before anything
// is copied.
package ops
