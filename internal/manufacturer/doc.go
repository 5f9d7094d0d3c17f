// Package manufacturer canonicalizes raw manufacturer evidence into display
// names.
//
// Raw tokens arrive from three very different sources: reverse-DNS bundle
// identifier fragments ("native-instruments"), explicit metadata fields
// ("FabFilter"), and free-text info strings ("Acme Audio Ltd © 2021 All
// Rights Reserved"). Normalization runs every candidate through the same
// pipeline: boilerplate cleanup, a curated alias table for brands whose
// casing cannot be derived mechanically (iZotope, u-he), then generic
// company-name capitalization.
//
// The alias tables live in aliases.json and are embedded at build time so
// they can be extended without touching the resolution code.
package manufacturer
