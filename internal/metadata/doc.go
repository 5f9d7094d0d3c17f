// Package metadata extracts best-effort manufacturer and version information
// from plugin bundles and files.
//
// Plugin metadata lives in heterogeneous containers: Info.plist dictionaries
// at varying sub-paths inside VST3/AU/VST2 bundles, JSON sidecars inside CLAP
// bundles, or nothing at all for flat legacy VST2 files. Extraction therefore
// runs ordered probe chains over whichever containers exist, short-circuiting
// on the first hit, and treats every missing or malformed container as a soft
// miss. Extract never returns an error; absence is an empty field.
package metadata
