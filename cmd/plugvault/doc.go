// Command plugvault catalogs installed audio plugins across VST2, VST3, AU,
// and CLAP packaging formats, deduplicating the same logical plugin across
// formats, and offers search, grouping, plain-text export, backup, and safe
// removal of the resolved set.
package main
