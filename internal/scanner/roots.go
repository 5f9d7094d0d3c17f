package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// rootTemplates are the standard plugin install locations: a per-user, a
// system-wide, and a network triple for each of the four format buckets.
// They follow OS convention and are not user-configurable.
var rootTemplates = []string{
	"~/Library/Audio/Plug-Ins/VST",
	"~/Library/Audio/Plug-Ins/VST3",
	"~/Library/Audio/Plug-Ins/Components",
	"~/Library/Audio/Plug-Ins/CLAP",
	"/Library/Audio/Plug-Ins/VST",
	"/Library/Audio/Plug-Ins/VST3",
	"/Library/Audio/Plug-Ins/Components",
	"/Library/Audio/Plug-Ins/CLAP",
	"/Network/Library/Audio/Plug-Ins/VST",
	"/Network/Library/Audio/Plug-Ins/VST3",
	"/Network/Library/Audio/Plug-Ins/Components",
	"/Network/Library/Audio/Plug-Ins/CLAP",
}

// DefaultRoots returns the twelve standard scan roots with tilde shortcuts
// expanded. Roots that do not exist are still returned; the scanner skips
// them silently.
func DefaultRoots() []string {
	home, err := os.UserHomeDir()
	roots := make([]string, 0, len(rootTemplates))
	for _, template := range rootTemplates {
		if strings.HasPrefix(template, "~/") {
			if err != nil {
				continue
			}
			roots = append(roots, filepath.Join(home, strings.TrimPrefix(template, "~")))
			continue
		}
		roots = append(roots, template)
	}
	return roots
}
