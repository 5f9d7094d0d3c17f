package metadata

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"plugvault/internal/logging"
	"plugvault/internal/manufacturer"
	"plugvault/internal/plist"
	"plugvault/internal/plugin"
)

// Info is the outcome of one extraction. Empty fields mean no usable
// evidence was found; extraction itself never fails.
type Info struct {
	Manufacturer string
	Version      string
}

// Extractor probes plugin metadata containers. The logger records parse
// failures at debug level; they are soft misses, never errors.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor constructs an extractor. A nil logger disables logging.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Extractor{logger: logger.With(logging.String("component", "metadata"))}
}

// containerSubPaths lists metadata container locations inside a bundle,
// primary first. Non-conforming bundles ship their Info.plist under
// Resources or at the bundle root.
var containerSubPaths = []string{
	filepath.Join("Contents", "Info.plist"),
	filepath.Join("Contents", "Resources", "Info.plist"),
	"Info.plist",
}

// Extract returns whatever manufacturer and version evidence the entry at
// path carries for the given format.
func (e *Extractor) Extract(path string, format plugin.Format) Info {
	var info Info
	switch {
	case format == plugin.FormatCLAP:
		info = e.extractCLAP(path)
	case isDirectory(path):
		info = e.extractBundle(path)
	case format == plugin.FormatVST2:
		info = extractFlatVST2(path)
	}

	if info.Manufacturer == "" {
		info.Manufacturer = manufacturerFromParentDir(path)
	}
	return info
}

// extractBundle probes each container location in order and resolves both
// fields through their probe chains. Probing stops as soon as both fields
// are populated.
func (e *Extractor) extractBundle(bundlePath string) Info {
	var info Info
	for _, sub := range containerSubPaths {
		containerPath := filepath.Join(bundlePath, sub)
		dict, err := plist.Load(containerPath)
		if err != nil {
			if !os.IsNotExist(err) {
				e.logger.Debug("unreadable metadata container",
					logging.String("path", containerPath),
					logging.Error(err),
				)
			}
			continue
		}
		if info.Manufacturer == "" {
			info.Manufacturer = firstHit(
				func() (string, bool) { return manufacturerFromIdentifier(dict) },
				func() (string, bool) { return manufacturerFromExplicitKeys(dict) },
				func() (string, bool) { return manufacturerFromInfoString(dict) },
			)
		}
		if info.Version == "" {
			info.Version, _ = dict.FirstString(
				"CFBundleShortVersionString",
				"CFBundleVersion",
				"ProductVersion",
				"version",
			)
		}
		if info.Manufacturer != "" && info.Version != "" {
			break
		}
	}
	return info
}

// firstHit evaluates probes left to right and returns the first non-empty
// result.
func firstHit(probes ...func() (string, bool)) string {
	for _, probe := range probes {
		if value, ok := probe(); ok {
			return value
		}
	}
	return ""
}

var organizationalPrefixes = map[string]bool{"com": true, "net": true, "org": true}

// manufacturerFromIdentifier derives the manufacturer token from a
// reverse-DNS bundle identifier such as "com.acme.foo" or "uk.com.acme.foo".
// Tokens of two characters or fewer are rejected as too ambiguous.
func manufacturerFromIdentifier(dict plist.Dict) (string, bool) {
	identifier, ok := dict.String("CFBundleIdentifier")
	if !ok {
		return "", false
	}
	parts := strings.Split(identifier, ".")
	if len(parts) < 3 {
		return "", false
	}

	var token string
	switch {
	case organizationalPrefixes[strings.ToLower(parts[0])]:
		token = parts[1]
	case organizationalPrefixes[strings.ToLower(parts[1])]:
		token = parts[2]
	default:
		return "", false
	}
	if len(token) <= 2 {
		return "", false
	}
	if normalized := manufacturer.Normalize(token); normalized != "" {
		return normalized, true
	}
	return "", false
}

// manufacturerKeys are explicit manufacturer-like fields checked in order.
var manufacturerKeys = []string{"Manufacturer", "CFBundleManufacturer", "vendor", "company"}

func manufacturerFromExplicitKeys(dict plist.Dict) (string, bool) {
	raw, ok := dict.FirstString(manufacturerKeys...)
	if !ok {
		return "", false
	}
	if normalized := manufacturer.Normalize(raw); normalized != "" {
		return normalized, true
	}
	return "", false
}

var (
	// A leading run of capitalized words: "Acme Audio - Reverb v2".
	leadingCapsPattern = regexp.MustCompile(`^([A-Z][A-Za-z0-9&'.]*(?:[ ][A-Z][A-Za-z0-9&'.]*)*)`)
	// Attribution phrasing: "Reverb plugin by Acme Audio".
	byAttributionPattern = regexp.MustCompile(`\b(?i:by)[ ]+([A-Z][A-Za-z0-9&'. -]+)`)
)

// manufacturerFromInfoString mines the free-text info string with two
// heuristics, taking the first capture group that matches.
func manufacturerFromInfoString(dict plist.Dict) (string, bool) {
	text, ok := dict.String("CFBundleGetInfoString")
	if !ok {
		return "", false
	}
	for _, pattern := range []*regexp.Regexp{leadingCapsPattern, byAttributionPattern} {
		match := pattern.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		if normalized := manufacturer.Normalize(match[1]); normalized != "" {
			return normalized, true
		}
	}
	return "", false
}

var flatVersionPattern = regexp.MustCompile(`^\d+\.\d+`)

// extractFlatVST2 handles legacy single-file VST2 plugins. The filename is
// far too unreliable as a manufacturer source and would override
// better-sourced data during merge, so only the version is inferred.
func extractFlatVST2(path string) Info {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, token := range strings.Fields(base) {
		if match := flatVersionPattern.FindString(token); match != "" {
			return Info{Version: match}
		}
	}
	return Info{}
}

// formatBuckets are the standard per-format install directory names; a
// parent directory with one of these names says nothing about the
// manufacturer.
var formatBuckets = map[string]bool{
	"VST3":       true,
	"VST":        true,
	"Components": true,
	"CLAP":       true,
	"AU":         true,
}

var dirNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*`)

// manufacturerFromParentDir is the last-resort manufacturer probe: vendors
// often install under a directory named after themselves.
func manufacturerFromParentDir(path string) string {
	parent := filepath.Base(filepath.Dir(path))
	if formatBuckets[parent] {
		return ""
	}
	match := dirNamePattern.FindString(parent)
	if match == "" {
		return ""
	}
	return manufacturer.Normalize(match)
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
