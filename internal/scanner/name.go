package scanner

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"plugvault/internal/plist"
	"plugvault/internal/plugin"
)

// placeholderName is used when no usable name can be derived at all.
const placeholderName = "Unknown Plugin"

// nameContainerSubPaths are the container locations consulted for an
// explicit display name.
var nameContainerSubPaths = []string{
	filepath.Join("Contents", "Info.plist"),
	filepath.Join("Contents", "Resources", "Info.plist"),
}

// formatTagSuffix strips trailing format tags some vendors append to the
// filename: "Foo [VST3]", "Foo (AU)" and siblings.
var formatTagSuffix = regexp.MustCompile(`(?i)\s*[\[(](?:VST3|VST2|VST|AU|CLAP)[\])]\s*$`)

// canonicalName derives the display name for a discovered entry. An explicit
// bundle name wins; otherwise the cleaned filename; otherwise the parent
// directory supplies a fallback.
func canonicalName(path string, format plugin.Format) string {
	if name, ok := bundleDisplayName(path, format); ok {
		return name
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.TrimSpace(formatTagSuffix.ReplaceAllString(name, ""))

	if name == "" || strings.EqualFold(name, "plugin") {
		parent := filepath.Base(filepath.Dir(path))
		if segment, _, _ := strings.Cut(parent, "."); strings.TrimSpace(segment) != "" {
			name = strings.TrimSpace(segment)
		}
	}
	if name == "" {
		name = placeholderName
	}
	return name
}

// bundleDisplayName reads the explicit name from a bundle's metadata
// container: the bundle-name key first, then the display-name variant.
func bundleDisplayName(path string, format plugin.Format) (string, bool) {
	if format == plugin.FormatCLAP {
		return clapDisplayName(path)
	}
	for _, sub := range nameContainerSubPaths {
		dict, err := plist.Load(filepath.Join(path, sub))
		if err != nil {
			continue
		}
		if name, ok := dict.FirstString("CFBundleName", "CFBundleDisplayName"); ok {
			return name, true
		}
	}
	return "", false
}

func clapDisplayName(path string) (string, bool) {
	for _, sub := range []string{filepath.Join("Contents", "clap.json"), "clap.json"} {
		data, err := os.ReadFile(filepath.Join(path, sub))
		if err != nil {
			continue
		}
		var desc struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &desc); err != nil {
			continue
		}
		if name := strings.TrimSpace(desc.Name); name != "" {
			return name, true
		}
	}
	return "", false
}
