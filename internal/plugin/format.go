package plugin

import "strings"

// Format identifies one of the supported plugin packaging formats.
type Format string

const (
	FormatVST2 Format = "VST2"
	FormatVST3 Format = "VST3"
	FormatAU   Format = "AU"
	FormatCLAP Format = "CLAP"
)

// AllFormats returns every supported format in canonical display order.
func AllFormats() []Format {
	return []Format{FormatVST2, FormatVST3, FormatAU, FormatCLAP}
}

// Extension returns the on-disk extension for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatVST2:
		return ".vst"
	case FormatVST3:
		return ".vst3"
	case FormatAU:
		return ".component"
	case FormatCLAP:
		return ".clap"
	default:
		return ""
	}
}

// Bucket returns the install subdirectory name used for this format under the
// standard Audio/Plug-Ins roots (and in backup destinations).
func (f Format) Bucket() string {
	switch f {
	case FormatVST2:
		return "VST"
	case FormatVST3:
		return "VST3"
	case FormatAU:
		return "Components"
	case FormatCLAP:
		return "CLAP"
	default:
		return ""
	}
}

func (f Format) String() string {
	return string(f)
}

// FormatForExtension classifies a filename extension into a format. The
// comparison is case-insensitive and tolerates a missing leading dot.
func FormatForExtension(ext string) (Format, bool) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	switch ext {
	case ".vst":
		return FormatVST2, true
	case ".vst3":
		return FormatVST3, true
	case ".component":
		return FormatAU, true
	case ".clap":
		return FormatCLAP, true
	default:
		return "", false
	}
}

// IsBundle reports whether the format is distributed as a directory bundle.
// Legacy VST2 exists both as a bundle and as a flat file, so the caller must
// additionally check the on-disk entry type for that format.
func (f Format) IsBundle() bool {
	switch f {
	case FormatVST3, FormatAU, FormatCLAP:
		return true
	default:
		return false
	}
}
