package manufacturer

import (
	"regexp"
	"strings"
)

// trailingBoilerplate lists patterns stripped from the end of a raw
// manufacturer string before normalization, applied in order. Info strings
// routinely carry copyright lines and legal suffixes that are not part of
// the brand name.
var trailingBoilerplate = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[,.\s]*all rights reserved[.!]?\s*$`),
	regexp.MustCompile(`[,\s]*(?:19|20)\d{2}(?:\s*[-–]\s*(?:19|20)\d{2})?\s*$`),
	regexp.MustCompile(`(?i)[,\s]*(?:©|\(c\)|copyright)\s*$`),
	regexp.MustCompile(`(?i)(?:^|[,\s]+)(?:ltd|inc|gmbh|llc|corp|co|kg|ab|bv|oy|sarl)\.?\s*$`),
}

// formatEchoes are plugin-format extensions that occasionally leak into
// manufacturer fields ("Acme.vst3").
var formatEchoes = []string{".vst3", ".vst", ".component", ".clap", ".au"}

// Clean strips boilerplate from a raw manufacturer candidate. It returns
// the empty string when nothing usable remains: empty input, two characters
// or fewer, or the bare organizational prefix "com".
func Clean(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	for _, pattern := range trailingBoilerplate {
		value = pattern.ReplaceAllString(value, "")
	}
	value = strings.TrimSpace(value)

	if rest, ok := strings.CutPrefix(value, "com "); ok {
		value = strings.TrimSpace(rest)
	}

	lower := strings.ToLower(value)
	for _, echo := range formatEchoes {
		if strings.HasSuffix(lower, echo) {
			value = value[:len(value)-len(echo)]
			lower = strings.ToLower(value)
			break
		}
	}
	value = strings.TrimSpace(value)

	if len(value) <= 2 || strings.EqualFold(value, "com") {
		return ""
	}
	return value
}
