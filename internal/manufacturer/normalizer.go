package manufacturer

import (
	_ "embed"
	"encoding/json"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed aliases.json
var aliasData []byte

type aliasTables struct {
	// Brands maps a lowercase slug (hyphenated or collapsed) to the
	// canonical brand name.
	Brands map[string]string `json:"brands"`
	// Tokens maps individual all-lowercase tokens to their house casing,
	// consulted during generic capitalization.
	Tokens map[string]string `json:"tokens"`
}

var aliases = loadAliases()

func loadAliases() aliasTables {
	var tables aliasTables
	if err := json.Unmarshal(aliasData, &tables); err != nil {
		// The table is embedded; a parse failure is a build defect.
		panic("manufacturer: parse aliases.json: " + err.Error())
	}
	return tables
}

var titleCaser = cases.Title(language.Und)

// Normalize runs the full pipeline over a raw manufacturer candidate:
// Clean, then alias lookup, then generic capitalization. It returns the
// empty string when the input carries no usable manufacturer.
func Normalize(raw string) string {
	cleaned := Clean(raw)
	if cleaned == "" {
		return ""
	}
	if canonical, ok := lookupBrand(cleaned); ok {
		return canonical
	}
	return capitalize(cleaned)
}

func lookupBrand(value string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(value))
	if canonical, ok := aliases.Brands[key]; ok {
		return canonical, true
	}
	// Free-text forms arrive with spaces where slugs use hyphens.
	key = strings.ReplaceAll(key, " ", "-")
	canonical, ok := aliases.Brands[key]
	return canonical, ok
}

// capitalize applies generic company-name casing: hyphen-separated tokens
// become space-separated words, mixed-case tokens are preserved verbatim,
// and all-lowercase tokens consult the token alias table before naive
// title-casing.
func capitalize(value string) string {
	tokens := strings.Split(value, "-")
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		out = append(out, capitalizeToken(token))
	}
	return strings.Join(out, " ")
}

func capitalizeToken(token string) string {
	if hasUpper(token) {
		return token
	}
	if cased, ok := aliases.Tokens[token]; ok {
		return cased
	}
	return titleCaser.String(token)
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
