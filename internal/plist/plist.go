// Package plist reads Apple property-list metadata containers into a typed,
// absence-tolerant dictionary.
//
// Plugin bundles embed Info.plist files in XML or binary form with no
// guaranteed keys; every accessor therefore reports absence instead of
// failing, and type mismatches are treated the same as missing keys.
package plist

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"howett.net/plist"
)

// Dict is a decoded property list. The zero value behaves as an empty
// dictionary.
type Dict map[string]any

// Load reads and decodes the property list at path. Both XML and binary
// encodings are accepted.
func Load(path string) (Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode plist %s: %w", path, err)
	}
	return Dict(raw), nil
}

// Marshal encodes the dictionary as an XML property list. Used by test
// fixtures and nowhere on the scan path.
func Marshal(d Dict) ([]byte, error) {
	var buf bytes.Buffer
	enc := plist.NewEncoder(&buf)
	enc.Indent("\t")
	if err := enc.Encode(map[string]any(d)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns the trimmed string value for key. Absent keys, empty
// values, and non-string values all report false.
func (d Dict) String(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	value, ok := d[key]
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	if !ok {
		return "", false
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return "", false
	}
	return str, true
}

// FirstString returns the value of the first key that resolves to a
// non-empty string.
func (d Dict) FirstString(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := d.String(key); ok {
			return value, true
		}
	}
	return "", false
}
