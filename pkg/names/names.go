// Package names cleans raw scientific and common names of foods and
// derives from them per-row identity keys and search candidates.
// This is a pure package - no I/O.
package names

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize replaces underscores with spaces, converts the string to
// Unicode NFC and trims surrounding whitespace.
// Normalizing an already normalized name returns it unchanged.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = norm.NFC.String(s)
	return strings.TrimSpace(s)
}
