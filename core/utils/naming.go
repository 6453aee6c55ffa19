package utils

import (
	"strings"
	"unicode"
)

// NormalizeLabel canonicalizes a raw detector label or user-entered name:
// surrounding whitespace is stripped, inner whitespace collapsed to single
// spaces, and the result lowercased. "  Hot  Dog " and "hot dog" normalize
// to the same value.
func NormalizeLabel(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// Slugify converts an arbitrary display name into an identity key:
// lowercase, alphanumeric runs joined by single hyphens.
// "Oat Milk (1L)" becomes "oat-milk-1l". Returns "" if nothing survives.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
