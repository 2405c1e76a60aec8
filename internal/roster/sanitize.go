package roster

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips diacritics: NFD decompose, drop combining marks,
// recompose. Built once; transform.String is safe for concurrent use.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CleanCell trims a raw cell value and unwraps the Excel-style literal
// marker some exports put around identifiers: `="230065"` -> `230065`.
// Missing input is the empty string; the function is pure and total.
func CleanCell(raw string) string {
	v := strings.TrimSpace(raw)
	if strings.HasPrefix(v, `="`) && strings.HasSuffix(v, `"`) && len(v) >= 3 {
		v = v[2 : len(v)-1]
	}
	return strings.TrimSpace(v)
}

// PadDigits strips every non-digit character from raw and left-pads the
// remainder with zeros to width. An input with no digits yields the empty
// string, not a run of zeros — padding only applies to a real digit
// sequence. Sequences already at or beyond width are returned unchanged.
func PadDigits(raw string, width int) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

// Fold lowercases s and strips diacritical marks, so "José" folds to
// "jose". Header classification and lookup both match over folded text.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Malformed input is left as-is; lookup degrades to exact matching.
		folded = s
	}
	return strings.ToLower(folded)
}
