// Package normalize prepares free text for accent- and case-insensitive
// keyword matching. Every matcher in the repository normalizes both its
// keywords and its inputs through this package so that accent-bearing
// and accent-stripped variants compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
// "Phở" becomes "Pho". Runes without a decomposition (like "đ") pass
// through unchanged, which is fine: keywords go through the same chain.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Text lower-cases s, strips diacritical marks, maps punctuation and
// symbols to spaces, and collapses whitespace runs. It is total: any
// input yields some output, and the same input always yields the same
// output.
func Text(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		// The chain never fails on valid UTF-8; fall back to the
		// lower-cased input for anything it refuses.
		out = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(out))
	space := true // leading whitespace collapses to nothing
	for _, r := range out {
		switch {
		case unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			if !space {
				b.WriteRune(' ')
				space = true
			}
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Keyword normalizes a matching pattern. It applies Text to the core of
// the keyword but preserves a single leading or trailing space from the
// raw pattern: "pho " stays boundary-anchored so it matches "pho bo"
// without matching "phone".
func Keyword(s string) string {
	lead := strings.HasPrefix(s, " ")
	trail := strings.HasSuffix(s, " ")
	out := Text(s)
	if out == "" {
		return ""
	}
	if lead {
		out = " " + out
	}
	if trail {
		out += " "
	}
	return out
}

// Padded returns the normalized form of s wrapped in single spaces, the
// form boundary-anchored keywords are matched against. A keyword ending
// in a space matches at the end of a name because of the padding.
func Padded(s string) string {
	return " " + Text(s) + " "
}
