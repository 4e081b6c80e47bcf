// Package textnorm normalizes text before it is measured or compared.
// Lengths are counted in runes after NFC composition so that a precomposed
// "é" and "e" + combining acute measure the same.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NFC returns s in Unicode normalization form C.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Len returns the number of runes in the NFC form of s.
func Len(s string) int {
	return utf8.RuneCountInString(NFC(s))
}

// Column returns the 1-based rune column where needle starts in line, and
// the column just past its end. Both strings are NFC-normalized before
// searching. ok is false when needle is empty or absent.
func Column(line, needle string) (start, end int, ok bool) {
	line, needle = NFC(line), NFC(needle)
	if needle == "" {
		return 0, 0, false
	}
	idx := strings.Index(line, needle)
	if idx < 0 {
		return 0, 0, false
	}
	start = utf8.RuneCountInString(line[:idx]) + 1
	end = start + utf8.RuneCountInString(needle)
	return start, end, true
}

// Slug converts s into a lowercase, dash-separated identifier.
// It NFD-normalizes, strips combining marks, converts whitespace and
// underscores to dashes, drops other punctuation, and collapses runs of
// dashes.
func Slug(s string) string {
	s = norm.NFD.String(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsSpace(r) || r == '_' || r == '-':
			b.WriteRune('-')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		}
	}
	s = b.String()

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// SameName reports whether a and b are equal once slugged.
// Empty names never match.
func SameName(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return Slug(a) == Slug(b)
}
