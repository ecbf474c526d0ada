// Package name normalizes requested icon identifiers into the canonical
// PascalCase keys catalogs are indexed by.
package name

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical returns the PascalCase lookup key for a requested icon name.
//
// A word starts at any letter or digit and runs over the lowercase letters and
// digits that follow it. Every other rune separates words and is dropped, so
// "arrow-down", "arrow_down", "arrow down" and "ArrowDown" all map to
// "ArrowDown". Word starts are uppercased rune by rune, never expanding into
// combining marks, so Canonical is idempotent.
func Canonical(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		switch {
		case !isWordRune(r):
			inWord = false
		case inWord && (unicode.IsLower(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		default:
			// Either the first rune after a separator or an uppercase rune
			// opening the next word.
			inWord = true
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Kebab returns the kebab-case form of a canonical name, e.g. "ArrowDown"
// becomes "arrow-down". A hyphen is inserted only where a lowercase letter
// or digit is followed by an uppercase letter.
func Kebab(canonical string) string {
	var b strings.Builder
	b.Grow(len(canonical) + 4)
	var prev rune
	for i, r := range canonical {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('-')
		}
		b.WriteRune(r)
		prev = r
	}
	return cases.Lower(language.Und).String(b.String())
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
