package db

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

var (
	slugDisallowed  = regexp.MustCompile(`[^a-z0-9-]`)
	slugStripChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace  = regexp.MustCompile(`\s+`)
	slugSuffixRunes = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// NormalizeSlug lowercases slug and replaces every character outside
// [a-z0-9-] with a hyphen. Applied to caller-chosen slugs before any
// uniqueness check so equivalent inputs collide predictably.
func NormalizeSlug(slug string) string {
	return slugDisallowed.ReplaceAllString(strings.ToLower(slug), "-")
}

// GenerateSlug derives a URL slug from a portfolio title: lowercase, strip
// punctuation, hyphenate whitespace, truncate to 50 characters, then append
// a random 4-character suffix to keep collisions unlikely.
func GenerateSlug(title string) string {
	base := strings.ToLower(title)
	base = slugStripChars.ReplaceAllString(base, "")
	base = slugWhitespace.ReplaceAllString(strings.TrimSpace(base), "-")
	if len(base) > 50 {
		base = base[:50]
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = slugSuffixRunes[rand.IntN(len(slugSuffixRunes))]
	}
	if base == "" {
		return string(suffix)
	}
	return base + "-" + string(suffix)
}
