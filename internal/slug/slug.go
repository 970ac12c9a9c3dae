// Package slug derives SEO-friendly wallpaper URLs of the form
// {category}-{title}-{shortid} and resolves them back to records.
package slug

import (
	"regexp"
	"strings"
)

const (
	// SuffixLength is how many trailing characters of the record ID
	// serve as the compact lookup key.
	SuffixLength = 8

	maxTitleLength = 50
)

var (
	nonAlphanumeric  = regexp.MustCompile(`[^a-z0-9]`)
	titleDisallowed  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	hyphenRuns       = regexp.MustCompile(`-+`)
	validSlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Encode builds the canonical slug for a wallpaper. The result is stable
// for a given (category, title, id) tuple, so stored links can always be
// checked against a freshly computed slug.
func Encode(category, title, id string) string {
	categoryToken := nonAlphanumeric.ReplaceAllString(strings.ToLower(category), "")

	titleToken := strings.ToLower(title)
	titleToken = titleDisallowed.ReplaceAllString(titleToken, "")
	titleToken = whitespaceRuns.ReplaceAllString(titleToken, "-")
	titleToken = hyphenRuns.ReplaceAllString(titleToken, "-")
	titleToken = strings.Trim(titleToken, "-")
	if len(titleToken) > maxTitleLength {
		titleToken = titleToken[:maxTitleLength]
	}

	return categoryToken + "-" + titleToken + "-" + ShortID(id)
}

// ShortID returns the trailing suffix of a record identifier, or the
// whole identifier when it is shorter than the suffix length.
func ShortID(id string) string {
	if len(id) >= SuffixLength {
		return id[len(id)-SuffixLength:]
	}
	return id
}

// IsValidFormat reports whether a path segment even looks like one of
// our slugs: at least three hyphen-delimited parts, an exact-length
// suffix, and nothing outside [a-z0-9-].
func IsValidFormat(s string) bool {
	if !validSlugPattern.MatchString(s) {
		return false
	}
	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return false
	}
	return len(parts[len(parts)-1]) == SuffixLength
}

// ExtractSuffix returns the final hyphen-delimited segment iff it has
// the exact suffix length. ok is false for malformed input.
func ExtractSuffix(s string) (suffix string, ok bool) {
	idx := strings.LastIndex(s, "-")
	if idx < 0 {
		return "", false
	}
	suffix = s[idx+1:]
	if len(suffix) != SuffixLength {
		return "", false
	}
	return suffix, true
}

// Slugify is the plain title-to-slug transform used for blog posts,
// categories and tags (no short-ID suffix).
func Slugify(s string) string {
	out := strings.ToLower(s)
	out = titleDisallowed.ReplaceAllString(out, "")
	out = whitespaceRuns.ReplaceAllString(out, "-")
	out = hyphenRuns.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
