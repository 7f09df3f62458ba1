package content

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugify converts a title to a URL-safe slug: lowercase, characters outside
// [a-z0-9], whitespace, and hyphens stripped, whitespace and hyphen runs
// collapsed to a single hyphen, edge hyphens trimmed.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	hyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		case unicode.IsSpace(r), r == '-':
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// PostSlug derives the immutable slug for a new post from its title and the
// creation clock reading in milliseconds. Identical titles created at
// different instants receive distinct slugs.
func PostSlug(title string, unixMillis int64) string {
	base := Slugify(title)
	if base == "" {
		return strconv.FormatInt(unixMillis, 10)
	}
	return base + "-" + strconv.FormatInt(unixMillis, 10)
}

// SplitList splits a comma-separated editor field ("a, b") into trimmed parts,
// dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
