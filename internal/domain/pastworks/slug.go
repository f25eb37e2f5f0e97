package pastworks

import (
	"regexp"
	"strings"
)

var (
	nonSlug  = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDash = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL-safe slug from a work title.
// Example: "Alice Blue 65%" -> "alice-blue-65".
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlug.ReplaceAllString(s, "-")
	s = edgeDash.ReplaceAllString(s, "")
	return s
}
