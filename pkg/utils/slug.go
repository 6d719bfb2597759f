package utils

import (
	"regexp"
	"strings"
)

var (
	spacesRe   = regexp.MustCompile(`\s+`)
	nonWordRe  = regexp.MustCompile(`[^\w-]+`)
	repeatedRe = regexp.MustCompile(`__+`)
)

// LookupKey derives a machine key from a human-readable category name:
// lowercase, spaces become underscores, non-word characters are stripped
// and repeated underscores collapse. The result is stable, so it can be
// used as an immutable document key.
func LookupKey(name string) string {
	s := strings.ToLower(name)
	s = spacesRe.ReplaceAllString(s, "_")
	s = nonWordRe.ReplaceAllString(s, "")
	s = repeatedRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_-")
	return s
}
