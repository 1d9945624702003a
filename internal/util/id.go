package util

import (
	"regexp"
	"strings"
)

var nonIDChars = regexp.MustCompile(`[^a-z0-9._-]`)
var repeatedDashes = regexp.MustCompile(`-{2,}`)

// NormalizeID converts a display name into a profile id. The name is
// lowercased, spaces and '/' become '-', every other character outside
// [a-z0-9._-] is dropped, dash runs collapse to one and leading or
// trailing "-._" is trimmed: "C/C++ Tooling" becomes "c-c-tooling".
// An empty result is "unknown".
func NormalizeID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = nonIDChars.ReplaceAllString(s, "")
	s = repeatedDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-._")
	if s == "" {
		return "unknown"
	}
	return s
}
