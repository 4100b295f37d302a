package trivia

import "strings"

// Grade reports whether a submitted answer matches the expected one.
// Both sides are compared after trimming surrounding whitespace and
// lowercasing; no partial or fuzzy matching.
func Grade(submitted, expected string) bool {
	return normalize(submitted) == normalize(expected)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
