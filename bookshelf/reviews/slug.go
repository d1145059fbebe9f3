package reviews

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// lowercases title and collapses every run of characters outside [a-z0-9]
// into a single dash, trimming dashes at both ends
func GenerateSlug(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
