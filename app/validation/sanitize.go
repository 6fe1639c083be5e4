package validation

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes anything that looks like an HTML tag and trims the
// result. Applied to free-text fields before they reach storage.
func StripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// HasMarkup reports whether s contains raw angle brackets or braces. Query
// subject, message and reply content rejects these outright on top of tag
// stripping, since the text is rendered downstream.
func HasMarkup(s string) bool {
	return strings.ContainsAny(s, "<>{}")
}
