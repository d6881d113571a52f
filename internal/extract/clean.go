package extract

import (
	"regexp"
	"strings"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Clean normalizes raw extracted text: every carriage return becomes a
// newline, runs of three or more newlines collapse to exactly two, and
// surrounding whitespace is trimmed. It is total and idempotent.
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "\r", "\n")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
