package scoring

import (
	"regexp"
	"strings"
)

var (
	vsWord     = regexp.MustCompile(`(?i)\bvs\b`)
	stripChars = regexp.MustCompile(`[^0-9A-Za-z\s^*()+\-]`)
)

// Normalize canonicalizes free text for phrase comparison: slashes become
// spaces and the word "vs" gets space-padded so "odd/even" and "odd vs even"
// tokenize consistently, every character outside alphanumerics and ^ * ( ) + -
// is dropped (those symbols carry complexity notation), whitespace runs
// collapse to single spaces, and the result is lower-cased. Idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := strings.TrimSpace(text)
	t = strings.ReplaceAll(t, "/", " ")
	t = vsWord.ReplaceAllString(t, " vs ")
	t = stripChars.ReplaceAllString(t, " ")
	t = strings.Join(strings.Fields(t), " ")
	return strings.ToLower(t)
}
