package normalize

import (
	"regexp"
	"strings"
)

// nullPattern matches the closed set of null-like sentinel values seen in
// the source feeds: "--", "n/a", "n.a", "na", "nil", "none", "null", the
// literal "No Exam Date.", and the empty string. Case-insensitive.
var nullPattern = regexp.MustCompile(`(?i)^(--|n[/.]?a\.?|nil|none\.?|null|No Exam Date\.|)$`)

// whitespaceRun collapses internal whitespace runs during cleaning.
var whitespaceRun = regexp.MustCompile(`\s+`)

// nullish reports whether a cleaned value is one of the null-like
// sentinels and should be treated as absent.
func nullish(s string) bool {
	return nullPattern.MatchString(s)
}

// clean trims the string and collapses internal whitespace runs to a
// single space.
func clean(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// cleanField cleans a value and blanks it when the result is null-like.
func cleanField(s string) string {
	s = clean(s)
	if nullish(s) {
		return ""
	}
	return s
}

// trim is strings.TrimSpace, named for symmetry with clean.
func trim(s string) string {
	return strings.TrimSpace(s)
}

// upper is strings.ToUpper.
func upper(s string) string {
	return strings.ToUpper(s)
}

// stripFirst removes the first occurrence of substr, matching the source
// feed's single-replacement scrubbing.
func stripFirst(s, substr string) string {
	return strings.Replace(s, substr, "", 1)
}
