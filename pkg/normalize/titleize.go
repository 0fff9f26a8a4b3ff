package normalize

import (
	"regexp"
	"strings"
)

// titleBoundary matches the first character of the string or any character
// following a space (optionally with an opening parenthesis), a hyphen, or
// a slash. The whole match is upper-cased, which only affects the letter.
var titleBoundary = regexp.MustCompile(`(^|\s\(?|-|/)\S`)

// Fixed literal corrections applied after the case pass. Each replaces the
// first occurrence only, matching the source feed's historical behavior.
var (
	acronymIP  = regexp.MustCompile(`\bIp\b`)
	acronymMIT = regexp.MustCompile(`\bMit\b`)
	acronymNA  = regexp.MustCompile(`^Na$`)
	acronymNUS = regexp.MustCompile(`\bNus\b`)
)

// titleize lower-cases the string and upper-cases the first letter of every
// word-like boundary, then applies the fixed acronym corrections.
// Idempotent for strings without acronym-exception tokens out of position.
func titleize(s string) string {
	s = titleBoundary.ReplaceAllStringFunc(strings.ToLower(s), strings.ToUpper)
	s = replaceFirst(acronymIP, s, "IP")
	s = replaceFirst(acronymMIT, s, "MIT")
	s = replaceFirst(acronymNA, s, "NA")
	s = replaceFirst(acronymNUS, s, "NUS")
	return s
}

// replaceFirst replaces the first match of re in s with repl.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
