package rules

import (
	"regexp"
	"strings"

	"github.com/tdmtools/spanline/pkg/errors"
)

// compileGlob translates a shell-style glob into an anchored regular
// expression: '*' matches any run of characters including the empty string,
// '?' matches exactly one character, and '[...]' is a character class with
// '!' or '^' negation. The patterns match device identifiers and span
// numbers, not filesystem paths, so there is no path-separator special
// casing and matching is case-sensitive.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			// a ']' directly after the (possibly negated) opening
			// bracket is a literal member of the class
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				// unterminated class, treat the bracket as a literal
				b.WriteString(regexp.QuoteMeta("["))
				continue
			}
			set := pattern[i+1 : j]
			if set[0] == '!' || set[0] == '^' {
				set = set[1:]
				b.WriteString("[^")
			} else {
				b.WriteString("[")
			}
			b.WriteString(escapeClass(set))
			b.WriteString("]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"invalid pattern %q", pattern)
	}
	return re, nil
}

// escapeClass escapes the characters that are special inside a regexp
// character class. Range dashes pass through so '[0-3]' keeps its meaning.
func escapeClass(set string) string {
	var b strings.Builder
	for i := 0; i < len(set); i++ {
		switch set[i] {
		case '\\', '^', ']', '[':
			b.WriteByte('\\')
		}
		b.WriteByte(set[i])
	}
	return b.String()
}
