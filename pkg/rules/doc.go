// Package rules implements the span-types rule file: parsing the ordered
// rule sequence, glob matching of device identifiers and span numbers, and
// the resolution engine that decides which line type a span gets.
//
// Rule files are line oriented:
//
//	<identifier-pattern>  <span-pattern>:<E1|T1|J1>
//
// Comments run from '#' to end of line; blank lines are ignored. Ordering is
// the sole source of precedence: every rule is scanned for every span and the
// last full match wins, so a wildcard-all rule followed by specific overrides
// is the intended authoring pattern.
package rules
