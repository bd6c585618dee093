package rules

import (
	"github.com/rs/zerolog"

	"github.com/tdmtools/spanline/pkg/logging"
	"github.com/tdmtools/spanline/pkg/types"
)

// Resolver applies an ordered rule sequence to device spans. The sequence is
// immutable for the lifetime of the resolver.
type Resolver struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewResolver creates a resolver over the given rule sequence
func NewResolver(rules []Rule) *Resolver {
	return &Resolver{
		rules:  rules,
		logger: logging.GetLogger("rules.resolver"),
	}
}

// Rules returns the rule sequence the resolver was built from
func (r *Resolver) Rules() []Rule {
	return r.rules
}

// Resolve determines the line type the rule file assigns to one span.
//
// Every rule is scanned in file order. A rule applies when its span pattern
// matches the span number and its identifier pattern matches ANY of the
// device's present identifiers (hardware id, @location, path). A later
// applying rule unconditionally overwrites an earlier one, so the scan must
// never stop at the first match: the last full match in file order wins,
// independent of which identifier field matched.
//
// The second return value is false when no rule applies.
func (r *Resolver) Resolve(dev *types.Device, span types.Span) (types.LineType, bool) {
	var resolved types.LineType
	found := false

	ids := dev.Identifiers()
	for i := range r.rules {
		rule := &r.rules[i]
		if !rule.MatchesSpan(span.Number) {
			continue
		}
		for _, id := range ids {
			if rule.MatchesIdentifier(id) {
				resolved = rule.Target
				found = true
				r.logger.Trace().
					Int("ruleLine", rule.Line).
					Str("identifier", id).
					Str("device", dev.Name).
					Int("span", span.Number).
					Str("target", string(rule.Target)).
					Msg("Rule matched")
				break
			}
		}
	}

	return resolved, found
}
