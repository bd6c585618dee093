// Package compare implements the compare command: resolve every eligible
// span and report where the live type disagrees with configured intent.
// Never writes.
package compare

import (
	"github.com/tdmtools/spanline/pkg/commands/internal/devsel"
	"github.com/tdmtools/spanline/pkg/logging"
	"github.com/tdmtools/spanline/pkg/rules"
	"github.com/tdmtools/spanline/pkg/types"
)

// Options contains options for the compare command
type Options struct {
	// Store is the attribute store to enumerate
	Store types.Store

	// Resolver is the rule resolution engine
	Resolver *rules.Resolver

	// DeviceNames limits the run to specific devices; empty means all
	DeviceNames []string
}

// Result holds the drift found in one run
type Result struct {
	// Drift has one record per span whose live type disagrees with the
	// rule file, in discovery order
	Drift []types.DriftRecord

	// SpansChecked counts the eligible spans a rule resolved
	SpansChecked int
}

// Clean reports whether no drift was found
func (r *Result) Clean() bool {
	return len(r.Drift) == 0
}

// Run compares configured intent against live state. Spans no rule matches
// carry no intent and are not drift.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.compare")

	devices, err := opts.Store.EnumerateDevices()
	if err != nil {
		return nil, err
	}
	devices, err = devsel.Select(devices, opts.DeviceNames)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, dev := range devices {
		for _, span := range dev.Spans {
			if !span.Eligible() {
				continue
			}
			resolved, ok := opts.Resolver.Resolve(dev, span)
			if !ok {
				continue
			}
			result.SpansChecked++
			if resolved != span.Type {
				result.Drift = append(result.Drift, types.DriftRecord{
					Device:     dev,
					Span:       span,
					Configured: resolved,
					Live:       span.Type,
				})
			}
		}
	}

	logger.Info().
		Int("spansChecked", result.SpansChecked).
		Int("driftCount", len(result.Drift)).
		Msg("Compare completed")
	return result, nil
}
