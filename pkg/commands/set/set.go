// Package set implements the set command: resolve every eligible span
// against the rule file and apply the resolved line types.
package set

import (
	"github.com/tdmtools/spanline/pkg/commands/internal/devsel"
	"github.com/tdmtools/spanline/pkg/logging"
	"github.com/tdmtools/spanline/pkg/rules"
	"github.com/tdmtools/spanline/pkg/types"
)

// Options contains options for the set command
type Options struct {
	// Store is the attribute store to enumerate and write to
	Store types.Store

	// Resolver is the rule resolution engine
	Resolver *rules.Resolver

	// DeviceNames limits the run to specific devices; empty means all
	DeviceNames []string

	// DryRun computes and reports resolutions without writing
	DryRun bool
}

// Decision is the outcome for one eligible span
type Decision struct {
	Device *types.Device
	Span   types.Span

	// Resolved is the rule-file type; meaningless when Matched is false
	Resolved types.LineType

	// Matched reports whether any rule applied to the span
	Matched bool

	// Changed reports whether the resolved type differs from the live one
	Changed bool

	// Applied reports whether the type was written to the device
	Applied bool

	// Err holds the write failure when the driver rejected the assignment
	Err error
}

// Result holds all decisions of one run
type Result struct {
	Decisions []Decision

	// Failures counts spans whose write was rejected
	Failures int
}

// Run resolves and applies line types. Per-span write failures are isolated:
// the run continues and the failure is reported in the result.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.set")

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

			decision := Decision{Device: dev, Span: span}
			decision.Resolved, decision.Matched = opts.Resolver.Resolve(dev, span)

			if !decision.Matched {
				logger.Debug().
					Str("device", dev.Name).
					Int("span", span.Number).
					Msg("No rule matched, leaving span untouched")
				result.Decisions = append(result.Decisions, decision)
				continue
			}

			decision.Changed = decision.Resolved != span.Type
			if decision.Changed && !opts.DryRun {
				if err := opts.Store.WriteSpanType(dev, span.Number, decision.Resolved); err != nil {
					// One rejected span must not block the rest
					decision.Err = err
					result.Failures++
					logger.Error().
						Err(err).
						Str("device", dev.Name).
						Int("span", span.Number).
						Msg("Span write rejected, continuing")
				} else {
					decision.Applied = true
				}
			}
			result.Decisions = append(result.Decisions, decision)
		}
	}

	logger.Info().
		Int("decisions", len(result.Decisions)).
		Int("failures", result.Failures).
		Bool("dryRun", opts.DryRun).
		Msg("Set completed")
	return result, nil
}
