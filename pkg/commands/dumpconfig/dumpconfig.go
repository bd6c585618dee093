// Package dumpconfig implements the dumpconfig command: render the current
// hardware state back as a span-types rule file.
package dumpconfig

import (
	"fmt"
	"strings"

	"github.com/tdmtools/spanline/pkg/commands/internal/devsel"
	"github.com/tdmtools/spanline/pkg/logging"
	"github.com/tdmtools/spanline/pkg/types"
)

// Options contains options for the dumpconfig command
type Options struct {
	// Store is the attribute store to enumerate
	Store types.Store

	// DeviceNames limits the run to specific devices; empty means all
	DeviceNames []string

	// Key is the identifier field rendered per device; empty uses the
	// default preference hardware id, then location, then path
	Key types.IdentifierKey

	// DefaultLineMode forces the generated wildcard type. When empty the
	// wildcard is emitted only if all eligible spans share one type.
	DefaultLineMode types.LineType
}

// Result holds the generated rule file
type Result struct {
	// Output is the rule-file text, re-parsable by the rule parser
	Output string

	// DefaultType is the wildcard type, empty when no wildcard was emitted
	DefaultType types.LineType

	// Spans counts the eligible spans rendered
	Spans int
}

// Run renders live state as a rule file. With a single observed type (or a
// forced default) the wildcard rule carries the assignment and the
// device-specific lines are kept as commented documentation; lines whose
// type differs from the wildcard stay active as overrides.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.dumpconfig")

	devices, err := opts.Store.EnumerateDevices()
	if err != nil {
		return nil, err
	}
	devices, err = devsel.Select(devices, opts.DeviceNames)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	observed := make(map[types.LineType]bool)
	for _, dev := range devices {
		for _, span := range dev.Spans {
			if span.Eligible() {
				observed[span.Type] = true
			}
		}
	}

	defaultType := opts.DefaultLineMode
	if defaultType == "" && len(observed) == 1 {
		for t := range observed {
			defaultType = t
		}
	}
	result.DefaultType = defaultType

	var b strings.Builder
	b.WriteString("# Autogenerated by spanline dumpconfig -- from current hardware state\n")
	b.WriteString("#\n")
	b.WriteString("# <identifier-pattern>  <span-pattern>:<E1|T1|J1>\n")

	if defaultType != "" {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%-24s *:%s\n", "*", defaultType)
	}

	for _, dev := range devices {
		eligible := eligibleSpans(dev)
		if len(eligible) == 0 {
			continue
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "# %s\n", strings.Join(dev.Identifiers(), " "))
		ident := dev.DisplayIdentifier(opts.Key)
		for _, span := range eligible {
			line := fmt.Sprintf("%-24s %d:%s", ident, span.Number, span.Type)
			if defaultType != "" && span.Type == defaultType {
				// covered by the wildcard, kept as documentation
				fmt.Fprintf(&b, "# %s\n", line)
			} else {
				fmt.Fprintf(&b, "%s\n", line)
			}
			result.Spans++
		}
	}

	result.Output = b.String()
	logger.Info().
		Int("spans", result.Spans).
		Str("defaultType", string(defaultType)).
		Msg("Generated rule file")
	return result, nil
}

func eligibleSpans(dev *types.Device) []types.Span {
	var spans []types.Span
	for _, span := range dev.Spans {
		if span.Eligible() {
			spans = append(spans, span)
		}
	}
	return spans
}
