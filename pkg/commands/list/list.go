// Package list implements the list command: report every eligible span's
// current line type. Pure read, no rules involved.
package list

import (
	"github.com/tdmtools/spanline/pkg/commands/internal/devsel"
	"github.com/tdmtools/spanline/pkg/logging"
	"github.com/tdmtools/spanline/pkg/types"
)

// Options contains options for the list command
type Options struct {
	// Store is the attribute store to enumerate
	Store types.Store

	// DeviceNames limits the run to specific devices; empty means all
	DeviceNames []string
}

// Entry is one listed span
type Entry struct {
	Device *types.Device
	Span   types.Span
}

// Result holds the listed spans in discovery order
type Result struct {
	Entries []Entry
}

// Run lists all eligible spans
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.list")

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
				logger.Debug().
					Str("device", dev.Name).
					Int("span", span.Number).
					Msg("Skipping non-assignable span")
				continue
			}
			result.Entries = append(result.Entries, Entry{Device: dev, Span: span})
		}
	}

	logger.Info().Int("spanCount", len(result.Entries)).Msg("Listed spans")
	return result, nil
}
