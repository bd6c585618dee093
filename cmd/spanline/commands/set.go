package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdmtools/spanline/pkg/commands/set"
	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/style"
)

func newSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "set [device...]",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.loadResolver()
			if err != nil {
				return err
			}

			result, err := set.Run(set.Options{
				Store:       opts.newStore(),
				Resolver:    resolver,
				DeviceNames: args,
				DryRun:      opts.dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			applied := 0
			for _, d := range result.Decisions {
				span := fmt.Sprintf("%s/%d", d.Device.Path, d.Span.Number)
				switch {
				case d.Err != nil:
					fmt.Fprintf(w, "%s: %s\n", span,
						style.ErrorStyle.Render(fmt.Sprintf("write rejected: %v", d.Err)))
				case !d.Matched:
					if opts.verbosity > 0 || opts.dryRun {
						fmt.Fprintf(w, "%s: %s\n", span,
							style.MutedStyle.Render("no rule matched, left untouched"))
					}
				case !d.Changed:
					if opts.verbosity > 0 || opts.dryRun {
						fmt.Fprintf(w, "%s: already %s\n", span, style.LineType(d.Resolved))
					}
				case opts.dryRun:
					fmt.Fprintf(w, "%s: would set %s -> %s\n", span,
						style.LineType(d.Span.Type), style.LineType(d.Resolved))
				default:
					applied++
					fmt.Fprintf(w, "%s: set %s -> %s\n", span,
						style.LineType(d.Span.Type), style.LineType(d.Resolved))
				}
			}

			if opts.dryRun {
				fmt.Fprintln(w, style.MutedStyle.Render("dry run, nothing written"))
			} else {
				fmt.Fprintf(w, "%d span(s) updated\n", applied)
			}

			if result.Failures > 0 {
				return errors.Newf(errors.ErrDeviceWrite,
					"%d span write(s) rejected", result.Failures)
			}
			return nil
		},
	}
}
