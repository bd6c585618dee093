package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdmtools/spanline/pkg/commands/compare"
	"github.com/tdmtools/spanline/pkg/errors"
	"github.com/tdmtools/spanline/pkg/style"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [device...]",
		Short: MsgCompareShort,
		Long:  MsgCompareLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.loadResolver()
			if err != nil {
				return err
			}

			result, err := compare.Run(compare.Options{
				Store:       opts.newStore(),
				Resolver:    resolver,
				DeviceNames: args,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, rec := range result.Drift {
				fmt.Fprintf(w, "%s/%d: configured %s, live %s\n",
					style.PathStyle.Render(rec.Device.Path),
					rec.Span.Number,
					style.LineType(rec.Configured),
					style.LineType(rec.Live))
			}

			if result.Clean() {
				fmt.Fprintf(w, "%s (%d span(s) checked)\n",
					style.SuccessStyle.Render("no drift"), result.SpansChecked)
				return nil
			}
			return errors.Newf(errors.ErrDrift,
				"configuration drift detected on %d span(s)", len(result.Drift))
		},
	}
}
