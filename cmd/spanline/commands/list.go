package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdmtools/spanline/pkg/commands/list"
	"github.com/tdmtools/spanline/pkg/style"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list [device...]",
		Short:   MsgListShort,
		Example: MsgListExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := list.Run(list.Options{
				Store:       opts.newStore(),
				DeviceNames: args,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, e := range result.Entries {
				fmt.Fprintf(w, "%s/%d: %s [%s] @%s\n",
					style.PathStyle.Render(e.Device.Path),
					e.Span.Number,
					style.LineType(e.Span.Type),
					e.Device.HardwareID,
					e.Device.Location)
			}
			return nil
		},
	}
}
