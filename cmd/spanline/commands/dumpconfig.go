package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdmtools/spanline/pkg/commands/dumpconfig"
)

func newDumpConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "dumpconfig [device...]",
		Short:   MsgDumpConfigShort,
		Long:    MsgDumpConfigLong,
		Example: MsgDumpConfigExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := dumpconfig.Run(dumpconfig.Options{
				Store:           opts.newStore(),
				DeviceNames:     args,
				Key:             opts.key,
				DefaultLineMode: opts.lineMode,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result.Output)
			return nil
		},
	}
}
