package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tdmtools/spanline/pkg/config"
	"github.com/tdmtools/spanline/pkg/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				return config.WriteDefault(cmd.OutOrStdout())
			}

			path := config.UserConfigPath()
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad,
					"cannot create config directory for %s", path)
			}
			f, err := os.Create(path)
			if err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad,
					"cannot create %s", path)
			}
			defer func() { _ = f.Close() }()
			if err := config.WriteDefault(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write to the user config file instead of stdout")
	return cmd
}
