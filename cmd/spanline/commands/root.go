package commands

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tdmtools/spanline/internal/version"
	"github.com/tdmtools/spanline/pkg/config"
	"github.com/tdmtools/spanline/pkg/logging"
	"github.com/tdmtools/spanline/pkg/rules"
	"github.com/tdmtools/spanline/pkg/store"
	"github.com/tdmtools/spanline/pkg/style"
	"github.com/tdmtools/spanline/pkg/types"
)

// rootOptions carries the resolved global settings shared by all commands
type rootOptions struct {
	verbosity   int
	dryRun      bool
	rulesFile   string
	keyStr      string
	lineModeStr string
	noColor     bool

	cfg      *config.Config
	key      types.IdentifierKey
	lineMode types.LineType
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "spanline",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&opts.rulesFile, "rules", "", MsgFlagRules)
	rootCmd.PersistentFlags().StringVar(&opts.keyStr, "key", "", MsgFlagKey)
	rootCmd.PersistentFlags().StringVar(&opts.lineModeStr, "line-mode", "", MsgFlagLineMode)
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newSetCmd(opts))
	rootCmd.AddCommand(newCompareCmd(opts))
	rootCmd.AddCommand(newDumpConfigCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// resolve loads the configuration, applies flag overrides and validates the
// option values, before any device is touched
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	o.cfg = cfg

	if o.rulesFile == "" {
		o.rulesFile = cfg.RulesFile
	}

	keyStr := o.keyStr
	if keyStr == "" {
		keyStr = cfg.IdentifierKey
	}
	o.key, err = types.ParseIdentifierKey(keyStr)
	if err != nil {
		return err
	}

	lineModeStr := o.lineModeStr
	if lineModeStr == "" {
		lineModeStr = cfg.DefaultLineMode
	}
	if lineModeStr != "" {
		o.lineMode, err = types.ParseLineType(lineModeStr)
		if err != nil {
			return err
		}
	}

	noColor := o.noColor || cfg.Color == "never"
	if !noColor && cfg.Color != "always" {
		out, isFile := cmd.OutOrStdout().(*os.File)
		noColor = !isFile || !isatty.IsTerminal(out.Fd())
	}
	if noColor {
		style.DisableColor()
	}

	return nil
}

// newStore builds the attribute store for this run
func (o *rootOptions) newStore() types.Store {
	return store.NewSysfs(o.cfg.SysfsRoot)
}

// loadResolver parses the rule file and builds the resolution engine
func (o *rootOptions) loadResolver() (*rules.Resolver, error) {
	parsed, err := rules.ParseFile(afero.NewOsFs(), o.rulesFile)
	if err != nil {
		return nil, err
	}
	return rules.NewResolver(parsed), nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "spanline version %s\n", version.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
	},
}
