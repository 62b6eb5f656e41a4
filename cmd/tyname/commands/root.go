package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/tyname/config"
	"github.com/teranos/tyname/errors"
	"github.com/teranos/tyname/logger"
)

// options is the state shared by the command tree of one invocation.
type options struct {
	configPath string
	cfg        *config.Config
}

// flagBindings maps config keys to the flags that override them.
// Flags a command does not define are skipped.
var flagBindings = map[string]string{
	"output.format": "format",
	"golden.path":   "golden",
	"log.json":      "json-log",
	"log.verbosity": "verbose",
}

// NewRootCmd builds the tyname command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tyname",
		Short: "Print and pin canonical type names",
		Long: `tyname prints the canonical names composed by the tyname library
and checks them against a golden file.

Names follow the grammar consumers compare byte for byte:
  Vec<u8>  Result<i32, String>  [u8; 32]  (i8, i16)  fn(i32) -> bool

Configuration is read from tyname.toml (searched upward from the working
directory), TYNAME_* environment variables, and flags.

Examples:
  tyname list                      # Table of every builtin name
  tyname list --format json        # Machine-readable output
  tyname name 'Result[I32, String]'
  tyname check                     # Compare with the golden file
  tyname update                    # Rewrite the golden file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: tyname.toml found from the working directory)")
	root.PersistentFlags().Bool("json-log", false, "Write diagnostics to stderr as JSON")
	root.PersistentFlags().CountP("verbose", "v", "Increase diagnostics (-v, -vv, -vvv)")

	root.AddCommand(
		newListCmd(opts),
		newNameCmd(),
		newCheckCmd(opts),
		newUpdateCmd(opts),
		newVersionCmd(),
	)
	return root
}

// load resolves configuration for cmd and sets up logging.
func (o *options) load(cmd *cobra.Command) error {
	v, err := config.Open(o.configPath)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return err
	}
	// An explicit --golden is relative to the working directory.
	if flag := cmd.Flags().Lookup("golden"); flag != nil && flag.Changed {
		cfg.Golden.Path = flag.Value.String()
	}
	o.cfg = cfg

	if err := logger.InitializeWriter(cmd.ErrOrStderr(), cfg.Log.JSON, cfg.Log.Verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	log := logger.ChildLogger(logger.ComponentLogger("cli"), logger.FieldCommand, cmd.Name())
	log.Debugw("config loaded",
		logger.FieldFile, v.ConfigFileUsed(),
		logger.FieldFormat, cfg.Output.Format,
		logger.FieldVerbosity, logger.LevelName(cfg.Log.Verbosity))
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range flagBindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind flag --%s", name)
		}
	}
	return nil
}
