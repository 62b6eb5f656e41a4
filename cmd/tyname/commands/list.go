package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/tyname/catalog"
	"github.com/teranos/tyname/logger"
	"github.com/teranos/tyname/render"
)

func newListCmd(opts *options) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List builtin type names",
		Long: `List the key and composed name of every builtin catalog entry.

Keys are the Go spelling of the type without the package qualifier.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := catalog.Builtin().Filter(prefix).Entries()
			logger.Infow("listing type names",
				logger.FieldCount, len(entries),
				logger.FieldFormat, opts.cfg.Output.Format)
			return render.Render(cmd.OutOrStdout(), opts.cfg.Output.Format, entries)
		},
	}

	cmd.Flags().StringP("format", "f", render.FormatText, fmt.Sprintf("Output format: %s", strings.Join(render.Formats(), ", ")))
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Only list keys starting with this prefix")
	return cmd
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <key>",
		Short: "Print the composed name for one catalog key",
		Example: `  tyname name 'Vec[U8]'              # Vec<u8>
  tyname name 'Fn0[Unit]'            # fn() -> ()`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := catalog.Builtin().Lookup(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.Name)
			return err
		},
	}
}
