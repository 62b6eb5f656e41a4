package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/tyname/catalog"
	"github.com/teranos/tyname/golden"
)

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check builtin names against the golden file",
		Long: `Check that every builtin name matches the golden file.

Exit codes:
  0 - Names are up to date
  1 - Names differ (diff shown) or the golden file could not be read

Diff lines:
  - key = "name"                 in the golden file only
  + key = "name"                 computed but not in the golden file
  ~ key = "got", want "want"     name changed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			diffs, err := golden.Check(opts.cfg.Golden.Path, catalog.Builtin())
			if err != nil && len(diffs) == 0 {
				return err
			}
			if err != nil {
				fmt.Fprintf(out, "✗ Type names differ from %s:\n", opts.cfg.Golden.Path)
				for _, d := range diffs {
					fmt.Fprintf(out, "  %s\n", d)
				}
				return err
			}
			fmt.Fprintf(out, "✓ Type names match %s\n", opts.cfg.Golden.Path)
			return nil
		},
	}

	cmd.Flags().String("golden", "", "Golden file path (default from config: golden.path)")
	return cmd
}

func newUpdateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rewrite the golden file from the builtin names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Builtin()
			if err := golden.Save(opts.cfg.Golden.Path, golden.FromCatalog(c)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d names to %s\n", c.Len(), opts.cfg.Golden.Path)
			return nil
		},
	}

	cmd.Flags().String("golden", "", "Golden file path (default from config: golden.path)")
	return cmd
}
