package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fetchCommand creates the "fetch" command downloading an assembly into the
// local store.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		chromosomes []string
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <assembly>",
		Short: "Download an assembly into the local store",
		Long: `Download an assembly's chromosome sequences into the local store. By
default non-canonical chromosomes (unplaced fragments, scaffolds, alternate
haplotypes) are skipped; pass --chromosomes to select an explicit set
instead.

Examples:
  genomekit fetch sacCer3
  genomekit fetch hg38 --chromosomes chr21,chr22
  genomekit fetch hg38 --chromosomes chrM --refresh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			assembly := args[0]

			prog := newProgress(loggerFromContext(ctx))
			g, err := c.openGenome(ctx, assembly, chromosomes, refresh)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %s", assembly))

			printSuccess("%s ready: %d chromosomes", assembly, len(g.Chromosomes()))
			printFile(c.store().AssemblyDir(assembly))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&chromosomes, "chromosomes", nil, "explicit chromosomes to fetch (bypasses filters)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-fetch assembly metadata upstream")

	return cmd
}

// deleteCommand creates the "delete" command removing an assembly from the
// local store.
func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <assembly>",
		Short: "Remove an assembly from the local store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assembly := args[0]
			if err := c.store().Delete(assembly); err != nil {
				return err
			}
			printSuccess("Deleted %s", assembly)
			return nil
		},
	}
}
