package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/genomekit/genomekit/pkg/bed"
)

// gapsCommand creates the "gaps" command reporting runs of unknown
// nucleotides as a BED table.
func (c *CLI) gapsCommand() *cobra.Command {
	return c.scanCommand("gaps", "Report runs of unknown nucleotides (N) as BED intervals",
		func(g genomeScanner, chromosomes []string) (*bed.Table, error) {
			return g.Gaps(chromosomes...)
		})
}

// filledCommand creates the "filled" command reporting runs of known
// nucleotides as a BED table.
func (c *CLI) filledCommand() *cobra.Command {
	return c.scanCommand("filled", "Report runs of known nucleotides as BED intervals",
		func(g genomeScanner, chromosomes []string) (*bed.Table, error) {
			return g.Filled(chromosomes...)
		})
}

// genomeScanner is the slice of genome.Genome the scan commands need.
type genomeScanner interface {
	Gaps(chromosomes ...string) (*bed.Table, error)
	Filled(chromosomes ...string) (*bed.Table, error)
}

func (c *CLI) scanCommand(name, short string, scan func(genomeScanner, []string) (*bed.Table, error)) *cobra.Command {
	var (
		chromosomes []string
		output      string
	)

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <assembly>", name),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			g, err := c.openGenome(ctx, args[0], chromosomes, false)
			if err != nil {
				return err
			}

			table, err := scan(g, nil)
			if err != nil {
				return err
			}

			if err := withOutput(output, func(w io.Writer) error {
				return bed.WriteTable(w, table)
			}); err != nil {
				return err
			}
			loggerFromContext(ctx).Debugf("%s: %d intervals", name, table.Len())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&chromosomes, "chromosomes", nil, "restrict the scan to these chromosomes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
