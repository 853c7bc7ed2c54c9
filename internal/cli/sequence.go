package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/genomekit/genomekit/pkg/bed"
	"github.com/genomekit/genomekit/pkg/errors"
)

// sequenceCommand creates the "sequence" command extracting nucleotide
// sequences for BED intervals.
func (c *CLI) sequenceCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "sequence <assembly> <in.bed>",
		Short: "Extract nucleotide sequences for BED intervals",
		Long: `Extract the nucleotide sequence of each BED interval from a locally
stored assembly. Chromosomes referenced by the table are downloaded on
demand.

Output formats:
  tsv    chrom, start, end, sequence columns (default)
  fasta  one record per interval, named chrom:start-end

Example:
  genomekit sequence sacCer3 windows.bed --format fasta -o windows.fa`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			table, err := readBed(args[1])
			if err != nil {
				return err
			}

			chroms := tableChromosomes(table)
			g, err := c.openGenome(ctx, args[0], chroms, false)
			if err != nil {
				return err
			}

			seqs, err := g.ExtractSequences(table)
			if err != nil {
				return err
			}

			return withOutput(output, func(w io.Writer) error {
				switch format {
				case "tsv":
					return writeTSV(w, table, seqs)
				case "fasta":
					return writeFasta(w, table, seqs)
				default:
					return errors.New(errors.ErrCodeInvalidInput,
						"unknown format %q (expected tsv or fasta)", format)
				}
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "tsv", "output format: tsv or fasta")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// tableChromosomes returns the distinct chromosomes referenced by t, in
// first-appearance order.
func tableChromosomes(t *bed.Table) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.Rows {
		if !seen[row.Chrom] {
			seen[row.Chrom] = true
			out = append(out, row.Chrom)
		}
	}
	return out
}

func writeTSV(w io.Writer, t *bed.Table, seqs []string) error {
	for i, row := range t.Rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", row.Chrom, row.Start, row.End, seqs[i]); err != nil {
			return err
		}
	}
	return nil
}

const fastaLineWidth = 70

func writeFasta(w io.Writer, t *bed.Table, seqs []string) error {
	for i, row := range t.Rows {
		if _, err := fmt.Fprintf(w, ">%s\n", row.Interval); err != nil {
			return err
		}
		seq := seqs[i]
		for len(seq) > 0 {
			n := min(fastaLineWidth, len(seq))
			if _, err := fmt.Fprintln(w, seq[:n]); err != nil {
				return err
			}
			seq = seq[n:]
		}
	}
	return nil
}
