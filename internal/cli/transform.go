package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/genomekit/genomekit/pkg/bed"
)

// tessellateCommand creates the "tessellate" command cutting BED intervals
// into fixed-size windows.
func (c *CLI) tessellateCommand() *cobra.Command {
	var (
		windowSize int
		alignment  string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "tessellate <in.bed>",
		Short: "Cut BED intervals into fixed-size windows",
		Long: `Cut each BED interval into consecutive windows of --window-size bases.
When the interval length is not a multiple of the window size, the remainder
shortens the boundary windows per --alignment: "left" anchors windows at the
start and shortens the last one, "right" anchors at the end and shortens the
first, "center" splits the shortfall between both ends. Intervals no longer
than the window size pass through unchanged.

Example:
  genomekit tessellate regions.bed --window-size 200 --alignment center`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.transform(args[0], output, func(t *bed.Table) (*bed.Table, error) {
				align, err := bed.ParseAlignment(alignment)
				if err != nil {
					return nil, err
				}
				return bed.Tessellate(t, windowSize, align)
			})
		},
	}

	cmd.Flags().IntVar(&windowSize, "window-size", 200, "window size in bases")
	cmd.Flags().StringVar(&alignment, "alignment", "left", "remainder placement: left, right, or center")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// expandCommand creates the "expand" command growing BED intervals.
func (c *CLI) expandCommand() *cobra.Command {
	var (
		windowSize int
		alignment  string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "expand <in.bed>",
		Short: "Grow BED intervals by a fixed amount",
		Long: `Grow each BED interval by exactly --window-size bases. The alignment
names where the original interval sits inside the grown one: "left" grows
only the end, "right" only the start, "center" splits the growth (odd sizes
put the extra base on the end). Coordinates are not clamped; expansion near
position zero can produce negative starts.

Example:
  genomekit expand peaks.bed --window-size 100 --alignment center`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.transform(args[0], output, func(t *bed.Table) (*bed.Table, error) {
				align, err := bed.ParseAlignment(alignment)
				if err != nil {
					return nil, err
				}
				return bed.Expand(t, windowSize, align)
			})
		},
	}

	cmd.Flags().IntVar(&windowSize, "window-size", 200, "growth in bases")
	cmd.Flags().StringVar(&alignment, "alignment", "center", "growth placement: left, right, or center")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// wiggleCommand creates the "wiggle" command producing randomly translated
// copies of BED intervals.
func (c *CLI) wiggleCommand() *cobra.Command {
	var (
		maxWiggle int
		wiggles   int
		seed      int64
		output    string
	)

	cmd := &cobra.Command{
		Use:   "wiggle <in.bed>",
		Short: "Produce randomly translated copies of BED intervals",
		Long: `Produce --wiggles randomly translated copies of each BED interval. Each
copy shifts both endpoints by the same offset, drawn uniformly from
[-max-wiggle, +max-wiggle]. Copies of a row stay grouped together in the
output, and runs with the same --seed reproduce the same offsets.

Example:
  genomekit wiggle peaks.bed --max-wiggle 50 --wiggles 10 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.transform(args[0], output, func(t *bed.Table) (*bed.Table, error) {
				return bed.Wiggle(t, maxWiggle, wiggles, seed)
			})
		},
	}

	cmd.Flags().IntVar(&maxWiggle, "max-wiggle", 100, "maximum translation in bases")
	cmd.Flags().IntVar(&wiggles, "wiggles", 10, "number of copies per interval")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// transform runs a table transform between readBed and withOutput.
func (c *CLI) transform(input, output string, fn func(*bed.Table) (*bed.Table, error)) error {
	table, err := readBed(input)
	if err != nil {
		return err
	}
	result, err := fn(table)
	if err != nil {
		return err
	}
	return withOutput(output, func(w io.Writer) error {
		return bed.WriteTable(w, result)
	})
}
