package bed

import "github.com/genomekit/genomekit/pkg/errors"

// Expand grows every region of the table by exactly windowSize, one output
// row per input row. The alignment decides which edge moves:
//
//   - AlignLeft keeps the start fixed and extends the end downstream.
//   - AlignRight keeps the end fixed and extends the start upstream.
//   - AlignCenter moves both edges, floor(windowSize/2) on the left and the
//     remainder on the right.
//
// Growth near the left edge of a chromosome can drive the start negative;
// Expand does not clamp. Validating the result against real chromosome
// bounds is the caller's responsibility.
func Expand(t *Table, windowSize int, alignment Alignment) (*Table, error) {
	if windowSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidWindowSize,
			"window size must be a positive integer, got %d", windowSize)
	}

	out := t.emptyLike()
	for _, row := range t.Rows {
		left, right := alignment.split(windowSize)
		iv := Interval{Chrom: row.Chrom, Start: row.Start - left, End: row.End + right}
		out.Rows = append(out.Rows, row.withInterval(iv))
	}
	return out, nil
}
