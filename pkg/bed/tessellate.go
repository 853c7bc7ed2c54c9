package bed

import "github.com/genomekit/genomekit/pkg/errors"

// Tessellate partitions every region of the table into contiguous windows
// of windowSize. When the region length is not a multiple of windowSize,
// the remainder is absorbed by a boundary window chosen by the alignment:
//
//   - AlignLeft shortens the last window (windows anchored on the left edge).
//   - AlignRight shortens the first window (anchored on the right edge).
//   - AlignCenter splits the truncation between the first and last window,
//     with the odd extra unit taken from the right one.
//
// A region no longer than windowSize is emitted unchanged as a single
// window. Derived rows appear in left-to-right genomic order immediately
// after each other, inheriting the source row's passthrough columns.
// The window lengths of each region always sum to the region length.
func Tessellate(t *Table, windowSize int, alignment Alignment) (*Table, error) {
	if windowSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidWindowSize,
			"window size must be a positive integer, got %d", windowSize)
	}

	out := t.emptyLike()
	for _, row := range t.Rows {
		length := row.Len()
		if windowSize >= length {
			out.Rows = append(out.Rows, row.clone())
			continue
		}

		n := (length + windowSize - 1) / windowSize
		remainder := n*windowSize - length
		firstCut, lastCut := alignment.split(remainder)

		pos := row.Start
		for i := 0; i < n; i++ {
			size := windowSize
			if i == 0 {
				size -= firstCut
			}
			if i == n-1 {
				size -= lastCut
			}
			iv := Interval{Chrom: row.Chrom, Start: pos, End: pos + size}
			out.Rows = append(out.Rows, row.withInterval(iv))
			pos += size
		}
	}
	return out, nil
}
