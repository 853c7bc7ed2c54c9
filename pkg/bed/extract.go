package bed

import "github.com/genomekit/genomekit/pkg/errors"

// Extract maps every region of the table against the supplied chromosome
// sequences and returns the literal subsequences, one string per row in
// input order. The returned string for [s, e) always has length e-s.
//
// A row referencing a chromosome missing from seqs fails with
// UNKNOWN_CHROMOSOME; a row whose range leaves [0, len(sequence)] fails
// with OUT_OF_BOUNDS. Extraction stops at the first violation and never
// returns a partial result.
func Extract(t *Table, seqs map[string]string) ([]string, error) {
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		seq, ok := seqs[row.Chrom]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownChromosome,
				"chromosome %q is not present in the supplied sequences", row.Chrom)
		}
		if row.Start < 0 || row.End > len(seq) {
			return nil, errors.New(errors.ErrCodeOutOfBounds,
				"region %s exceeds sequence bounds [0, %d)", row.Interval, len(seq))
		}
		out = append(out, seq[row.Start:row.End])
	}
	return out, nil
}
