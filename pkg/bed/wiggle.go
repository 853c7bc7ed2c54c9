package bed

import (
	"math/rand"

	"github.com/genomekit/genomekit/pkg/errors"
)

// Wiggle produces wiggles randomized translations of every region, for
// perturbation sampling. Each output region is the source region shifted by
// a signed offset drawn uniformly from [-maxWiggleSize, +maxWiggleSize];
// both edges move together, so lengths are preserved.
//
// The generator is seeded once from seed and consumed sequentially: rows in
// table order, draws in order within each row. The output is therefore a
// pure function of (table, maxWiggleSize, wiggles, seed) and two identical
// calls produce identical tables. The output holds wiggles*len(rows) rows:
// all variants of row one in draw order, then all variants of row two, and
// so on, each inheriting its source row's passthrough columns.
func Wiggle(t *Table, maxWiggleSize, wiggles int, seed int64) (*Table, error) {
	if maxWiggleSize <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"max wiggle size must be a positive integer, got %d", maxWiggleSize)
	}
	if wiggles < 1 {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"wiggles must be at least 1, got %d", wiggles)
	}

	rng := rand.New(rand.NewSource(seed))
	span := 2*maxWiggleSize + 1

	out := t.emptyLike()
	out.Rows = make([]Row, 0, len(t.Rows)*wiggles)
	for _, row := range t.Rows {
		for i := 0; i < wiggles; i++ {
			offset := rng.Intn(span) - maxWiggleSize
			iv := Interval{Chrom: row.Chrom, Start: row.Start + offset, End: row.End + offset}
			out.Rows = append(out.Rows, row.withInterval(iv))
		}
	}
	return out, nil
}
