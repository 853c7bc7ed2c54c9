package bed

import (
	"fmt"

	"github.com/genomekit/genomekit/pkg/errors"
)

// Interval is a half-open, 0-indexed coordinate range [Start, End) on a
// named chromosome. Intervals are immutable values; transforms never modify
// an interval in place.
type Interval struct {
	Chrom string // Chromosome name (e.g., "chr1", "chrM")
	Start int    // Inclusive start position, >= 0
	End   int    // Exclusive end position, > Start
}

// NewInterval validates and constructs an Interval.
// Empty chromosome names, negative starts, and empty or negative-length
// ranges are rejected with an INVALID_INTERVAL error.
func NewInterval(chrom string, start, end int) (Interval, error) {
	if chrom == "" {
		return Interval{}, errors.New(errors.ErrCodeInvalidInterval, "interval chromosome cannot be empty")
	}
	if start < 0 {
		return Interval{}, errors.New(errors.ErrCodeInvalidInterval, "interval start %d is negative", start)
	}
	if end <= start {
		return Interval{}, errors.New(errors.ErrCodeInvalidInterval, "interval end %d must be greater than start %d", end, start)
	}
	return Interval{Chrom: chrom, Start: start, End: end}, nil
}

// Len returns the interval length, End - Start.
func (iv Interval) Len() int { return iv.End - iv.Start }

// String returns the interval in "chrom:start-end" form.
func (iv Interval) String() string {
	return fmt.Sprintf("%s:%d-%d", iv.Chrom, iv.Start, iv.End)
}
