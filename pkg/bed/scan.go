package bed

import (
	"sort"

	"github.com/genomekit/genomekit/pkg/errors"
)

// RunKind classifies a maximal run of nucleotides.
type RunKind int

const (
	// RunUnknown marks a run of unknown nucleotides (N/n).
	RunUnknown RunKind = iota
	// RunKnown marks a run of any other nucleotide code.
	RunKnown
)

// String returns "unknown" or "known".
func (k RunKind) String() string {
	if k == RunUnknown {
		return "unknown"
	}
	return "known"
}

// Run is one maximal same-kind stretch of a chromosome sequence,
// half-open like every other coordinate range in this package.
type Run struct {
	Chrom string
	Start int
	End   int
	Kind  RunKind
}

// unknownAt reports whether the byte at position i of seq is the unknown
// nucleotide symbol. Classification is case-insensitive and every symbol
// other than N/n counts as known.
func unknownAt(seq string, i int) bool {
	return seq[i] == 'N' || seq[i] == 'n'
}

// Scan partitions a chromosome sequence into maximal unknown/known runs.
// The returned runs cover [0, len(seq)) exactly, in order, with no gaps or
// overlaps and no two adjacent runs of the same kind. An empty sequence
// yields no runs. One linear pass, no backtracking.
func Scan(chrom, seq string) []Run {
	if len(seq) == 0 {
		return nil
	}

	var runs []Run
	start := 0
	kind := RunKnown
	if unknownAt(seq, 0) {
		kind = RunUnknown
	}

	for i := 1; i < len(seq); i++ {
		k := RunKnown
		if unknownAt(seq, i) {
			k = RunUnknown
		}
		if k == kind {
			continue
		}
		runs = append(runs, Run{Chrom: chrom, Start: start, End: i, Kind: kind})
		start, kind = i, k
	}
	return append(runs, Run{Chrom: chrom, Start: start, End: len(seq), Kind: kind})
}

// Gaps scans the requested chromosomes and returns the unknown (N/n) runs
// as a region table. An empty chromosome list means all chromosomes of the
// mapping, in sorted name order. A chromosome absent from seqs fails with
// UNKNOWN_CHROMOSOME. Chromosomes without a single unknown position
// contribute no rows.
func Gaps(seqs map[string]string, chromosomes []string) (*Table, error) {
	return runTable(seqs, chromosomes, RunUnknown)
}

// Filled is the complement of [Gaps]: it returns the known runs.
func Filled(seqs map[string]string, chromosomes []string) (*Table, error) {
	return runTable(seqs, chromosomes, RunKnown)
}

func runTable(seqs map[string]string, chromosomes []string, kind RunKind) (*Table, error) {
	if chromosomes == nil {
		chromosomes = make([]string, 0, len(seqs))
		for chrom := range seqs {
			chromosomes = append(chromosomes, chrom)
		}
		sort.Strings(chromosomes)
	}

	out := NewTable()
	for _, chrom := range chromosomes {
		seq, ok := seqs[chrom]
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownChromosome,
				"chromosome %q is not present in the supplied sequences", chrom)
		}
		for _, run := range Scan(chrom, seq) {
			if run.Kind != kind {
				continue
			}
			out.Append(Interval{Chrom: run.Chrom, Start: run.Start, End: run.End}, nil)
		}
	}
	return out, nil
}
