package genome

import (
	"context"
	stderrors "errors"
	"slices"

	"github.com/genomekit/genomekit/pkg/bed"
	"github.com/genomekit/genomekit/pkg/errors"
	"github.com/genomekit/genomekit/pkg/ucsc"
)

// Fetcher retrieves assembly data from the UCSC API. *ucsc.Client
// satisfies it; tests substitute fakes.
type Fetcher interface {
	Assembly(ctx context.Context, assembly string, refresh bool) (ucsc.AssemblyInfo, error)
	Chromosomes(ctx context.Context, assembly string, refresh bool) (map[string]int, error)
	Sequence(ctx context.Context, assembly, chrom string, start, end int) (string, error)
}

// Options controls how a genome is opened.
type Options struct {
	// Chromosomes selects an explicit set of chromosomes and bypasses
	// Filters. Unknown names are an error.
	Chromosomes []string
	// Filters drops chromosomes whose name contains any of these
	// substrings (case-insensitive). Nil means DefaultFilters; an empty
	// non-nil slice keeps everything.
	Filters []string
	// Refresh bypasses stored metadata and re-fetches it upstream.
	Refresh bool
	// Workers bounds concurrent chromosome downloads.
	Workers int
	// Logger receives download progress lines. Nil discards them.
	Logger func(format string, args ...any)
}

// WithDefaults fills unset fields with defaults.
func (o Options) WithDefaults() Options {
	if o.Filters == nil {
		o.Filters = DefaultFilters
	}
	if o.Workers <= 0 {
		o.Workers = defaultWorkers
	}
	if o.Logger == nil {
		o.Logger = func(string, ...any) {}
	}
	return o
}

// Genome is a fully loaded assembly: catalog metadata, the selected
// chromosomes with their lengths, and their sequences in memory.
type Genome struct {
	assembly string
	info     ucsc.AssemblyInfo
	lengths  map[string]int
	seqs     map[string]string
	store    *Store
}

// Open loads an assembly, downloading whatever the store is missing.
//
// Metadata comes from the store when present (unless opts.Refresh), then
// chromosomes are selected per opts, and any sequence files absent from
// the store are fetched concurrently before everything is loaded into
// memory. An assembly missing upstream yields a NOT_FOUND error; a
// selection that leaves zero chromosomes yields INVALID_ASSEMBLY.
func Open(ctx context.Context, f Fetcher, store *Store, assembly string, opts Options) (*Genome, error) {
	if err := errors.ValidateAssembly(assembly); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	info, lengths, err := loadMetadata(ctx, f, store, assembly, opts.Refresh)
	if err != nil {
		return nil, err
	}

	selected, err := selectChromosomes(lengths, opts)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidAssembly,
			"assembly %s has no chromosomes left after filtering", assembly)
	}

	g := &Genome{
		assembly: assembly,
		info:     info,
		lengths:  make(map[string]int, len(selected)),
		seqs:     make(map[string]string, len(selected)),
		store:    store,
	}
	for _, chrom := range selected {
		g.lengths[chrom] = lengths[chrom]
	}

	if err := g.load(ctx, f, selected, opts); err != nil {
		return nil, err
	}
	return g, nil
}

func loadMetadata(ctx context.Context, f Fetcher, store *Store, assembly string, refresh bool) (ucsc.AssemblyInfo, map[string]int, error) {
	if store.Has(assembly) && !refresh {
		info, err := store.ReadInfo(assembly)
		if err != nil {
			return ucsc.AssemblyInfo{}, nil, err
		}
		lengths, err := store.ReadChromosomes(assembly)
		if err != nil {
			return ucsc.AssemblyInfo{}, nil, err
		}
		return info, lengths, nil
	}

	info, err := f.Assembly(ctx, assembly, refresh)
	if err != nil {
		return ucsc.AssemblyInfo{}, nil, wrapFetchErr(err, "assembly %s", assembly)
	}
	lengths, err := f.Chromosomes(ctx, assembly, refresh)
	if err != nil {
		return ucsc.AssemblyInfo{}, nil, wrapFetchErr(err, "chromosomes of %s", assembly)
	}

	if err := store.WriteInfo(assembly, info); err != nil {
		return ucsc.AssemblyInfo{}, nil, err
	}
	if err := store.WriteChromosomes(assembly, lengths); err != nil {
		return ucsc.AssemblyInfo{}, nil, err
	}
	return info, lengths, nil
}

func selectChromosomes(lengths map[string]int, opts Options) ([]string, error) {
	if len(opts.Chromosomes) == 0 {
		return filterChromosomes(lengths, opts.Filters), nil
	}

	selected := slices.Clone(opts.Chromosomes)
	slices.Sort(selected)
	selected = slices.Compact(selected)
	for _, chrom := range selected {
		if _, ok := lengths[chrom]; !ok {
			return nil, errors.New(errors.ErrCodeUnknownChromosome, "chromosome %s not in assembly", chrom)
		}
	}
	return selected, nil
}

// load fills g.seqs from the store, downloading missing chromosomes first.
func (g *Genome) load(ctx context.Context, f Fetcher, chroms []string, opts Options) error {
	var missing []string
	for _, chrom := range chroms {
		if !g.store.HasSequence(g.assembly, chrom) {
			missing = append(missing, chrom)
		}
	}

	if len(missing) > 0 {
		if err := g.download(ctx, f, missing, opts); err != nil {
			return err
		}
	}

	for _, chrom := range chroms {
		dna, err := g.store.ReadSequence(g.assembly, chrom)
		if err != nil {
			return err
		}
		g.seqs[chrom] = dna
	}
	return nil
}

func wrapFetchErr(err error, format string, args ...any) error {
	switch {
	case errors.GetCode(err) != "":
		return err
	case isNotFound(err):
		return errors.Wrap(errors.ErrCodeNotFound, err, format, args...)
	default:
		return errors.Wrap(errors.ErrCodeNetwork, err, format, args...)
	}
}

func isNotFound(err error) bool {
	return stderrors.Is(err, ucsc.ErrNotFound)
}

// Assembly returns the assembly ID.
func (g *Genome) Assembly() string { return g.assembly }

// Info returns the assembly's catalog metadata.
func (g *Genome) Info() ucsc.AssemblyInfo { return g.info }

// Chromosomes returns the loaded chromosome names, sorted.
func (g *Genome) Chromosomes() []string {
	chroms := make([]string, 0, len(g.lengths))
	for chrom := range g.lengths {
		chroms = append(chroms, chrom)
	}
	slices.Sort(chroms)
	return chroms
}

// Length returns a chromosome's declared length.
func (g *Genome) Length(chrom string) (int, bool) {
	n, ok := g.lengths[chrom]
	return n, ok
}

// Sequence returns a chromosome's nucleotide sequence.
func (g *Genome) Sequence(chrom string) (string, error) {
	seq, ok := g.seqs[chrom]
	if !ok {
		return "", errors.New(errors.ErrCodeUnknownChromosome, "chromosome %s not loaded", chrom)
	}
	return seq, nil
}

// Sequences returns the chromosome to sequence mapping. The map is shared;
// callers must not mutate it.
func (g *Genome) Sequences() map[string]string { return g.seqs }

// IsCached reports whether a chromosome's sequence file is in the store.
func (g *Genome) IsCached(chrom string) bool {
	return g.store.HasSequence(g.assembly, chrom)
}

// Delete removes the assembly from the store. The in-memory sequences
// remain usable.
func (g *Genome) Delete() error {
	return g.store.Delete(g.assembly)
}

// Gaps returns the maximal runs of unknown nucleotides across the loaded
// chromosomes, or across the named subset.
func (g *Genome) Gaps(chromosomes ...string) (*bed.Table, error) {
	return bed.Gaps(g.seqs, chromosomes)
}

// Filled returns the maximal runs of known nucleotides across the loaded
// chromosomes, or across the named subset.
func (g *Genome) Filled(chromosomes ...string) (*bed.Table, error) {
	return bed.Filled(g.seqs, chromosomes)
}

// ExtractSequences returns the nucleotide sequence of each row in t.
func (g *Genome) ExtractSequences(t *bed.Table) ([]string, error) {
	return bed.Extract(t, g.seqs)
}
