package genome

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/genomekit/genomekit/pkg/errors"
	"github.com/genomekit/genomekit/pkg/ucsc"
)

// fakeFetcher serves a single in-memory assembly.
type fakeFetcher struct {
	assembly string
	info     ucsc.AssemblyInfo
	seqs     map[string]string

	sequenceCalls atomic.Int32
}

func (f *fakeFetcher) Assembly(ctx context.Context, assembly string, refresh bool) (ucsc.AssemblyInfo, error) {
	if assembly != f.assembly {
		return ucsc.AssemblyInfo{}, fmt.Errorf("%w: assembly %s", ucsc.ErrNotFound, assembly)
	}
	return f.info, nil
}

func (f *fakeFetcher) Chromosomes(ctx context.Context, assembly string, refresh bool) (map[string]int, error) {
	if assembly != f.assembly {
		return nil, fmt.Errorf("%w: assembly %s", ucsc.ErrNotFound, assembly)
	}
	lengths := make(map[string]int, len(f.seqs))
	for chrom, seq := range f.seqs {
		lengths[chrom] = len(seq)
	}
	return lengths, nil
}

func (f *fakeFetcher) Sequence(ctx context.Context, assembly, chrom string, start, end int) (string, error) {
	f.sequenceCalls.Add(1)
	seq, ok := f.seqs[chrom]
	if !ok {
		return "", fmt.Errorf("%w: chromosome %s", ucsc.ErrNotFound, chrom)
	}
	return seq[start:end], nil
}

func testFetcher() *fakeFetcher {
	return &fakeFetcher{
		assembly: "sacCer3",
		info:     ucsc.AssemblyInfo{Organism: "S. cerevisiae", Active: 1},
		seqs: map[string]string{
			"chrI":             "NNNNACGTNNACGT",
			"chrII":            "ACGTACGT",
			"chrUn_scaffold12": "ACGT",
		},
	}
}

func TestOpen_DownloadsAndFilters(t *testing.T) {
	f := testFetcher()
	store := NewStore(t.TempDir())

	g, err := Open(context.Background(), f, store, "sacCer3", Options{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if got := g.Chromosomes(); !slices.Equal(got, []string{"chrI", "chrII"}) {
		t.Errorf("Chromosomes() = %v, want filtered [chrI chrII]", got)
	}
	if n, ok := g.Length("chrI"); !ok || n != 14 {
		t.Errorf("Length(chrI) = %d, %v", n, ok)
	}
	seq, err := g.Sequence("chrII")
	if err != nil || seq != "ACGTACGT" {
		t.Errorf("Sequence(chrII) = %q, %v", seq, err)
	}
	if !g.IsCached("chrI") || !g.IsCached("chrII") {
		t.Error("downloaded chromosomes not in store")
	}
	if g.IsCached("chrUn_scaffold12") {
		t.Error("filtered chromosome was downloaded")
	}
}

func TestOpen_SecondOpenHitsStore(t *testing.T) {
	f := testFetcher()
	store := NewStore(t.TempDir())
	ctx := context.Background()

	if _, err := Open(ctx, f, store, "sacCer3", Options{}); err != nil {
		t.Fatalf("first Open() failed: %v", err)
	}
	first := f.sequenceCalls.Load()

	if _, err := Open(ctx, f, store, "sacCer3", Options{}); err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	if got := f.sequenceCalls.Load(); got != first {
		t.Errorf("second Open() downloaded %d chromosomes, want 0", got-first)
	}
}

func TestOpen_ExplicitChromosomesBypassFilters(t *testing.T) {
	f := testFetcher()
	store := NewStore(t.TempDir())

	g, err := Open(context.Background(), f, store, "sacCer3", Options{
		Chromosomes: []string{"chrUn_scaffold12"},
	})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if got := g.Chromosomes(); !slices.Equal(got, []string{"chrUn_scaffold12"}) {
		t.Errorf("Chromosomes() = %v", got)
	}
}

func TestOpen_UnknownChromosome(t *testing.T) {
	f := testFetcher()
	store := NewStore(t.TempDir())

	_, err := Open(context.Background(), f, store, "sacCer3", Options{
		Chromosomes: []string{"chrXX"},
	})
	if !errors.Is(err, errors.ErrCodeUnknownChromosome) {
		t.Fatalf("Open() = %v, want UNKNOWN_CHROMOSOME", err)
	}
}

func TestOpen_UnknownAssembly(t *testing.T) {
	f := testFetcher()
	store := NewStore(t.TempDir())

	_, err := Open(context.Background(), f, store, "hg1", Options{})
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Fatalf("Open() = %v, want NOT_FOUND", err)
	}
}

func TestOpen_AllChromosomesFilteredOut(t *testing.T) {
	f := &fakeFetcher{
		assembly: "frags1",
		seqs:     map[string]string{"chrUn_a": "ACGT", "Scaffold_1": "ACGT"},
	}
	store := NewStore(t.TempDir())

	_, err := Open(context.Background(), f, store, "frags1", Options{})
	if !errors.Is(err, errors.ErrCodeInvalidAssembly) {
		t.Fatalf("Open() = %v, want INVALID_ASSEMBLY", err)
	}
}

func TestOpen_InvalidAssemblyName(t *testing.T) {
	f := testFetcher()
	store := NewStore(t.TempDir())

	_, err := Open(context.Background(), f, store, "../etc", Options{})
	if !errors.Is(err, errors.ErrCodeInvalidAssembly) {
		t.Fatalf("Open() = %v, want INVALID_ASSEMBLY", err)
	}
}

func TestGenome_GapsAndExtract(t *testing.T) {
	f := testFetcher()
	store := NewStore(t.TempDir())

	g, err := Open(context.Background(), f, store, "sacCer3", Options{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	gaps, err := g.Gaps("chrI")
	if err != nil {
		t.Fatalf("Gaps() failed: %v", err)
	}
	if gaps.Len() != 2 {
		t.Fatalf("Gaps() returned %d rows, want 2", gaps.Len())
	}

	seqs, err := g.ExtractSequences(gaps)
	if err != nil {
		t.Fatalf("ExtractSequences() failed: %v", err)
	}
	if !slices.Equal(seqs, []string{"NNNN", "NN"}) {
		t.Errorf("ExtractSequences() = %v", seqs)
	}
}

func TestGenome_Delete(t *testing.T) {
	f := testFetcher()
	store := NewStore(t.TempDir())

	g, err := Open(context.Background(), f, store, "sacCer3", Options{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := g.Delete(); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if store.Has("sacCer3") {
		t.Error("store still has assembly after Delete()")
	}
	// In-memory sequences survive deletion.
	if _, err := g.Sequence("chrI"); err != nil {
		t.Errorf("Sequence() after Delete() failed: %v", err)
	}
}

func TestOpen_DownloadFailurePropagates(t *testing.T) {
	f := &fakeFetcher{
		assembly: "bad1",
		seqs:     map[string]string{"chr1": "ACGT"},
	}
	store := NewStore(t.TempDir())

	// Metadata lists a chromosome the sequence endpoint cannot serve.
	if err := store.WriteInfo("bad1", ucsc.AssemblyInfo{}); err != nil {
		t.Fatal(err)
	}
	if err := store.WriteChromosomes("bad1", map[string]int{"chr1": 4, "chr2": 4}); err != nil {
		t.Fatal(err)
	}

	_, err := Open(context.Background(), f, store, "bad1", Options{})
	if err == nil {
		t.Fatal("Open() succeeded despite failing download")
	}
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Open() = %v, want NOT_FOUND", err)
	}
}
