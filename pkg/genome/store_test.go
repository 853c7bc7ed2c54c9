package genome

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/genomekit/genomekit/pkg/errors"
	"github.com/genomekit/genomekit/pkg/ucsc"
)

func TestStore_InfoRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	info := ucsc.AssemblyInfo{Organism: "Human", ScientificName: "Homo sapiens", Active: 1}
	if err := s.WriteInfo("hg38", info); err != nil {
		t.Fatalf("WriteInfo() failed: %v", err)
	}

	got, err := s.ReadInfo("hg38")
	if err != nil {
		t.Fatalf("ReadInfo() failed: %v", err)
	}
	if got != info {
		t.Errorf("ReadInfo() = %+v, want %+v", got, info)
	}
}

func TestStore_ChromosomesRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	lengths := map[string]int{"chrI": 230218, "chrM": 85779}
	if err := s.WriteChromosomes("sacCer3", lengths); err != nil {
		t.Fatalf("WriteChromosomes() failed: %v", err)
	}

	got, err := s.ReadChromosomes("sacCer3")
	if err != nil {
		t.Fatalf("ReadChromosomes() failed: %v", err)
	}
	if got["chrI"] != 230218 || got["chrM"] != 85779 {
		t.Errorf("ReadChromosomes() = %v", got)
	}
}

func TestStore_SequenceRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	if s.HasSequence("hg38", "chrM") {
		t.Fatal("HasSequence() = true before write")
	}
	if err := s.WriteSequence("hg38", "chrM", "NNNNACGT"); err != nil {
		t.Fatalf("WriteSequence() failed: %v", err)
	}
	if !s.HasSequence("hg38", "chrM") {
		t.Fatal("HasSequence() = false after write")
	}

	dna, err := s.ReadSequence("hg38", "chrM")
	if err != nil {
		t.Fatalf("ReadSequence() failed: %v", err)
	}
	if dna != "NNNNACGT" {
		t.Errorf("ReadSequence() = %q", dna)
	}
}

func TestStore_CorruptSequenceRemoved(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.WriteSequence("hg38", "chr1", "ACGT"); err != nil {
		t.Fatalf("WriteSequence() failed: %v", err)
	}

	path := filepath.Join(s.Dir(), "hg38", "chromosomes", "chr1.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ReadSequence("hg38", "chr1"); err == nil {
		t.Fatal("ReadSequence() succeeded on corrupt file")
	}
	if s.HasSequence("hg38", "chr1") {
		t.Error("corrupt sequence file was not removed")
	}
}

func TestStore_Assemblies(t *testing.T) {
	s := NewStore(t.TempDir())

	if got, err := s.Assemblies(); err != nil || got != nil {
		t.Fatalf("Assemblies() on empty store = %v, %v", got, err)
	}

	for _, asm := range []string{"sacCer3", "hg38"} {
		if err := s.WriteChromosomes(asm, map[string]int{"chr1": 10}); err != nil {
			t.Fatal(err)
		}
	}
	// A stray directory without metadata is not an assembly.
	if err := os.MkdirAll(filepath.Join(s.Dir(), "junk"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := s.Assemblies()
	if err != nil {
		t.Fatalf("Assemblies() failed: %v", err)
	}
	if !slices.Equal(got, []string{"hg38", "sacCer3"}) {
		t.Errorf("Assemblies() = %v", got)
	}
}

func TestStore_Delete(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.WriteChromosomes("hg38", map[string]int{"chr1": 10}); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete("hg38"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if s.Has("hg38") {
		t.Error("assembly still present after Delete()")
	}

	err := s.Delete("hg38")
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("second Delete() = %v, want NOT_FOUND", err)
	}
}
