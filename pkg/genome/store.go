package genome

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"github.com/genomekit/genomekit/pkg/errors"
	"github.com/genomekit/genomekit/pkg/ucsc"
)

// Store is the on-disk layout for downloaded assemblies:
//
//	<dir>/<assembly>/info.json
//	<dir>/<assembly>/chromosomes.json
//	<dir>/<assembly>/chromosomes/<chrom>.json
//
// Chromosome files carry the same {"dna": "..."} shape as the UCSC
// sequence endpoint, so a store entry is a verbatim mirror of the API
// response.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// AssemblyDir returns the directory holding one assembly's files.
func (s *Store) AssemblyDir(assembly string) string {
	return filepath.Join(s.dir, assembly)
}

func (s *Store) infoPath(assembly string) string {
	return filepath.Join(s.dir, assembly, "info.json")
}

func (s *Store) chromosomesPath(assembly string) string {
	return filepath.Join(s.dir, assembly, "chromosomes.json")
}

func (s *Store) sequencePath(assembly, chrom string) string {
	return filepath.Join(s.dir, assembly, "chromosomes", chrom+".json")
}

// Has reports whether assembly metadata is present in the store.
func (s *Store) Has(assembly string) bool {
	_, err := os.Stat(s.chromosomesPath(assembly))
	return err == nil
}

// Assemblies lists the assemblies with metadata in the store, sorted.
func (s *Store) Assemblies() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "listing store %s", s.dir)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() && s.Has(e.Name()) {
			out = append(out, e.Name())
		}
	}
	slices.Sort(out)
	return out, nil
}

// ReadInfo loads an assembly's catalog metadata from the store.
func (s *Store) ReadInfo(assembly string) (ucsc.AssemblyInfo, error) {
	var info ucsc.AssemblyInfo
	err := s.readJSON(s.infoPath(assembly), &info)
	return info, err
}

// WriteInfo persists an assembly's catalog metadata.
func (s *Store) WriteInfo(assembly string, info ucsc.AssemblyInfo) error {
	return s.writeJSON(s.infoPath(assembly), info)
}

// ReadChromosomes loads an assembly's chromosome name to length mapping.
func (s *Store) ReadChromosomes(assembly string) (map[string]int, error) {
	var lengths map[string]int
	err := s.readJSON(s.chromosomesPath(assembly), &lengths)
	return lengths, err
}

// WriteChromosomes persists an assembly's chromosome name to length mapping.
func (s *Store) WriteChromosomes(assembly string, lengths map[string]int) error {
	return s.writeJSON(s.chromosomesPath(assembly), lengths)
}

// sequenceFile mirrors the UCSC getData/sequence response body.
type sequenceFile struct {
	DNA string `json:"dna"`
}

// HasSequence reports whether a chromosome's sequence file is present.
func (s *Store) HasSequence(assembly, chrom string) bool {
	_, err := os.Stat(s.sequencePath(assembly, chrom))
	return err == nil
}

// ReadSequence loads one chromosome's sequence. A corrupt file is removed
// from the store so the next open re-downloads it.
func (s *Store) ReadSequence(assembly, chrom string) (string, error) {
	if err := errors.ValidateChromosome(chrom); err != nil {
		return "", err
	}
	path := s.sequencePath(assembly, chrom)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeNotFound, "chromosome %s of %s not in store", chrom, assembly)
		}
		return "", errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}

	var f sequenceFile
	if err := json.Unmarshal(data, &f); err != nil {
		_ = os.Remove(path)
		return "", errors.Wrap(errors.ErrCodeInternal, err, "corrupt sequence file %s removed", path)
	}
	return f.DNA, nil
}

// WriteSequence persists one chromosome's sequence. The chromosome name
// becomes a file name, so path separators in it are rejected.
func (s *Store) WriteSequence(assembly, chrom, dna string) error {
	if err := errors.ValidateChromosome(chrom); err != nil {
		return err
	}
	return s.writeJSON(s.sequencePath(assembly, chrom), sequenceFile{DNA: dna})
}

// Delete removes an assembly and all of its sequence files from the store.
func (s *Store) Delete(assembly string) error {
	dir := s.AssemblyDir(assembly)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return errors.New(errors.ErrCodeNotFound, "assembly %s not in store", assembly)
	}
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "deleting %s", dir)
	}
	return nil
}

func (s *Store) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeNotFound, "%s not in store", path)
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "reading %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "parsing %s", path)
	}
	return nil
}

// writeJSON writes through a uniquely named temp file and renames it into
// place, so a crashed or concurrent write never leaves a torn file behind.
func (s *Store) writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating %s", filepath.Dir(path))
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "renaming %s", tmp)
	}
	return nil
}
