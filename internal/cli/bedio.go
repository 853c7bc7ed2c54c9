package cli

import (
	"io"
	"os"

	"github.com/genomekit/genomekit/pkg/bed"
	"github.com/genomekit/genomekit/pkg/errors"
)

// readBed loads a BED table from path, or from stdin when path is "-".
func readBed(path string) (*bed.Table, error) {
	if path == "-" {
		return bed.ReadTable(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "opening %s", path)
	}
	defer f.Close()
	return bed.ReadTable(f)
}

// withOutput runs fn against the file at path, or stdout when path is empty.
func withOutput(path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "creating %s", path)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "closing %s", path)
	}
	printFile(path)
	return nil
}
