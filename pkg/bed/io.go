package bed

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/genomekit/genomekit/pkg/errors"
)

// standardColumns names the optional BED columns after the interval triple,
// used when a file carries no header.
var standardColumns = []string{
	"name", "score", "strand", "thickStart", "thickEnd",
	"itemRgb", "blockCount", "blockSizes", "blockStarts",
}

// ReadTable parses a tab-separated bed-like stream into a Table.
//
// The first three columns must be chrom, chromStart and chromEnd; any
// further columns are carried as passthrough values. A leading comment line
// of the form "#chrom<TAB>chromStart<TAB>chromEnd<TAB>..." names the
// passthrough columns; without one, standard BED column names are assumed.
// "track" and "browser" lines and blank lines are skipped.
//
// Rows with malformed coordinates fail with INVALID_BED; rows violating the
// interval invariant fail with INVALID_INTERVAL. Parsing stops at the first
// bad row.
func ReadTable(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	t := NewTable()
	var header []string
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if header == nil && len(t.Rows) == 0 {
				header = strings.Split(strings.TrimPrefix(line, "#"), "\t")
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, errors.New(errors.ErrCodeInvalidBed,
				"line %d: expected at least 3 tab-separated columns, got %d", lineNo, len(fields))
		}

		start, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBed, err, "line %d: bad chromStart %q", lineNo, fields[1])
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidBed, err, "line %d: bad chromEnd %q", lineNo, fields[2])
		}
		iv, err := NewInterval(fields[0], start, end)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		var extra map[string]string
		if len(fields) > 3 {
			extra = make(map[string]string, len(fields)-3)
			for i, value := range fields[3:] {
				name := columnName(header, i)
				extra[name] = value
				if !slices.Contains(t.ExtraCols, name) {
					t.ExtraCols = append(t.ExtraCols, name)
				}
			}
		}
		t.Append(iv, extra)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidBed, err, "reading bed input")
	}
	return t, nil
}

// WriteTable writes the table as tab-separated bed-like text. When the
// table has passthrough columns, a "#"-prefixed header line records their
// order so the output round-trips through [ReadTable].
func WriteTable(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	if len(t.ExtraCols) > 0 {
		cols := append([]string{"chrom", "chromStart", "chromEnd"}, t.ExtraCols...)
		if _, err := fmt.Fprintf(bw, "#%s\n", strings.Join(cols, "\t")); err != nil {
			return err
		}
	}

	for _, row := range t.Rows {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d", row.Chrom, row.Start, row.End); err != nil {
			return err
		}
		for _, col := range t.ExtraCols {
			if _, err := fmt.Fprintf(bw, "\t%s", row.Extra[col]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// columnName resolves the name of the i-th passthrough column, preferring
// the parsed header, then the standard BED names, then a positional name.
func columnName(header []string, i int) string {
	if len(header) > i+3 {
		return header[i+3]
	}
	if i < len(standardColumns) {
		return standardColumns[i]
	}
	return fmt.Sprintf("col%d", i+4)
}
