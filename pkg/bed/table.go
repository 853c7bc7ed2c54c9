package bed

import "maps"

// Row is one table entry: an interval plus the row's passthrough columns.
// Extra maps column name to its raw string value and is opaque to every
// transform; derived rows receive a copy, never a shared reference.
type Row struct {
	Interval
	Extra map[string]string
}

// clone returns a copy of the row with its own Extra map.
func (r Row) clone() Row {
	return Row{Interval: r.Interval, Extra: maps.Clone(r.Extra)}
}

// withInterval returns a copy of the row with the interval replaced and the
// passthrough columns duplicated.
func (r Row) withInterval(iv Interval) Row {
	return Row{Interval: iv, Extra: maps.Clone(r.Extra)}
}

// Table is an ordered collection of rows sharing a passthrough column
// layout. ExtraCols records the order of the passthrough columns for
// serialization; rows may omit columns, in which case the value is treated
// as empty.
//
// Tables make no sortedness or disjointness assumptions: rows stay in
// insertion order and may overlap.
type Table struct {
	ExtraCols []string
	Rows      []Row
}

// NewTable creates an empty table with the given passthrough column order.
func NewTable(extraCols ...string) *Table {
	return &Table{ExtraCols: extraCols}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Append adds a row with the given interval and passthrough values.
// The extra map is stored as-is; callers that reuse maps should copy first.
func (t *Table) Append(iv Interval, extra map[string]string) {
	t.Rows = append(t.Rows, Row{Interval: iv, Extra: extra})
}

// emptyLike returns a new empty table with the same passthrough column
// layout as t. Transforms use it to build their output.
func (t *Table) emptyLike() *Table {
	cols := make([]string, len(t.ExtraCols))
	copy(cols, t.ExtraCols)
	return &Table{ExtraCols: cols}
}
