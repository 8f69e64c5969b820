// Package dataset provides the read-only record sources a labeling
// session pages through.
package dataset

// Row maps a column name to its displayable cell value.
type Row map[string]string

// Source is an ordered, indexable collection of rows. Rows are
// addressed by integer key; a Source is never mutated by the session.
type Source interface {
	// Columns returns the column names in display order.
	Columns() []string
	// Keys returns every row key in natural order.
	Keys() []int
	// Row returns the row for key, or false when the key is unknown.
	Row(key int) (Row, bool)
	// Len returns the number of rows.
	Len() int
}

// Table is an in-memory Source. Keys are the row positions 0..Len-1.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable builds a Table over the given columns and rows. Cells
// missing from a row render as empty strings.
func NewTable(columns []string, rows []Row) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		rows:    make([]Row, len(rows)),
	}
	for i, r := range rows {
		row := make(Row, len(columns))
		for _, c := range t.columns {
			row[c] = r[c]
		}
		t.rows[i] = row
	}
	return t
}

func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *Table) Keys() []int {
	keys := make([]int, len(t.rows))
	for i := range t.rows {
		keys[i] = i
	}
	return keys
}

func (t *Table) Row(key int) (Row, bool) {
	if key < 0 || key >= len(t.rows) {
		return nil, false
	}
	return t.rows[key], true
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Cell returns the value at (key, column), or "" when either is unknown.
func (t *Table) Cell(key int, column string) string {
	row, ok := t.Row(key)
	if !ok {
		return ""
	}
	return row[column]
}
