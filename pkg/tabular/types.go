package tabular

import "errors"

var (
	// ErrEmptyInput indicates the input had no header row at all.
	ErrEmptyInput = errors.New("input is empty")

	// ErrMalformed indicates the input is not valid CSV.
	ErrMalformed = errors.New("malformed csv")

	// ErrColumnNotFound indicates the requested column does not exist.
	ErrColumnNotFound = errors.New("column not found")
)

// Table is an immutable in-memory CSV table: a header plus string cells.
// All cells are kept as strings; numeric interpretation is on demand.
type Table struct {
	columns []string
	rows    [][]string
}

// ValueCount is one (value, frequency) pair for a column.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Rows returns up to limit data rows (all rows when limit <= 0).
func (t *Table) Rows(limit int) [][]string {
	if limit <= 0 || limit > len(t.rows) {
		limit = len(t.rows)
	}
	out := make([][]string, limit)
	for i := 0; i < limit; i++ {
		row := make([]string, len(t.rows[i]))
		copy(row, t.rows[i])
		out[i] = row
	}
	return out
}

// columnIndex resolves a column name to its index.
func (t *Table) columnIndex(name string) (int, bool) {
	for i, c := range t.columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}
