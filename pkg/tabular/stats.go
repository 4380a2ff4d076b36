package tabular

import (
	"sort"
	"strconv"
	"strings"
)

// NullCount returns the number of missing cells in the named column.
func (t *Table) NullCount(name string) (int, error) {
	idx, ok := t.columnIndex(name)
	if !ok {
		return 0, ErrColumnNotFound
	}
	count := 0
	for _, row := range t.rows {
		if IsMissing(row[idx]) {
			count++
		}
	}
	return count, nil
}

// MissingCells returns the total number of missing cells in the table.
func (t *Table) MissingCells() int {
	total := 0
	for _, row := range t.rows {
		for _, cell := range row {
			if IsMissing(cell) {
				total++
			}
		}
	}
	return total
}

// ValueCounts returns (value, frequency) pairs for the named column,
// missing cells excluded, sorted by count descending then value ascending.
func (t *Table) ValueCounts(name string) ([]ValueCount, error) {
	idx, ok := t.columnIndex(name)
	if !ok {
		return nil, ErrColumnNotFound
	}

	counts := make(map[string]int)
	for _, row := range t.rows {
		cell := strings.TrimSpace(row[idx])
		if IsMissing(cell) {
			continue
		}
		counts[cell]++
	}

	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}

// NumericValues returns the parseable numeric values of the named column,
// missing cells excluded.
func (t *Table) NumericValues(name string) ([]float64, error) {
	idx, ok := t.columnIndex(name)
	if !ok {
		return nil, ErrColumnNotFound
	}

	values := make([]float64, 0, len(t.rows))
	for _, row := range t.rows {
		cell := strings.TrimSpace(row[idx])
		if IsMissing(cell) {
			continue
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		values = append(values, f)
	}
	return values, nil
}

// IsNumeric reports whether every non-missing cell in the column parses as
// a number and the column has at least one such value.
func (t *Table) IsNumeric(name string) bool {
	idx, ok := t.columnIndex(name)
	if !ok {
		return false
	}

	seen := false
	for _, row := range t.rows {
		cell := strings.TrimSpace(row[idx])
		if IsMissing(cell) {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

// Mean returns the arithmetic mean of a numeric column. The second return
// is false when the column has no numeric values.
func (t *Table) Mean(name string) (float64, bool) {
	values, err := t.NumericValues(name)
	if err != nil || len(values) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}
