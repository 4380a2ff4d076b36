package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// missingMarkers are cell values treated as missing, matching the markers
// pandas recognizes on read_csv.
var missingMarkers = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

// IsMissing reports whether a cell value counts as a missing value.
func IsMissing(cell string) bool {
	_, ok := missingMarkers[strings.ToLower(strings.TrimSpace(cell))]
	return ok
}

// Parse reads CSV from r into a Table. The first record is the header.
// Rows shorter than the header are padded with empty cells; longer rows
// are an error.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &Table{columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				ErrMalformed, len(t.rows)+2, len(record), len(header))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		t.rows = append(t.rows, record)
	}

	return t, nil
}
