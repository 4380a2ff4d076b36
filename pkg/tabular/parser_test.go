package tabular

import (
	"errors"
	"strings"
	"testing"
)

const participantsCSV = `Name,Age,Program,Status
John Smith,25,Job Training,Active
Sarah Jones,34,Youth Mentoring,Completed
Mike Davis,19,Food Assistance,Active
Ana Lopez,,Job Training,Active
Tom Reed,41,Job Training,
`

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(participantsCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cols := table.Columns()
	want := []string{"Name", "Age", "Program", "Status"}
	if len(cols) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(cols))
	}
	for i, c := range want {
		if cols[i] != c {
			t.Errorf("column %d: expected %q, got %q", i, c, cols[i])
		}
	}

	if table.RowCount() != 5 {
		t.Errorf("expected 5 rows, got %d", table.RowCount())
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestParse_ShortRowPadded(t *testing.T) {
	table, err := Parse(strings.NewReader("A,B,C\n1,2\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	rows := table.Rows(0)
	if len(rows[0]) != 3 {
		t.Fatalf("expected padded row of 3 cells, got %d", len(rows[0]))
	}
	if rows[0][2] != "" {
		t.Errorf("expected empty padding cell, got %q", rows[0][2])
	}
}

func TestParse_LongRowRejected(t *testing.T) {
	_, err := Parse(strings.NewReader("A,B\n1,2,3\n"))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestRows_Limit(t *testing.T) {
	table, err := Parse(strings.NewReader(participantsCSV))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := len(table.Rows(2)); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
	if got := len(table.Rows(100)); got != 5 {
		t.Errorf("expected all 5 rows for oversized limit, got %d", got)
	}
	if got := len(table.Rows(0)); got != 5 {
		t.Errorf("expected all 5 rows for limit 0, got %d", got)
	}
}

func TestIsMissing(t *testing.T) {
	cases := []struct {
		cell string
		want bool
	}{
		{"", true},
		{"  ", true},
		{"NA", true},
		{"n/a", true},
		{"NULL", true},
		{"None", true},
		{"NaN", true},
		{"0", false},
		{"Active", false},
	}
	for _, tc := range cases {
		if got := IsMissing(tc.cell); got != tc.want {
			t.Errorf("IsMissing(%q) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}
