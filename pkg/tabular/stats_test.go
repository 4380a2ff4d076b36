package tabular

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func mustParse(t *testing.T, csv string) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return table
}

func TestNullCount(t *testing.T) {
	table := mustParse(t, participantsCSV)

	age, err := table.NullCount("Age")
	if err != nil {
		t.Fatalf("NullCount failed: %v", err)
	}
	if age != 1 {
		t.Errorf("expected 1 missing Age, got %d", age)
	}

	status, _ := table.NullCount("Status")
	if status != 1 {
		t.Errorf("expected 1 missing Status, got %d", status)
	}

	if _, err := table.NullCount("Nope"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestMissingCells(t *testing.T) {
	table := mustParse(t, participantsCSV)
	if got := table.MissingCells(); got != 2 {
		t.Errorf("expected 2 missing cells, got %d", got)
	}
}

func TestValueCounts(t *testing.T) {
	table := mustParse(t, participantsCSV)

	counts, err := table.ValueCounts("Program")
	if err != nil {
		t.Fatalf("ValueCounts failed: %v", err)
	}

	if len(counts) != 3 {
		t.Fatalf("expected 3 distinct programs, got %d", len(counts))
	}
	if counts[0].Value != "Job Training" || counts[0].Count != 3 {
		t.Errorf("expected Job Training x3 first, got %s x%d", counts[0].Value, counts[0].Count)
	}
	// Remaining two tie at 1; order must be deterministic (value ascending).
	if counts[1].Value != "Food Assistance" || counts[2].Value != "Youth Mentoring" {
		t.Errorf("tie order not deterministic: %v", counts)
	}
}

func TestValueCounts_SkipsMissing(t *testing.T) {
	table := mustParse(t, participantsCSV)
	counts, _ := table.ValueCounts("Status")
	total := 0
	for _, vc := range counts {
		total += vc.Count
	}
	if total != 4 {
		t.Errorf("expected 4 counted statuses (1 missing), got %d", total)
	}
}

func TestNumericValues(t *testing.T) {
	table := mustParse(t, participantsCSV)

	values, err := table.NumericValues("Age")
	if err != nil {
		t.Fatalf("NumericValues failed: %v", err)
	}
	if len(values) != 4 {
		t.Errorf("expected 4 ages, got %d", len(values))
	}
}

func TestIsNumeric(t *testing.T) {
	table := mustParse(t, participantsCSV)

	if !table.IsNumeric("Age") {
		t.Error("Age should be numeric despite a missing cell")
	}
	if table.IsNumeric("Program") {
		t.Error("Program should not be numeric")
	}
	if table.IsNumeric("Nope") {
		t.Error("unknown column should not be numeric")
	}
}

func TestMean(t *testing.T) {
	table := mustParse(t, participantsCSV)

	mean, ok := table.Mean("Age")
	if !ok {
		t.Fatal("expected a mean for Age")
	}
	want := (25.0 + 34 + 19 + 41) / 4
	if math.Abs(mean-want) > 1e-9 {
		t.Errorf("expected mean %.2f, got %.2f", want, mean)
	}

	if _, ok := table.Mean("Name"); ok {
		t.Error("expected no mean for non-numeric column")
	}
}
