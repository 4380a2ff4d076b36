package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"community-support-platform/internal/chart"
	"community-support-platform/internal/dataset"
	"community-support-platform/pkg/tabular"
)

type mockRepository struct {
	datasets map[string]dataset.Dataset
}

func (m *mockRepository) Save(ctx context.Context, ds dataset.Dataset) error {
	m.datasets[ds.ID] = ds
	return nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (dataset.Dataset, bool) {
	ds, ok := m.datasets[id]
	return ds, ok
}

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func mustTable(t *testing.T, csv string) *tabular.Table {
	t.Helper()
	table, err := tabular.Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return table
}

func newTestUseCase(t *testing.T, csv string) *implUseCase {
	t.Helper()
	repo := &mockRepository{datasets: map[string]dataset.Dataset{
		"ds-1": {ID: "ds-1", Table: mustTable(t, csv)},
	}}
	return New(nopLogger{}, repo)
}

func TestRender_Histogram(t *testing.T) {
	// Ages 10..19: two equal-width bins of five values each.
	uc := newTestUseCase(t, "Age\n10\n11\n12\n13\n14\n15\n16\n17\n18\n19\n")

	out, err := uc.Render(context.Background(), chart.RenderInput{
		DatasetID: "ds-1",
		Column:    "Age",
		Bins:      2,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	c := out.Chart
	if c.Type != chart.TypeHistogram {
		t.Fatalf("expected histogram, got %s", c.Type)
	}
	if len(c.Values) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(c.Values))
	}
	if c.Values[0] != 5 || c.Values[1] != 5 {
		t.Errorf("expected counts [5 5], got %v", c.Values)
	}
	if c.Labels[0] != "10.0–14.5" || c.Labels[1] != "14.5–19.0" {
		t.Errorf("unexpected bin labels %v", c.Labels)
	}
	total := 0
	for _, v := range c.Values {
		total += v
	}
	if total != 10 {
		t.Errorf("bin counts must sum to the value count, got %d", total)
	}
}

func TestRender_HistogramDefaultBins(t *testing.T) {
	uc := newTestUseCase(t, "Age\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n")

	out, err := uc.Render(context.Background(), chart.RenderInput{
		DatasetID: "ds-1",
		Column:    "Age",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(out.Chart.Values) != chart.DefaultBins {
		t.Errorf("expected %d default bins, got %d", chart.DefaultBins, len(out.Chart.Values))
	}
}

func TestRender_HistogramConstantColumn(t *testing.T) {
	uc := newTestUseCase(t, "Age\n7\n7\n7\n")

	out, err := uc.Render(context.Background(), chart.RenderInput{
		DatasetID: "ds-1",
		Column:    "Age",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(out.Chart.Values) != 1 || out.Chart.Values[0] != 3 {
		t.Errorf("constant column should collapse to one bin of 3, got %v", out.Chart.Values)
	}
}

func TestRender_BarChart(t *testing.T) {
	uc := newTestUseCase(t, "Program\nJob Training\nFood Assistance\nJob Training\nYouth Mentoring\nJob Training\nFood Assistance\n")

	out, err := uc.Render(context.Background(), chart.RenderInput{
		DatasetID: "ds-1",
		Column:    "Program",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	c := out.Chart
	if c.Type != chart.TypeBar {
		t.Fatalf("expected bar chart, got %s", c.Type)
	}
	wantLabels := []string{"Job Training", "Food Assistance", "Youth Mentoring"}
	wantValues := []int{3, 2, 1}
	for i := range wantLabels {
		if c.Labels[i] != wantLabels[i] || c.Values[i] != wantValues[i] {
			t.Errorf("position %d: expected %s=%d, got %s=%d",
				i, wantLabels[i], wantValues[i], c.Labels[i], c.Values[i])
		}
	}
}

func TestRender_Errors(t *testing.T) {
	uc := newTestUseCase(t, "Age\n1\n")
	ctx := context.Background()

	_, err := uc.Render(ctx, chart.RenderInput{DatasetID: "missing", Column: "Age"})
	if !errors.Is(err, chart.ErrDatasetNotFound) {
		t.Errorf("expected ErrDatasetNotFound, got %v", err)
	}

	_, err = uc.Render(ctx, chart.RenderInput{DatasetID: "ds-1", Column: "Nope"})
	if !errors.Is(err, chart.ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	uc := newTestUseCase(t, `Name,Age,Status
A,20,Active
B,30,Completed
C,40,Completed
D,,On Hold
`)

	out, err := uc.Summary(context.Background(), chart.SummaryInput{DatasetID: "ds-1"})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	s := out.Summary
	if s.TotalRecords != 4 {
		t.Errorf("expected 4 records, got %d", s.TotalRecords)
	}
	if s.ColumnCount != 3 {
		t.Errorf("expected 3 columns, got %d", s.ColumnCount)
	}
	if s.CompletedCount == nil || *s.CompletedCount != 2 {
		t.Errorf("expected 2 completed, got %v", s.CompletedCount)
	}
	if s.AverageAge == nil || *s.AverageAge != 30.0 {
		t.Errorf("expected average age 30, got %v", s.AverageAge)
	}
}

func TestSummary_WithoutOptionalColumns(t *testing.T) {
	uc := newTestUseCase(t, "X,Y\n1,2\n3,4\n")

	out, err := uc.Summary(context.Background(), chart.SummaryInput{DatasetID: "ds-1"})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if out.Summary.CompletedCount != nil {
		t.Error("expected no completed count without a Status column")
	}
	if out.Summary.AverageAge != nil {
		t.Error("expected no average age without an Age column")
	}
}
