package usecase

import (
	"context"
	"fmt"

	"community-support-platform/internal/chart"
	"community-support-platform/pkg/tabular"
)

// Render builds a chart payload for one column of a stored dataset.
func (uc *implUseCase) Render(ctx context.Context, input chart.RenderInput) (chart.RenderOutput, error) {
	ds, ok := uc.repo.Get(ctx, input.DatasetID)
	if !ok {
		return chart.RenderOutput{}, chart.ErrDatasetNotFound
	}

	table := ds.Table
	if !hasColumn(table, input.Column) {
		return chart.RenderOutput{}, chart.ErrColumnNotFound
	}

	if table.IsNumeric(input.Column) {
		return chart.RenderOutput{Chart: histogram(table, input.Column, input.Bins)}, nil
	}
	return chart.RenderOutput{Chart: barChart(table, input.Column)}, nil
}

func hasColumn(table *tabular.Table, name string) bool {
	for _, c := range table.Columns() {
		if c == name {
			return true
		}
	}
	return false
}

// histogram bins the column's numeric values into equal-width intervals
// over [min, max].
func histogram(table *tabular.Table, column string, bins int) chart.Chart {
	if bins <= 0 {
		bins = chart.DefaultBins
	}

	values, _ := table.NumericValues(column)
	out := chart.Chart{
		Type:   chart.TypeHistogram,
		Title:  fmt.Sprintf("Distribution of %s", column),
		Column: column,
		XLabel: column,
		YLabel: "Count",
	}
	if len(values) == 0 {
		return out
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	// A constant column collapses to a single bin.
	if min == max {
		out.Labels = []string{formatBinLabel(min, max)}
		out.Values = []int{len(values)}
		return out
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	labels := make([]string, bins)
	for i := 0; i < bins; i++ {
		lo := min + float64(i)*width
		hi := lo + width
		labels[i] = formatBinLabel(lo, hi)
	}

	out.Labels = labels
	out.Values = counts
	return out
}

// barChart counts value frequencies; tabular.ValueCounts already sorts by
// count descending with label ties broken alphabetically.
func barChart(table *tabular.Table, column string) chart.Chart {
	counts, _ := table.ValueCounts(column)

	labels := make([]string, len(counts))
	values := make([]int, len(counts))
	for i, vc := range counts {
		labels[i] = vc.Value
		values[i] = vc.Count
	}

	return chart.Chart{
		Type:   chart.TypeBar,
		Title:  fmt.Sprintf("Distribution of %s", column),
		Column: column,
		Labels: labels,
		Values: values,
		XLabel: column,
		YLabel: "Count",
	}
}

func formatBinLabel(lo, hi float64) string {
	return fmt.Sprintf("%.1f–%.1f", lo, hi)
}
