package usecase

import (
	"context"
	"strings"

	"community-support-platform/internal/chart"
)

// Summary computes the quick stats shown above the chart: record and
// column counts, plus completed-participant count and average age when the
// dataset carries the matching columns.
func (uc *implUseCase) Summary(ctx context.Context, input chart.SummaryInput) (chart.SummaryOutput, error) {
	ds, ok := uc.repo.Get(ctx, input.DatasetID)
	if !ok {
		return chart.SummaryOutput{}, chart.ErrDatasetNotFound
	}

	table := ds.Table
	summary := chart.Summary{
		TotalRecords: table.RowCount(),
		ColumnCount:  len(table.Columns()),
	}

	if statusCol, ok := findColumn(table.Columns(), "status"); ok {
		completed := 0
		counts, err := table.ValueCounts(statusCol)
		if err == nil {
			for _, vc := range counts {
				if strings.EqualFold(vc.Value, "Completed") {
					completed += vc.Count
				}
			}
		}
		summary.CompletedCount = &completed
	}

	if ageCol, ok := findColumn(table.Columns(), "age"); ok {
		if mean, ok := table.Mean(ageCol); ok {
			summary.AverageAge = &mean
		}
	}

	return chart.SummaryOutput{Summary: summary}, nil
}

// findColumn locates a column by case-insensitive name.
func findColumn(columns []string, name string) (string, bool) {
	for _, c := range columns {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}
