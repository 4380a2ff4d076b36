package usecase

import (
	"community-support-platform/internal/dataset"
	"community-support-platform/pkg/tabular"
)

// Completeness thresholds for the severity hint.
const (
	completenessOK   = 95.0
	completenessWarn = 80.0
)

// buildQualityReport computes missing-cell statistics for the table.
func (uc *implUseCase) buildQualityReport(table *tabular.Table) dataset.QualityReport {
	columns := table.Columns()
	totalCells := table.RowCount() * len(columns)
	missing := table.MissingCells()

	completeness := 100.0
	if totalCells > 0 {
		completeness = float64(totalCells-missing) / float64(totalCells) * 100.0
	}

	severity := dataset.SeverityPoor
	switch {
	case completeness >= completenessOK:
		severity = dataset.SeverityOK
	case completeness >= completenessWarn:
		severity = dataset.SeverityWarn
	}

	columnNulls := make([]dataset.ColumnNulls, 0, len(columns))
	for _, col := range columns {
		nulls, err := table.NullCount(col)
		if err != nil {
			continue
		}
		columnNulls = append(columnNulls, dataset.ColumnNulls{
			Column: col,
			Nulls:  nulls,
		})
	}

	return dataset.QualityReport{
		TotalCells:   totalCells,
		MissingCells: missing,
		Completeness: completeness,
		Severity:     severity,
		ColumnNulls:  columnNulls,
	}
}
