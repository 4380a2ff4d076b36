package dataset

import (
	"io"
	"time"

	"community-support-platform/pkg/tabular"
)

// Severity grades a quality report.
const (
	SeverityOK   = "ok"   // completeness >= 95%
	SeverityWarn = "warn" // completeness >= 80%
	SeverityPoor = "poor"
)

// Dataset is one parsed CSV held in memory for the session.
type Dataset struct {
	ID         string
	Filename   string
	SizeBytes  int64
	Table      *tabular.Table
	UploadedAt time.Time
}

// ColumnNulls is the missing-cell count for one column.
type ColumnNulls struct {
	Column string
	Nulls  int
}

// QualityReport summarizes how complete a dataset is.
type QualityReport struct {
	TotalCells   int
	MissingCells int
	Completeness float64
	Severity     string
	ColumnNulls  []ColumnNulls
}

// --- UseCase Inputs ---

type UploadInput struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// --- UseCase Outputs ---

type UploadOutput struct {
	Dataset Dataset
	Preview [][]string
	Quality QualityReport
}

type DetailOutput struct {
	Dataset Dataset
	Preview [][]string
	Quality QualityReport
}
