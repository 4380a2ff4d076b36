package http

import (
	"time"

	"community-support-platform/internal/dataset"
)

// --- Response DTOs ---

type columnNullsResp struct {
	Column string `json:"column"`
	Nulls  int    `json:"nulls"`
}

type qualityResp struct {
	TotalCells   int               `json:"total_cells"`
	MissingCells int               `json:"missing_cells"`
	Completeness float64           `json:"completeness"`
	Severity     string            `json:"severity"`
	ColumnNulls  []columnNullsResp `json:"column_nulls"`
}

func newQualityResp(q dataset.QualityReport) qualityResp {
	nulls := make([]columnNullsResp, len(q.ColumnNulls))
	for i, cn := range q.ColumnNulls {
		nulls[i] = columnNullsResp{Column: cn.Column, Nulls: cn.Nulls}
	}
	return qualityResp{
		TotalCells:   q.TotalCells,
		MissingCells: q.MissingCells,
		Completeness: q.Completeness,
		Severity:     q.Severity,
		ColumnNulls:  nulls,
	}
}

type uploadResp struct {
	ID          string      `json:"id"`
	Filename    string      `json:"filename"`
	SizeBytes   int64       `json:"size_bytes"`
	RowCount    int         `json:"row_count"`
	ColumnCount int         `json:"column_count"`
	Columns     []string    `json:"columns"`
	Preview     [][]string  `json:"preview"`
	Quality     qualityResp `json:"quality"`
	UploadedAt  time.Time   `json:"uploaded_at"`
}

func (h *handler) newUploadResp(out dataset.UploadOutput) uploadResp {
	cols := out.Dataset.Table.Columns()
	return uploadResp{
		ID:          out.Dataset.ID,
		Filename:    out.Dataset.Filename,
		SizeBytes:   out.Dataset.SizeBytes,
		RowCount:    out.Dataset.Table.RowCount(),
		ColumnCount: len(cols),
		Columns:     cols,
		Preview:     out.Preview,
		Quality:     newQualityResp(out.Quality),
		UploadedAt:  out.Dataset.UploadedAt,
	}
}

func (h *handler) newDetailResp(out dataset.DetailOutput) uploadResp {
	return h.newUploadResp(dataset.UploadOutput(out))
}
