package http

import (
	"community-support-platform/internal/chart"
)

// --- Request DTOs ---

type renderReq struct {
	DatasetID string
	Column    string `form:"column" binding:"required"`
	Bins      int    `form:"bins"`
}

func (r renderReq) toInput() chart.RenderInput {
	return chart.RenderInput{
		DatasetID: r.DatasetID,
		Column:    r.Column,
		Bins:      r.Bins,
	}
}

// --- Response DTOs ---

type chartResp struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Column string   `json:"column"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	XLabel string   `json:"x_label"`
	YLabel string   `json:"y_label"`
}

func (h *handler) newChartResp(out chart.RenderOutput) chartResp {
	return chartResp{
		Type:   string(out.Chart.Type),
		Title:  out.Chart.Title,
		Column: out.Chart.Column,
		Labels: out.Chart.Labels,
		Values: out.Chart.Values,
		XLabel: out.Chart.XLabel,
		YLabel: out.Chart.YLabel,
	}
}

type summaryResp struct {
	TotalRecords   int      `json:"total_records"`
	ColumnCount    int      `json:"column_count"`
	CompletedCount *int     `json:"completed_count,omitempty"`
	AverageAge     *float64 `json:"average_age,omitempty"`
}

func (h *handler) newSummaryResp(out chart.SummaryOutput) summaryResp {
	return summaryResp{
		TotalRecords:   out.Summary.TotalRecords,
		ColumnCount:    out.Summary.ColumnCount,
		CompletedCount: out.Summary.CompletedCount,
		AverageAge:     out.Summary.AverageAge,
	}
}
