package chart

import "context"

// UseCase defines the business logic interface for the chart domain.
type UseCase interface {
	// Render builds a chart payload for one column: a histogram when the
	// column is numeric, a bar chart of value frequencies otherwise.
	Render(ctx context.Context, input RenderInput) (RenderOutput, error)

	// Summary computes the quick stats for a dataset.
	Summary(ctx context.Context, input SummaryInput) (SummaryOutput, error)
}
