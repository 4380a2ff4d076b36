package chart

// Type is the kind of chart the frontend should draw.
type Type string

const (
	TypeHistogram Type = "histogram" // numeric columns
	TypeBar       Type = "bar"       // categorical columns
)

// DefaultBins is the histogram bin count when none is requested.
const DefaultBins = 10

// Chart is a renderable payload. Drawing is the frontend's business; this
// is just labels and values.
type Chart struct {
	Type   Type
	Title  string
	Column string
	Labels []string
	Values []int
	XLabel string
	YLabel string
}

// Summary holds the quick stats shown above the chart.
type Summary struct {
	TotalRecords   int
	ColumnCount    int
	CompletedCount *int     // present when the dataset has a Status column
	AverageAge     *float64 // present when the dataset has a numeric Age column
}

// --- UseCase Inputs ---

type RenderInput struct {
	DatasetID string
	Column    string
	Bins      int
}

type SummaryInput struct {
	DatasetID string
}

// --- UseCase Outputs ---

type RenderOutput struct {
	Chart Chart
}

type SummaryOutput struct {
	Summary Summary
}
