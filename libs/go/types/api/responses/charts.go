package responses

import "github.com/cyphera/store-admin/libs/go/types/business"

// PrepareChartResponse is the derived metadata for a chart dataset
type PrepareChartResponse struct {
	OrderedKeys     []business.SeriesDescriptor `json:"ordered_keys"`
	UniqueDates     []string                    `json:"unique_dates"`
	IsEmpty         bool                        `json:"is_empty"`
	FormattedTotals map[string]string           `json:"formatted_totals,omitempty"`
	FormattedDates  []string                    `json:"formatted_dates,omitempty"`
}

// NewPrepareChartResponse converts a prepared chart into its API form
func NewPrepareChartResponse(chart *business.PreparedChart) PrepareChartResponse {
	return PrepareChartResponse{
		OrderedKeys:     chart.OrderedKeys,
		UniqueDates:     chart.UniqueDates,
		IsEmpty:         chart.IsEmpty,
		FormattedTotals: chart.FormattedTotals,
		FormattedDates:  chart.FormattedDates,
	}
}
