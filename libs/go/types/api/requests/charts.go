package requests

import "github.com/cyphera/store-admin/libs/go/types/business"

// PrepareChartRequest represents the request body for preparing chart data
type PrepareChartRequest struct {
	Data        []business.TimeSeriesRecord `json:"data" binding:"required"`
	DateFormat  string                      `json:"date_format,omitempty"`
	BaseValue   float64                     `json:"base_value,omitempty"`
	ValueFormat string                      `json:"value_format,omitempty"`
	LabelFormat string                      `json:"label_format,omitempty"`
}
