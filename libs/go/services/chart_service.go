package services

import (
	"context"

	"github.com/cyphera/store-admin/libs/go/helpers"
	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/cyphera/store-admin/libs/go/types/business"
	"github.com/pkg/errors"
)

// DefaultChartDateFormat is the label format of report intervals
const DefaultChartDateFormat = "%Y-%m-%dT%H:%M:%S"

// ChartService derives chart metadata from time series data
type ChartService struct {
	log *logger.StructuredLogger
}

// NewChartService creates a new chart service
func NewChartService() *ChartService {
	return &ChartService{log: logger.NewStructuredLogger(logger.ComponentCharts)}
}

// Prepare orders the series, lists the distinct dates and checks for an
// empty dataset. Totals and dates are formatted when formats are given.
func (s *ChartService) Prepare(ctx context.Context, params interfaces.ChartPrepareParams) (*business.PreparedChart, error) {
	dateFormat := params.DateFormat
	if dateFormat == "" {
		dateFormat = DefaultChartDateFormat
	}

	var chart *business.PreparedChart
	err := s.log.WithField("records", len(params.Data)).LogOperation("prepare_chart", func() error {
		orderedKeys, err := helpers.GetOrderedKeys(params.Data)
		if err != nil {
			return err
		}

		parse := helpers.NewStrftimeParser(dateFormat)
		dates, err := helpers.GetUniqueDates(params.Data, parse)
		if err != nil {
			return err
		}

		chart = &business.PreparedChart{
			OrderedKeys: orderedKeys,
			UniqueDates: dates,
			IsEmpty:     helpers.IsDataEmpty(params.Data, params.BaseValue),
		}

		if params.ValueFormat != "" {
			format, err := helpers.GetFormatter(params.ValueFormat, nil)
			if err != nil {
				return err
			}
			chart.FormattedTotals = make(map[string]string, len(orderedKeys))
			for _, d := range orderedKeys {
				chart.FormattedTotals[d.Key] = format(d.Total)
			}
		}

		if params.LabelFormat != "" {
			format := helpers.GetTimeFormatter(params.LabelFormat)
			chart.FormattedDates = make([]string, len(dates))
			for i, date := range dates {
				t, err := parse(date)
				if err != nil {
					return err
				}
				chart.FormattedDates[i] = format(t)
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare chart")
	}

	return chart, nil
}
