package services_test

import (
	"context"
	"testing"

	"github.com/cyphera/store-admin/libs/go/helpers"
	"github.com/cyphera/store-admin/libs/go/interfaces"
	"github.com/cyphera/store-admin/libs/go/services"
	"github.com/cyphera/store-admin/libs/go/types/business"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartService_Prepare(t *testing.T) {
	service := services.NewChartService()
	ctx := context.Background()

	data := []business.TimeSeriesRecord{
		business.NewTimeSeriesRecord("2020-01-02T00:00:00").WithValue("a", 1).WithValue("b", 3),
		business.NewTimeSeriesRecord("2020-01-01T00:00:00").WithValue("a", 2).WithValue("b", 1),
	}

	tests := []struct {
		name    string
		params  interfaces.ChartPrepareParams
		check   func(t *testing.T, chart *business.PreparedChart)
		wantErr error
	}{
		{
			name:   "default date format",
			params: interfaces.ChartPrepareParams{Data: data},
			check: func(t *testing.T, chart *business.PreparedChart) {
				require.Len(t, chart.OrderedKeys, 2)
				assert.Equal(t, "b", chart.OrderedKeys[0].Key)
				assert.Equal(t, 4.0, chart.OrderedKeys[0].Total)
				assert.Equal(t, "a", chart.OrderedKeys[1].Key)
				assert.Equal(t, []string{"2020-01-01T00:00:00", "2020-01-02T00:00:00"}, chart.UniqueDates)
				assert.False(t, chart.IsEmpty)
				assert.Nil(t, chart.FormattedTotals)
				assert.Nil(t, chart.FormattedDates)
			},
		},
		{
			name: "formats totals and dates",
			params: interfaces.ChartPrepareParams{
				Data:        data,
				ValueFormat: "$.2f",
				LabelFormat: "%b %d",
			},
			check: func(t *testing.T, chart *business.PreparedChart) {
				assert.Equal(t, map[string]string{"a": "$3.00", "b": "$4.00"}, chart.FormattedTotals)
				assert.Equal(t, []string{"Jan 01", "Jan 02"}, chart.FormattedDates)
			},
		},
		{
			name: "record missing a series",
			params: interfaces.ChartPrepareParams{
				Data: []business.TimeSeriesRecord{
					business.NewTimeSeriesRecord("2020-02-01").WithValue("a", 10),
					business.NewTimeSeriesRecord("2020-01-01").WithValue("a", 10).WithNull("b"),
				},
				DateFormat: "%Y-%m-%d",
				BaseValue:  10,
			},
			wantErr: helpers.ErrMissingSeriesValue,
		},
		{
			name: "is empty at the base value",
			params: interfaces.ChartPrepareParams{
				Data: []business.TimeSeriesRecord{
					business.NewTimeSeriesRecord("2020-02-01").WithValue("a", 10).WithNull("b"),
					business.NewTimeSeriesRecord("2020-01-01").WithValue("a", 10).WithNull("b"),
				},
				DateFormat: "%Y-%m-%d",
				BaseValue:  10,
			},
			check: func(t *testing.T, chart *business.PreparedChart) {
				assert.True(t, chart.IsEmpty)
				assert.Equal(t, []string{"2020-01-01", "2020-02-01"}, chart.UniqueDates)
			},
		},
		{
			name: "unsupported value format",
			params: interfaces.ChartPrepareParams{
				Data:        data,
				ValueFormat: "~s",
			},
		},
		{
			name: "date that does not match the format",
			params: interfaces.ChartPrepareParams{
				Data:       data,
				DateFormat: "%d/%m/%Y",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := service.Prepare(ctx, tt.params)
			if tt.check == nil {
				require.Error(t, err)
				assert.Nil(t, chart)
				if tt.wantErr != nil {
					assert.True(t, errors.Is(err, tt.wantErr))
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, chart)
		})
	}
}
