package helpers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/cyphera/store-admin/libs/go/types/business"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, raw string) []business.TimeSeriesRecord {
	t.Helper()
	var data []business.TimeSeriesRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestGetOrderedKeys(t *testing.T) {
	t.Run("sorts by descending total", func(t *testing.T) {
		data := decodeRecords(t, `[
			{"date": "d1", "a": {"value": 1}, "b": {"value": 3}},
			{"date": "d2", "a": {"value": 2}, "b": {"value": 1}}
		]`)

		keys, err := GetOrderedKeys(data)
		require.NoError(t, err)
		require.Len(t, keys, 2)

		assert.Equal(t, business.SeriesDescriptor{Key: "b", Total: 4, Focus: true, Visible: true}, keys[0])
		assert.Equal(t, business.SeriesDescriptor{Key: "a", Total: 3, Focus: true, Visible: true}, keys[1])
	})

	t.Run("ties keep encounter order", func(t *testing.T) {
		data := decodeRecords(t, `[
			{"date": "d1", "x": {"value": 2}, "y": {"value": 2}, "z": {"value": 5}}
		]`)

		keys, err := GetOrderedKeys(data)
		require.NoError(t, err)
		require.Len(t, keys, 3)
		assert.Equal(t, "z", keys[0].Key)
		assert.Equal(t, "x", keys[1].Key)
		assert.Equal(t, "y", keys[2].Key)
	})

	t.Run("null values add nothing", func(t *testing.T) {
		data := decodeRecords(t, `[
			{"date": "d1", "a": {"value": null}},
			{"date": "d2", "a": {"value": 7}}
		]`)

		keys, err := GetOrderedKeys(data)
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, 7.0, keys[0].Total)
	})

	t.Run("keys are unique across records", func(t *testing.T) {
		data := []business.TimeSeriesRecord{
			business.NewTimeSeriesRecord("d1").WithValue("a", 1).WithValue("b", 1),
			business.NewTimeSeriesRecord("d2").WithValue("b", 1).WithValue("a", 1),
		}

		keys, err := GetOrderedKeys(data)
		require.NoError(t, err)
		assert.Len(t, keys, 2)
	})

	t.Run("record without the key fails", func(t *testing.T) {
		data := decodeRecords(t, `[
			{"date": "d1", "a": {"value": 1}, "b": {"value": 3}},
			{"date": "d2", "a": {"value": 2}}
		]`)

		keys, err := GetOrderedKeys(data)
		assert.Nil(t, keys)
		assert.True(t, errors.Is(err, ErrMissingSeriesValue))
	})

	t.Run("declared key without a value field fails", func(t *testing.T) {
		data := decodeRecords(t, `[{"date": "d1", "a": {"label": "Total"}}]`)

		_, err := GetOrderedKeys(data)
		assert.True(t, errors.Is(err, ErrMissingSeriesValue))
	})

	t.Run("empty dataset", func(t *testing.T) {
		keys, err := GetOrderedKeys(nil)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}

func TestGetUniqueDates(t *testing.T) {
	t.Run("collapses duplicates and sorts chronologically", func(t *testing.T) {
		data := []business.TimeSeriesRecord{
			business.NewTimeSeriesRecord("2020-03-01").WithValue("a", 1),
			business.NewTimeSeriesRecord("2019-12-31").WithValue("a", 1),
			business.NewTimeSeriesRecord("2020-03-01").WithValue("a", 2),
			business.NewTimeSeriesRecord("2020-01-15").WithValue("a", 3),
		}

		dates, err := GetUniqueDates(data, NewStrftimeParser("%Y-%m-%d"))
		require.NoError(t, err)
		assert.Equal(t, []string{"2019-12-31", "2020-01-15", "2020-03-01"}, dates)
	})

	t.Run("orders by instant not by label", func(t *testing.T) {
		data := []business.TimeSeriesRecord{
			business.NewTimeSeriesRecord("10/02/2020"),
			business.NewTimeSeriesRecord("09/03/2020"),
		}

		dates, err := GetUniqueDates(data, NewStrftimeParser("%d/%m/%Y"))
		require.NoError(t, err)
		assert.Equal(t, []string{"10/02/2020", "09/03/2020"}, dates)
	})

	t.Run("uses the injected parser", func(t *testing.T) {
		base := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
		order := map[string]int{"third": 3, "first": 1, "second": 2}
		parse := func(label string) (time.Time, error) {
			n, ok := order[label]
			if !ok {
				return time.Time{}, errors.New("unknown label")
			}
			return base.Add(time.Duration(n) * time.Hour), nil
		}

		data := []business.TimeSeriesRecord{
			business.NewTimeSeriesRecord("third"),
			business.NewTimeSeriesRecord("first"),
			business.NewTimeSeriesRecord("second"),
		}

		dates, err := GetUniqueDates(data, parse)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, dates)
	})

	t.Run("unparseable date", func(t *testing.T) {
		data := []business.TimeSeriesRecord{business.NewTimeSeriesRecord("yesterday")}

		_, err := GetUniqueDates(data, NewStrftimeParser("%Y-%m-%d"))
		assert.Error(t, err)
	})

	t.Run("parser is required", func(t *testing.T) {
		_, err := GetUniqueDates(nil, nil)
		assert.Error(t, err)
	})
}

func TestIsDataEmpty(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		baseValue float64
		expected  bool
	}{
		{
			name:     "zero and null",
			raw:      `[{"date": "2020-01-01", "a": {"value": 0}, "b": {"value": null}}]`,
			expected: true,
		},
		{
			name:     "one non zero value",
			raw:      `[{"date": "x", "a": {"value": 5}}]`,
			expected: false,
		},
		{
			name:      "every value at the base value",
			raw:       `[{"date": "d1", "a": {"value": 5}}, {"date": "d2", "a": {"value": 5}}]`,
			baseValue: 5,
			expected:  true,
		},
		{
			name:     "difference in a later record",
			raw:      `[{"date": "d1", "a": {"value": 0}}, {"date": "d2", "a": {"value": 0.5}}]`,
			expected: false,
		},
		{
			name:     "only nulls",
			raw:      `[{"date": "d1", "a": {"value": null}}]`,
			expected: true,
		},
		{
			name:     "no records",
			raw:      `[]`,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := decodeRecords(t, tt.raw)
			assert.Equal(t, tt.expected, IsDataEmpty(data, tt.baseValue))
		})
	}
}

func TestNewStrftimeParser(t *testing.T) {
	parse := NewStrftimeParser("%Y-%m-%dT%H:%M:%S")

	got, err := parse("2020-06-01T13:45:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 6, 1, 13, 45, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
