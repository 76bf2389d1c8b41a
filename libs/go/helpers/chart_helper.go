package helpers

import (
	"sort"
	"time"

	"github.com/cyphera/store-admin/libs/go/types/business"
	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"
)

// ErrMissingSeriesValue is returned when a record does not carry a value for
// a series key declared somewhere in the dataset.
var ErrMissingSeriesValue = errors.New("series value missing")

// DateParser turns a record's date label into an instant
type DateParser func(string) (time.Time, error)

// NewStrftimeParser returns a DateParser for a strftime/d3 style format such
// as "%Y-%m-%dT%H:%M:%S". Labels without a zone are read as UTC.
func NewStrftimeParser(format string) DateParser {
	return func(value string) (time.Time, error) {
		t, err := strftime.Parse(format, value)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "failed to parse date %q with format %q", value, format)
		}
		return t.UTC(), nil
	}
}

// GetOrderedKeys returns one descriptor per series key in the dataset, sorted
// by descending total. Keys with equal totals keep the order they were first
// seen in.
func GetOrderedKeys(data []business.TimeSeriesRecord) ([]business.SeriesDescriptor, error) {
	seen := make(map[string]struct{})
	var keys []string
	for _, record := range data {
		for _, key := range record.Keys() {
			if key == business.DateKey {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	descriptors := make([]business.SeriesDescriptor, 0, len(keys))
	for _, key := range keys {
		var total float64
		for i, record := range data {
			sv, ok := record.Series(key)
			if !ok || sv == nil {
				return nil, errors.Wrapf(ErrMissingSeriesValue, "record %d (%s) has no value for series %q", i, record.Date, key)
			}
			if sv.Value != nil {
				total += *sv.Value
			}
		}
		descriptors = append(descriptors, business.SeriesDescriptor{
			Key:     key,
			Total:   total,
			Focus:   true,
			Visible: true,
		})
	}

	sort.SliceStable(descriptors, func(i, j int) bool {
		return descriptors[i].Total > descriptors[j].Total
	})

	return descriptors, nil
}

// GetUniqueDates returns each distinct date label once, earliest first
func GetUniqueDates(data []business.TimeSeriesRecord, parse DateParser) ([]string, error) {
	if parse == nil {
		return nil, errors.New("date parser is required")
	}

	instants := make(map[string]time.Time)
	dates := make([]string, 0, len(data))
	for _, record := range data {
		if _, ok := instants[record.Date]; ok {
			continue
		}
		t, err := parse(record.Date)
		if err != nil {
			return nil, err
		}
		instants[record.Date] = t
		dates = append(dates, record.Date)
	}

	sort.SliceStable(dates, func(i, j int) bool {
		return instants[dates[i]].Before(instants[dates[j]])
	})

	return dates, nil
}

// IsDataEmpty reports whether every non-null reading equals baseValue
func IsDataEmpty(data []business.TimeSeriesRecord, baseValue float64) bool {
	for _, record := range data {
		for _, key := range record.Keys() {
			if key == business.DateKey {
				continue
			}
			sv, _ := record.Series(key)
			if sv == nil || sv.Value == nil {
				continue
			}
			if *sv.Value != baseValue {
				return false
			}
		}
	}
	return true
}
