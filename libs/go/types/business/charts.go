package business

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// DateKey is the reserved record key holding the record's date label.
const DateKey = "date"

// SeriesValue is one series reading within a record. A nil Value is an
// explicit null.
type SeriesValue struct {
	Value *float64 `json:"value"`
}

// TimeSeriesRecord is one row of chart data: a date label plus an ordered set
// of series readings. A key mapped to a nil *SeriesValue was declared by the
// record without a value field.
type TimeSeriesRecord struct {
	Date   string
	keys   []string
	series map[string]*SeriesValue
}

// NewTimeSeriesRecord creates an empty record for the given date label
func NewTimeSeriesRecord(date string) TimeSeriesRecord {
	return TimeSeriesRecord{
		Date:   date,
		series: make(map[string]*SeriesValue),
	}
}

// Set stores a reading for key, keeping the first position a key was seen at.
func (r *TimeSeriesRecord) Set(key string, value *SeriesValue) {
	if r.series == nil {
		r.series = make(map[string]*SeriesValue)
	}
	if _, exists := r.series[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.series[key] = value
}

// WithValue returns the record with a numeric reading added for key
func (r TimeSeriesRecord) WithValue(key string, value float64) TimeSeriesRecord {
	v := value
	r.Set(key, &SeriesValue{Value: &v})
	return r
}

// WithNull returns the record with an explicit null reading for key
func (r TimeSeriesRecord) WithNull(key string) TimeSeriesRecord {
	r.Set(key, &SeriesValue{})
	return r
}

// Keys returns the series keys in the order they were declared
func (r TimeSeriesRecord) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Series returns the reading for key and whether the record declares it
func (r TimeSeriesRecord) Series(key string) (*SeriesValue, bool) {
	v, ok := r.series[key]
	return v, ok
}

// UnmarshalJSON decodes {"date": "...", "<key>": {"value": n|null}, ...}
// keeping the declaration order of the series keys.
func (r *TimeSeriesRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("time series record must be a JSON object")
	}

	rec := TimeSeriesRecord{series: make(map[string]*SeriesValue)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return errors.Wrapf(err, "failed to decode series %q", key)
		}

		if key == DateKey {
			if err := json.Unmarshal(raw, &rec.Date); err != nil {
				return errors.Wrap(err, "date must be a string")
			}
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return errors.Wrapf(err, "series %q must be an object", key)
		}
		valueRaw, ok := fields["value"]
		if !ok {
			rec.Set(key, nil)
			continue
		}

		sv := &SeriesValue{}
		if !bytes.Equal(bytes.TrimSpace(valueRaw), []byte("null")) {
			var f float64
			if err := json.Unmarshal(valueRaw, &f); err != nil {
				return errors.Wrapf(err, "series %q value must be a number", key)
			}
			sv.Value = &f
		}
		rec.Set(key, sv)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = rec
	return nil
}

// MarshalJSON encodes the record in declaration order
func (r TimeSeriesRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	date, err := json.Marshal(r.Date)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"date":`)
	buf.Write(date)

	for _, key := range r.keys {
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')

		sv := r.series[key]
		if sv == nil {
			buf.WriteString("{}")
			continue
		}
		encoded, err := json.Marshal(sv)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SeriesDescriptor describes one chart series, ordered by its total
type SeriesDescriptor struct {
	Key     string  `json:"key"`
	Total   float64 `json:"total"`
	Focus   bool    `json:"focus"`
	Visible bool    `json:"visible"`
}

// PreparedChart bundles the derived chart metadata for a dataset
type PreparedChart struct {
	OrderedKeys     []SeriesDescriptor `json:"ordered_keys"`
	UniqueDates     []string           `json:"unique_dates"`
	IsEmpty         bool               `json:"is_empty"`
	FormattedTotals map[string]string  `json:"formatted_totals,omitempty"`
	FormattedDates  []string           `json:"formatted_dates,omitempty"`
}
