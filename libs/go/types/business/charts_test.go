package business

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSeriesRecord_UnmarshalJSON(t *testing.T) {
	var rec TimeSeriesRecord
	err := json.Unmarshal([]byte(`{
		"zeta": {"value": 1.5, "label": "Zeta"},
		"date": "2020-01-01",
		"alpha": {"value": null},
		"mid": {"label": "no value"}
	}`), &rec)
	require.NoError(t, err)

	assert.Equal(t, "2020-01-01", rec.Date)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, rec.Keys())

	zeta, ok := rec.Series("zeta")
	require.True(t, ok)
	require.NotNil(t, zeta)
	require.NotNil(t, zeta.Value)
	assert.Equal(t, 1.5, *zeta.Value)

	alpha, ok := rec.Series("alpha")
	require.True(t, ok)
	require.NotNil(t, alpha)
	assert.Nil(t, alpha.Value)

	mid, ok := rec.Series("mid")
	assert.True(t, ok)
	assert.Nil(t, mid)

	_, ok = rec.Series("missing")
	assert.False(t, ok)
}

func TestTimeSeriesRecord_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not an object", raw: `[1, 2]`},
		{name: "date not a string", raw: `{"date": 5}`},
		{name: "series not an object", raw: `{"date": "d", "a": 5}`},
		{name: "value not a number", raw: `{"date": "d", "a": {"value": "five"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec TimeSeriesRecord
			assert.Error(t, json.Unmarshal([]byte(tt.raw), &rec))
		})
	}
}

func TestTimeSeriesRecord_MarshalJSON(t *testing.T) {
	rec := NewTimeSeriesRecord("2020-01-01").WithValue("b", 2).WithNull("a")
	rec.Set("c", nil)

	encoded, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"date":"2020-01-01","b":{"value":2},"a":{"value":null},"c":{}}`, string(encoded))

	var decoded TimeSeriesRecord
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, rec.Keys(), decoded.Keys())
}

func TestTimeSeriesRecord_SetKeepsFirstPosition(t *testing.T) {
	rec := NewTimeSeriesRecord("d").WithValue("a", 1).WithValue("b", 2).WithValue("a", 3)

	assert.Equal(t, []string{"a", "b"}, rec.Keys())
	a, _ := rec.Series("a")
	assert.Equal(t, 3.0, *a.Value)
}

func TestPaymentsUIState_Clone(t *testing.T) {
	state := PaymentsUIState{
		EnabledMethods:     map[string]bool{"stripe": true},
		ConfiguringMethods: map[string]bool{"bacs": true},
		RecommendedMethod:  "stripe",
	}

	clone := state.Clone()
	clone.EnabledMethods["stripe"] = false
	clone.ConfiguringMethods["wcpay"] = true

	assert.True(t, state.EnabledMethods["stripe"])
	assert.NotContains(t, state.ConfiguringMethods, "wcpay")
	assert.Equal(t, "stripe", clone.RecommendedMethod)
}
