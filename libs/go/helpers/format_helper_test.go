package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberFormat(t *testing.T) {
	tests := []struct {
		format   string
		value    float64
		expected string
	}{
		{format: ".2f", value: 3.14159, expected: "3.14"},
		{format: "d", value: 3.7, expected: "4"},
		{format: ".1%", value: 0.256, expected: "25.6%"},
		{format: "$.2f", value: 12.5, expected: "$12.50"},
		{format: "$.2f", value: -5, expected: "-$5.00"},
		{format: ",.2f", value: 1234.5, expected: "1,234.50"},
		{format: "", value: 0.5, expected: "0.5"},
		{format: "", value: 2500000, expected: "2500000"},
		{format: "$", value: 1234567.891, expected: "$1234567.891"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			format, err := ParseNumberFormat(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format(tt.value))
		})
	}
}

func TestParseNumberFormat_Unsupported(t *testing.T) {
	_, err := ParseNumberFormat("~s")
	assert.Error(t, err)
}

func TestGetFormatter(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		override := func(float64) string { return "custom" }

		format, err := GetFormatter("not a format", override)
		require.NoError(t, err)
		assert.Equal(t, "custom", format(1))
	})

	t.Run("builds from the format string", func(t *testing.T) {
		format, err := GetFormatter(".0f", nil)
		require.NoError(t, err)
		assert.Equal(t, "10", format(10.2))
	})
}

func TestGetTimeFormatter(t *testing.T) {
	format := GetTimeFormatter("%b %d, %Y")
	assert.Equal(t, "Jan 05, 2020", format(time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC)))
}
