package helpers

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"
)

// NumberFormatter renders a chart value
type NumberFormatter func(float64) string

// TimeFormatter renders a chart date
type TimeFormatter func(time.Time) string

// Supported number formats: [$][,][.precision][f|d|%]
var numberFormatPattern = regexp.MustCompile(`^(\$)?(,)?(?:\.(\d+))?([fd%])?$`)

const defaultFixedPrecision = 6

// GetFormatter returns override when one is supplied, otherwise a formatter
// built from the number format string.
func GetFormatter(format string, override NumberFormatter) (NumberFormatter, error) {
	if override != nil {
		return override, nil
	}
	return ParseNumberFormat(format)
}

// ParseNumberFormat builds a NumberFormatter from a d3-style format string
func ParseNumberFormat(format string) (NumberFormatter, error) {
	m := numberFormatPattern.FindStringSubmatch(format)
	if m == nil {
		return nil, errors.Errorf("unsupported number format %q", format)
	}

	currency := m[1] != ""
	grouping := m[2] != ""
	kind := m[4]

	precision := -1
	if m[3] != "" {
		p, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid precision in format %q", format)
		}
		precision = p
	}

	switch kind {
	case "d":
		precision = 0
	case "f", "%":
		if precision < 0 {
			precision = defaultFixedPrecision
		}
	}

	return func(value float64) string {
		suffix := ""
		if kind == "%" {
			value *= 100
			suffix = "%"
		}
		if kind == "d" {
			value = math.Round(value)
		}

		var out string
		switch {
		case grouping && precision >= 0:
			out = humanize.FormatFloat("#,###."+strings.Repeat("#", precision), value)
		case grouping:
			out = humanize.Commaf(value)
		case precision >= 0:
			out = strconv.FormatFloat(value, 'f', precision, 64)
		default:
			out = strconv.FormatFloat(value, 'f', -1, 64)
		}

		if currency {
			if strings.HasPrefix(out, "-") {
				return "-$" + out[1:] + suffix
			}
			return "$" + out + suffix
		}
		return out + suffix
	}, nil
}

// GetTimeFormatter returns a TimeFormatter for a strftime/d3 time format
func GetTimeFormatter(format string) TimeFormatter {
	return func(t time.Time) string {
		return strftime.Format(format, t)
	}
}
