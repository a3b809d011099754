// Package normalize turns raw vendor payloads into domain records. Every
// function here is pure; adapters own the I/O.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// breakoutValue stands in for Google Trends' "Breakout" label, which the
// vendor documents as growth above 5000%.
const breakoutValue = 5000

// Number coerces vendor numeric wrappers (strings such as "<1", "+250%",
// "1,200", "Breakout", json.Number, nulls) into a plain float64. Anything
// missing, non-finite or unparseable becomes 0.
func Number(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		return parseNumberString(n)
	default:
		return 0
	}
}

func parseNumberString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.EqualFold(s, "breakout") {
		return breakoutValue
	}
	// "<1" is the vendor's marker for a non-zero value that rounds to 0.
	if strings.HasPrefix(s, "<") {
		return 0
	}
	s = strings.TrimPrefix(s, ">")
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Int is Number truncated toward zero.
func Int(v any) int64 {
	return int64(Number(v))
}

// OptionalInt returns nil for absent or non-positive values, which the
// vendors use interchangeably for "unknown".
func OptionalInt(v any) *int {
	n := int(Number(v))
	if n <= 0 {
		return nil
	}
	return &n
}
