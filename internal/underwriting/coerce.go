package underwriting

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coerce converts a loosely typed form value into a float64. It accepts
// numbers, numeric strings, and currency/percent-formatted strings
// ("$1,200.50", "8%"). Anything unparseable, including nil, coerces to 0.
//
// The silent-zero policy is deliberate: deal records come from partially
// filled forms, and an empty or garbled field must read as "not entered"
// so the rest of the analysis still computes. Do not turn this into an
// error path.
func Coerce(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return sanitize(x)
	case float32:
		return sanitize(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		return CoerceString(x.String())
	case string:
		return CoerceString(x)
	case bool:
		if x {
			return 1
		}
		return 0
	}
	return 0
}

// CoerceString parses a numeric string after stripping currency formatting.
func CoerceString(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	r := strings.NewReplacer("$", "", ",", "", "%", "", " ", "")
	f, err := strconv.ParseFloat(r.Replace(s), 64)
	if err != nil {
		return 0
	}
	return sanitize(f)
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
