package validators

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseInt converts form values (JSON numbers or strings) into an int.
// Strings may carry leading zeros or a ".0" suffix.
func ParseInt(v any) (int, error) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		neg := strings.HasPrefix(s, "-")
		s = strings.TrimLeft(strings.TrimPrefix(s, "-"), "0")
		if s == "" || strings.HasPrefix(s, ".") {
			s = "0" + s
		}
		if neg {
			s = "-" + s
		}
		return cast.ToIntE(s)
	}
	if f, ok := v.(float64); ok && f != float64(int(f)) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return cast.ToIntE(v)
}

// ParseFloat converts form values into a finite float64. A decimal comma
// is accepted for values typed the Brazilian way ("12,50").
func ParseFloat(v any) (float64, error) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if strings.Contains(s, ",") && !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		v = s
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a finite number", v)
	}
	return f, nil
}

// IsBlank reports a missing form value: nil or an empty string.
func IsBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
