package cricapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The provider serves ids and stat values as numbers in one payload and
// strings in the next. These helpers normalize both: junk becomes nil,
// never a panic and never a zero that looks like data.

// AsInt coerces a JSON value to an integer, nil when not possible.
func AsInt(v any) *int64 {
	switch t := v.(type) {
	case float64:
		n := int64(t)
		return &n
	case int:
		n := int64(t)
		return &n
	case int64:
		return &t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// AsFloat coerces a JSON value to a float, nil when not possible.
func AsFloat(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	case int64:
		f := float64(t)
		return &f
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// AsString renders a scalar JSON value as a string, nil for null or
// non-scalar input. Whole numbers render without a decimal point.
func AsString(v any) *string {
	switch t := v.(type) {
	case string:
		return &t
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	case bool:
		s := strconv.FormatBool(t)
		return &s
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if p := AsString(e); p != nil {
				parts = append(parts, *p)
			}
		}
		s := strings.Join(parts, ", ")
		return &s
	case nil:
		return nil
	default:
		s := fmt.Sprintf("%v", t)
		return &s
	}
}

// EpochMillis converts an epoch-millisecond timestamp (number or string)
// to UTC time. Zero, absent or unparsable input maps to nil rather than
// the 1970 epoch.
func EpochMillis(v any) *time.Time {
	ms := AsInt(v)
	if ms == nil || *ms == 0 {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}
