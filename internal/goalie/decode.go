package goalie

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

var nullTokens = map[string]struct{}{
	"":     {},
	"-":    {},
	"--":   {},
	"nan":  {},
	"none": {},
	"null": {},
	"n/a":  {},
}

// IsNull reports whether a raw cell stands for a missing value.
func IsNull(raw string) bool {
	_, ok := nullTokens[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// Decode builds a typed Record from projected values. columns and values are
// aligned; a nil value is a null. Columns unknown to the canonical schema are
// rejected.
func Decode(columns []string, values []*string) (Record, error) {
	var rec Record
	if len(columns) != len(values) {
		return rec, fmt.Errorf("decode: %d columns but %d values", len(columns), len(values))
	}

	ptrs := rec.Pointers()
	for i, name := range columns {
		idx, ok := columnIndex[name]
		if !ok {
			return rec, &FieldError{Column: name, Err: errors.New("not a canonical column")}
		}
		raw := values[i]
		if raw == nil || IsNull(*raw) {
			continue
		}
		val := strings.TrimSpace(*raw)

		switch p := ptrs[idx].(type) {
		case **string:
			if size := Columns[idx].Size; size > 0 && utf8.RuneCountInString(val) > size {
				return rec, &FieldError{Column: name, Value: val, Err: fmt.Errorf("longer than %d characters", size)}
			}
			*p = &val
		case **int64:
			n, err := parseInt(val)
			if err != nil {
				return rec, &FieldError{Column: name, Value: val, Err: err}
			}
			*p = &n
		case **float64:
			f, err := parseFloat(val)
			if err != nil {
				return rec, &FieldError{Column: name, Value: val, Err: err}
			}
			*p = &f
		}
	}
	return rec, nil
}

func parseFloat(val string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(val, ",", ""), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("not a finite number")
	}
	return f, nil
}

// parseInt accepts thousands separators and float renderings such as "55.0";
// fractional values are rounded the way an integer column assignment would.
func parseInt(val string) (int64, error) {
	clean := strings.ReplaceAll(val, ",", "")
	if n, err := strconv.ParseInt(clean, 10, 64); err == nil {
		return n, nil
	}
	f, err := parseFloat(clean)
	if err != nil {
		return 0, err
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.New("out of range")
	}
	return int64(math.Round(f)), nil
}
