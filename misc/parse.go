package misc

import (
	"strconv"
	"strings"
)

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// ParsePair
// Splits s at the first occurrence of separator and parses both sides as T, e.g. "1500x750" with "x" gives
// (1500, 750). The last return value is false when the separator is missing or either side is not a valid T.
func ParsePair[T Number](s string, separator string) (T, T, bool) {
	var zero T
	left, right, found := strings.Cut(s, separator)
	if !found {
		return zero, zero, false
	}
	l, ok := parseNumber[T](left)
	if !ok {
		return zero, zero, false
	}
	r, ok := parseNumber[T](right)
	if !ok {
		return zero, zero, false
	}
	return l, r, true
}

// ParseComplex parses a comma separated complex number, e.g. "1.25,-0.42" gives 1.25-0.42i
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair[float64](s, ",")
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}

func parseNumber[T Number](s string) (T, bool) {
	var value T
	var err error

	switch any(value).(type) {
	case int, int8, int16, int32, int64:
		var v int64
		v, err = strconv.ParseInt(s, 10, bitSize(value))
		value = T(v)
	case uint, uint8, uint16, uint32, uint64:
		var v uint64
		v, err = strconv.ParseUint(s, 10, bitSize(value))
		value = T(v)
	case float32, float64:
		var v float64
		v, err = strconv.ParseFloat(s, bitSize(value))
		value = T(v)
	}

	if err != nil {
		var zero T
		return zero, false
	}
	return value, true
}

func bitSize[T Number](value T) int {
	switch any(value).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	case int, uint:
		return strconv.IntSize
	default:
		return 64
	}
}
