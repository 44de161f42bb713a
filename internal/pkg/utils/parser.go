package utils

import (
	"strconv"
	"strings"
)

const leadingSpaceCutset = " \t\r\n\v\f"

// ParseTemperature converts s to a float64 with C atof semantics:
// leading whitespace is skipped, the longest parseable numeric prefix
// wins (trailing garbage ignored), and total failure yields 0.
// Case-insensitive inf/infinity/nan prefixes parse to the matching
// non-finite value, and out-of-range magnitudes saturate to ±Inf, so
// callers must still validate the result is finite.
func ParseTemperature(s string) float64 {
	s = strings.TrimLeft(s, leadingSpaceCutset)
	for end := len(s); end > 0; end-- {
		value, err := strconv.ParseFloat(s[:end], 64)
		if err == nil {
			return value
		}
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			// strtod saturation: the value is still the closest
			// representable one (±Inf on overflow, 0 on underflow).
			return value
		}
	}
	return 0
}
