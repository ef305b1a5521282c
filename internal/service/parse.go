package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingInt reads an optionally signed run of decimal digits from the
// start of s, after leading whitespace, and ignores whatever follows.
// It reports false and returns NaN when no digit is found.
func ParseLeadingInt(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return math.NaN(), false
	}

	// Digit runs too long for float64 come back as ±Inf with ErrRange.
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return v, true
}
