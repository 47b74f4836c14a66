package domain

import (
	"strconv"
	"strings"
)

// ParsePrice extracts a comparable magnitude from a display price label.
//
// Every character that is not a decimal digit or a point is removed and the
// longest decimal prefix of the remainder is parsed. Unit suffixes are not
// interpreted: "1.5B BUX" yields 1.5 and "950M BUX" yields 950. Labels that
// are empty or carry no digits yield 0.
func ParsePrice(label string) float64 {
	if label == "" {
		return 0
	}

	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	prefix := decimalPrefix(b.String())
	if prefix == "" {
		return 0
	}

	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return n
}

// decimalPrefix returns the longest prefix of s made of digits with at most
// one point that contains at least one digit.
func decimalPrefix(s string) string {
	end := 0
	seenPoint := false
	seenDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if seenPoint {
				break
			}
			seenPoint = true
		} else {
			seenDigit = true
		}
		end = i + 1
	}
	if !seenDigit {
		return ""
	}
	// A trailing point ("12.") parses fine, a lone point does not.
	return s[:end]
}
