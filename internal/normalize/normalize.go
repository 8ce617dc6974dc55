// Package normalize turns scraped attribute text into usable numbers.
// Upstream data is unverified and inconsistent in unit, currency, and
// missing-value encoding, so every function here returns a documented
// fallback instead of an error.
package normalize

import (
	"strconv"
	"strings"
)

const (
	DefaultRating  = 4.0
	DefaultReviews = 100
	DefaultPrice   = 1000.0

	naSentinel = "N/A"
)

// Rating parses the leading numeric token of values like "4.5 out of 5
// stars". "N/A", missing, or unparsable input falls back to 4.0. The result
// is clamped to [0, 5].
func Rating(raw string) float64 {
	rating := DefaultRating
	if raw != "" && raw != naSentinel {
		if fields := strings.Fields(raw); len(fields) > 0 {
			if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
				rating = v
			}
		}
	}
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// Reviews strips everything but digits from values like "1,203 ratings" and
// parses the remainder. "N/A" or an empty digit string falls back to 100.
func Reviews(raw string) int {
	if raw == "" || raw == naSentinel {
		return DefaultReviews
	}
	var digits strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return DefaultReviews
	}
	return n
}

// Price keeps digits and the decimal point from values like "$59.99" or
// "₹1,299" and parses the remainder. Parse failure or a zero result falls
// back to 1000, so the returned price is always positive.
func Price(raw string) float64 {
	if raw == "" || raw == naSentinel {
		return DefaultPrice
	}
	var numeric strings.Builder
	for _, ch := range raw {
		if (ch >= '0' && ch <= '9') || ch == '.' {
			numeric.WriteRune(ch)
		}
	}
	v, err := strconv.ParseFloat(numeric.String(), 64)
	if err != nil || v == 0 {
		return DefaultPrice
	}
	return v
}
