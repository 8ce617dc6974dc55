package normalize

import (
	"math"
	"testing"
)

func TestRating(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"4.5 out of 5 stars", 4.5},
		{"4.5", 4.5},
		{"N/A", 4.0},
		{"", 4.0},
		{"no rating yet", 4.0},
		{"7.9", 5.0},  // clamped high
		{"-1.0", 0.0}, // clamped low
	}

	for _, c := range cases {
		if got := Rating(c.in); got != c.want {
			t.Errorf("Rating(%q) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestReviews(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1,203 ratings", 1203},
		{"1203", 1203},
		{"N/A", 100},
		{"", 100},
		{"no reviews", 100},
		{"0", 0},
	}

	for _, c := range cases {
		if got := Reviews(c.in); got != c.want {
			t.Errorf("Reviews(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$59.99", 59.99},
		{"₹1,299", 1299},
		{"1299.00", 1299},
		{"N/A", 1000},
		{"", 1000},
		{"$0.00", 1000},     // zero falls back
		{"1.299.00", 1000},  // two decimal points is unparsable
		{"free today", 1000},
	}

	for _, c := range cases {
		if got := Price(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Price(%q) = %f, want %f", c.in, got, c.want)
		}
	}
}

func TestPriceAlwaysPositive(t *testing.T) {
	for _, in := range []string{"", "N/A", "0", "-0", "garbage", "$12.50"} {
		if got := Price(in); got <= 0 {
			t.Errorf("Price(%q) = %f, expected a positive value", in, got)
		}
	}
}
