package scoring

import (
	"math"
	"testing"

	"github.com/shoplens/recommendation-service/internal/domain"
)

func TestPopularityWellFormed(t *testing.T) {
	p := domain.Product{
		Name:    "Blue Running Shoes",
		Rating:  "4.5 out of 5",
		Reviews: "1,203 ratings",
		Price:   "$59.99",
	}

	// 0.4*(4.5/5) + 0.3*min(1203/1000, 1) + 0.3*min(10000/59.99, 1)
	want := 0.36 + 0.3 + 0.3
	if got := Popularity(p); math.Abs(got-want) > 1e-9 {
		t.Errorf("Popularity = %f, want %f", got, want)
	}
}

func TestPopularityAllFallbacks(t *testing.T) {
	p := domain.Product{Name: "Red Running Shoes", Rating: "N/A", Price: "N/A"}

	// fallbacks: rating 4.0, reviews 100, price 1000
	want := 0.4*0.8 + 0.3*0.1 + 0.3*1.0
	if got := Popularity(p); math.Abs(got-want) > 1e-9 {
		t.Errorf("Popularity = %f, want %f", got, want)
	}
}

func TestPopularityRange(t *testing.T) {
	products := []domain.Product{
		{},
		{Rating: "5", Reviews: "999999", Price: "0.01"},
		{Rating: "garbage", Reviews: "garbage", Price: "garbage"},
		{Rating: "-3", Reviews: "0", Price: "$9,999,999"},
	}

	for _, p := range products {
		got := Popularity(p)
		if got < 0 || got > 1 {
			t.Errorf("Popularity(%+v) = %f, out of [0, 1]", p, got)
		}
	}
}

func TestPopularityCheapSaturates(t *testing.T) {
	cheap := Popularity(domain.Product{Rating: "4", Reviews: "100", Price: "0.50"})
	alsoCheap := Popularity(domain.Product{Rating: "4", Reviews: "100", Price: "1.00"})
	if math.Abs(cheap-alsoCheap) > 1e-9 {
		t.Errorf("price component should saturate at price <= 1: %f vs %f", cheap, alsoCheap)
	}
}
