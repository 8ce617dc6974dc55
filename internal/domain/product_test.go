package domain

import (
	"encoding/json"
	"testing"
)

func TestAttrUnmarshal(t *testing.T) {
	var r RawProduct
	payload := `{"name":"Wireless Headphones","rating":4.5,"reviews":"1,203 ratings","price":null}`
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if r.Rating != "4.5" {
		t.Errorf("expected numeric rating as \"4.5\", got %q", r.Rating)
	}
	if r.Reviews != "1,203 ratings" {
		t.Errorf("expected string reviews kept as-is, got %q", r.Reviews)
	}
	if r.Price != "" {
		t.Errorf("expected null price to be empty, got %q", r.Price)
	}
}

func TestDisplayName(t *testing.T) {
	named := RawProduct{Name: "Blue Running Shoes", Title: "ignored"}
	if named.DisplayName() != "Blue Running Shoes" {
		t.Errorf("expected name field to win, got %q", named.DisplayName())
	}

	titled := RawProduct{Title: "Red Running Shoes"}
	if titled.DisplayName() != "Red Running Shoes" {
		t.Errorf("expected title fallback, got %q", titled.DisplayName())
	}
}
