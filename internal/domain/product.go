package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Attr is a scraped attribute value. Marketplaces send these inconsistently
// as strings ("4.5 out of 5 stars"), bare numbers (4.5), nulls, or the "N/A"
// sentinel, so Attr accepts any scalar JSON value and keeps its textual form.
type Attr string

func (a *Attr) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*a = ""
	case string:
		*a = Attr(t)
	case float64:
		*a = Attr(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		*a = Attr(fmt.Sprintf("%v", t))
	}
	return nil
}

// RawProduct is one record as returned by a fetch collaborator. Any field
// besides the display name may be absent or unparsable; the normalizer is
// responsible for turning these into usable numbers later.
type RawProduct struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Rating      Attr   `json:"rating"`
	Reviews     Attr   `json:"reviews"`
	Price       Attr   `json:"price"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Marketplace string `json:"marketplace"`
}

// DisplayName prefers the scraper's name field, falling back to title.
func (r RawProduct) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

// Product is one classified record in the catalog snapshot. Identity is the
// record's position in the snapshot; it does not survive a refresh.
type Product struct {
	Name        string `json:"name"`
	Rating      string `json:"rating,omitempty"`
	Reviews     string `json:"reviews,omitempty"`
	Price       string `json:"price,omitempty"`
	URL         string `json:"url,omitempty"`
	Image       string `json:"image,omitempty"`
	Marketplace string `json:"marketplace"`
	Category    string `json:"category"`
}
