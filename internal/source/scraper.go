// Package source provides the fetch collaborators the engine refreshes its
// catalog from.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shoplens/recommendation-service/internal/domain"
)

const defaultPerQueryLimit = 15

// marketplaces lists the scrape endpoints polled for every refresh query.
var marketplaces = []struct {
	name string
	path string
}{
	{"Amazon", "/scrape/amazon"},
	{"Myntra", "/scrape/myntra"},
}

// ScraperSource fetches raw product records from the scraper service.
type ScraperSource struct {
	baseURL       string
	client        *http.Client
	perQueryLimit int
}

func NewScraperSource(baseURL string, perQueryLimit int) *ScraperSource {
	if perQueryLimit <= 0 {
		perQueryLimit = defaultPerQueryLimit
	}
	return &ScraperSource{
		baseURL:       strings.TrimRight(baseURL, "/"),
		client:        &http.Client{Timeout: 30 * time.Second},
		perQueryLimit: perQueryLimit,
	}
}

// Fetch pulls records for a query from every marketplace endpoint, tagging
// each record with its marketplace and capping records per marketplace. A
// marketplace that fails or returns a bad payload contributes zero records;
// the query itself never fails.
func (s *ScraperSource) Fetch(ctx context.Context, query string) ([]domain.RawProduct, error) {
	var records []domain.RawProduct
	for _, m := range marketplaces {
		items, err := s.fetchMarketplace(ctx, m.path, query)
		if err != nil {
			log.Printf("[source] %s scrape for %q: %v", m.name, query, err)
			continue
		}
		if len(items) > s.perQueryLimit {
			items = items[:s.perQueryLimit]
		}
		for i := range items {
			items[i].Marketplace = m.name
		}
		records = append(records, items...)
	}
	return records, nil
}

func (s *ScraperSource) fetchMarketplace(ctx context.Context, path, query string) ([]domain.RawProduct, error) {
	endpoint := fmt.Sprintf("%s%s?q=%s", s.baseURL, path, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var items []domain.RawProduct
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return items, nil
}
