// Package engine owns the catalog snapshot and produces the ranked
// recommendation lists served by the API.
package engine

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/shoplens/recommendation-service/internal/domain"
	"github.com/shoplens/recommendation-service/internal/scoring"
	"github.com/shoplens/recommendation-service/internal/similarity"
	"github.com/shoplens/recommendation-service/internal/taxonomy"
)

const (
	// topPerInterest caps how many products one interest can contribute
	// before the per-interest lists are merged.
	topPerInterest = 5

	// trendingBoost keeps trending scores in a range distinct from
	// cold-start output.
	trendingBoost = 1.2
)

// Fetcher pulls raw product records for a query. Implementations decide
// where the records come from; the engine only requires that a failed query
// surfaces as an error or an empty slice.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]domain.RawProduct, error)
}

// Config carries the refresh knobs for an Engine.
type Config struct {
	Queries       []string
	MaxVocabulary int
	FetchTimeout  time.Duration
}

// Engine holds the catalog snapshot and its similarity index. Refresh is
// the only mutator; it swaps both under the write lock so ranking calls
// always see a consistent pair.
type Engine struct {
	mu       sync.RWMutex
	products []domain.Product
	index    *similarity.Index

	fetcher      Fetcher
	classifier   *taxonomy.Classifier
	queries      []string
	maxVocab     int
	fetchTimeout time.Duration
}

func New(fetcher Fetcher, classifier *taxonomy.Classifier, cfg Config) *Engine {
	if classifier == nil {
		classifier = taxonomy.NewClassifier(nil)
	}
	return &Engine{
		fetcher:      fetcher,
		classifier:   classifier,
		queries:      cfg.Queries,
		maxVocab:     cfg.MaxVocabulary,
		fetchTimeout: cfg.FetchTimeout,
	}
}

// Refresh pulls fresh records for every configured query, classifies them,
// and atomically replaces the catalog snapshot together with its similarity
// index. A query that fails contributes zero records and never aborts the
// refresh. When every query comes back empty the previous snapshot is kept.
// Returns the number of records stored.
func (e *Engine) Refresh(ctx context.Context) int {
	var products []domain.Product
	for _, query := range e.queries {
		raw, err := e.fetchQuery(ctx, query)
		if err != nil {
			log.Printf("[engine] fetch %q: %v", query, err)
			continue
		}
		for _, record := range raw {
			name := record.DisplayName()
			products = append(products, domain.Product{
				Name:        name,
				Rating:      string(record.Rating),
				Reviews:     string(record.Reviews),
				Price:       string(record.Price),
				URL:         record.URL,
				Image:       record.Image,
				Marketplace: record.Marketplace,
				Category:    e.classifier.Classify(name),
			})
		}
	}

	if len(products) == 0 {
		log.Printf("[engine] refresh yielded no products, keeping previous snapshot")
		return 0
	}

	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	index := similarity.New(names, e.maxVocab)

	e.mu.Lock()
	e.products = products
	e.index = index
	e.mu.Unlock()

	log.Printf("[engine] catalog refreshed with %d products", len(products))
	return len(products)
}

func (e *Engine) fetchQuery(ctx context.Context, query string) ([]domain.RawProduct, error) {
	if e.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.fetchTimeout)
		defer cancel()
	}
	return e.fetcher.Fetch(ctx, query)
}

// snapshot returns the current products and index, refreshing synchronously
// first when the catalog is empty. An empty return means the refresh also
// came back empty and the caller should answer with no recommendations.
func (e *Engine) snapshot(ctx context.Context) ([]domain.Product, *similarity.Index) {
	e.mu.RLock()
	products, index := e.products, e.index
	e.mu.RUnlock()

	if len(products) == 0 {
		e.Refresh(ctx)
		e.mu.RLock()
		products, index = e.products, e.index
		e.mu.RUnlock()
	}
	return products, index
}

// ColdStart recommends for a user with no interaction history, weighting
// each category's popularity ranking by the caller's stated interest level.
// Interests naming a category with no catalog products contribute nothing.
func (e *Engine) ColdStart(ctx context.Context, interests []domain.Interest, limit int) []domain.RecommendationEntry {
	products, _ := e.snapshot(ctx)
	if len(products) == 0 {
		return nil
	}

	var merged []domain.RecommendationEntry
	for _, interest := range interests {
		weight := float64(clampLevel(interest.InterestLevel)) / 10.0

		var scored []domain.RecommendationEntry
		for _, p := range products {
			if p.Category != interest.Category {
				continue
			}
			scored = append(scored, domain.RecommendationEntry{
				Product:   p,
				Score:     scoring.Popularity(p) * weight,
				Reason:    fmt.Sprintf("Popular in %s", interest.Category),
				Algorithm: domain.AlgorithmColdStart,
			})
		}

		sortByScore(scored)
		if len(scored) > topPerInterest {
			scored = scored[:topPerInterest]
		}
		merged = append(merged, scored...)
	}

	sortByScore(merged)
	merged = dedupe(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// Trending ranks the whole catalog by boosted popularity.
func (e *Engine) Trending(ctx context.Context, limit int) []domain.RecommendationEntry {
	products, _ := e.snapshot(ctx)
	if len(products) == 0 {
		return nil
	}

	entries := make([]domain.RecommendationEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, domain.RecommendationEntry{
			Product:   p,
			Score:     scoring.Popularity(p) * trendingBoost,
			Reason:    "Trending now",
			Algorithm: domain.AlgorithmTrending,
		})
	}

	sortByScore(entries)
	entries = dedupe(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Similar returns the products closest to the one at productIndex by name
// similarity. The score is the raw cosine similarity, not popularity. An
// out-of-range index yields an empty list.
func (e *Engine) Similar(ctx context.Context, productIndex, limit int) []domain.RecommendationEntry {
	products, index := e.snapshot(ctx)
	if index == nil {
		return nil
	}

	neighbors := index.RankSimilar(productIndex, limit)
	entries := make([]domain.RecommendationEntry, 0, len(neighbors))
	for _, n := range neighbors {
		entries = append(entries, domain.RecommendationEntry{
			Product:   products[n.Index],
			Score:     n.Score,
			Reason:    "Similar products",
			Algorithm: domain.AlgorithmContentBased,
		})
	}
	return entries
}

// Stats summarizes the current snapshot. It never triggers a refresh.
func (e *Engine) Stats() domain.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := domain.Stats{
		TotalProducts: len(e.products),
		Categories:    make(map[string]int),
		Marketplaces:  make(map[string]int),
	}
	for _, p := range e.products {
		stats.Categories[p.Category]++
		if p.Marketplace != "" {
			stats.Marketplaces[p.Marketplace]++
		}
	}
	return stats
}

// sortByScore orders entries by descending score; the sort is stable so
// equal scores keep catalog order.
func sortByScore(entries []domain.RecommendationEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 10 {
		return 10
	}
	return level
}
