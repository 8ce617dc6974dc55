package engine

import (
	"strings"

	"github.com/shoplens/recommendation-service/internal/domain"
)

// dedupePrefixLen bounds the normalized title key. The same item is often
// listed multiple times with different trailing SKU or size text, so a
// lowercased prefix is enough to catch most duplicates.
const dedupePrefixLen = 50

// dedupe keeps the first entry per normalized title key, preserving the
// incoming sort order. Running it on its own output is a no-op.
func dedupe(entries []domain.RecommendationEntry) []domain.RecommendationEntry {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]domain.RecommendationEntry, 0, len(entries))
	for _, entry := range entries {
		key := dedupeKey(entry.Product.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, entry)
	}
	return unique
}

func dedupeKey(name string) string {
	key := strings.ToLower(name)
	if runes := []rune(key); len(runes) > dedupePrefixLen {
		key = string(runes[:dedupePrefixLen])
	}
	return key
}
