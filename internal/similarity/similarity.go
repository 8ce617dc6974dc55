// Package similarity ranks catalog products by TF-IDF cosine similarity
// over their names. An Index is built once per catalog snapshot and is
// read-only afterwards, so it is safe for concurrent queries.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

// DefaultMaxVocabulary caps the term space at the most frequent terms,
// keeping vectors small on large catalogs.
const DefaultMaxVocabulary = 1000

// tokenRegex is compiled once at package initialization
var tokenRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Neighbor is one ranked result from RankSimilar.
type Neighbor struct {
	Index int
	Score float64
}

// Index holds sparse TF-IDF vectors for every document in a snapshot.
type Index struct {
	vectors []map[int]float64 // document -> term id -> tf-idf weight
	norms   []float64
	size    int
}

// New builds a TF-IDF index over the given product names. Term frequency is
// relative to the document length, IDF is log(N/df), and only the
// maxVocabulary most frequent terms participate (ties broken
// alphabetically so builds are deterministic).
func New(names []string, maxVocabulary int) *Index {
	if maxVocabulary <= 0 {
		maxVocabulary = DefaultMaxVocabulary
	}

	idx := &Index{size: len(names)}
	if len(names) == 0 {
		return idx
	}

	docs := make([][]string, len(names))
	totalCounts := make(map[string]int)
	docFreq := make(map[string]int)
	for i, name := range names {
		tokens := tokenize(name)
		docs[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, token := range tokens {
			totalCounts[token]++
			if !seen[token] {
				seen[token] = true
				docFreq[token]++
			}
		}
	}

	// bounded vocabulary: keep the most frequent terms
	terms := make([]string, 0, len(totalCounts))
	for term := range totalCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalCounts[terms[i]] != totalCounts[terms[j]] {
			return totalCounts[terms[i]] > totalCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}
	termIDs := make(map[string]int, len(terms))
	for id, term := range terms {
		termIDs[term] = id
	}

	idx.vectors = make([]map[int]float64, len(names))
	idx.norms = make([]float64, len(names))
	totalDocs := float64(len(names))

	for i, tokens := range docs {
		vector := make(map[int]float64)
		if len(tokens) > 0 {
			counts := make(map[int]int)
			for _, token := range tokens {
				if id, ok := termIDs[token]; ok {
					counts[id]++
				}
			}
			for id, count := range counts {
				tf := float64(count) / float64(len(tokens))
				idf := math.Log(totalDocs / float64(docFreq[terms[id]]))
				if weight := tf * idf; weight > 0 {
					vector[id] = weight
				}
			}
		}

		var norm float64
		for _, weight := range vector {
			norm += weight * weight
		}
		idx.vectors[i] = vector
		idx.norms[i] = math.Sqrt(norm)
	}

	return idx
}

// Size returns the number of indexed documents.
func (x *Index) Size() int {
	return x.size
}

// RankSimilar returns the k documents most similar to the document at
// target, ordered by cosine similarity descending with ties broken by
// ascending document index. The target itself is excluded. An out-of-range
// target yields an empty result.
func (x *Index) RankSimilar(target, k int) []Neighbor {
	if target < 0 || target >= x.size || k <= 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, x.size-1)
	for i := 0; i < x.size; i++ {
		if i == target {
			continue
		}
		neighbors = append(neighbors, Neighbor{Index: i, Score: x.cosine(target, i)})
	}

	sort.SliceStable(neighbors, func(a, b int) bool {
		if neighbors[a].Score != neighbors[b].Score {
			return neighbors[a].Score > neighbors[b].Score
		}
		return neighbors[a].Index < neighbors[b].Index
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// cosine computes cosine similarity between two indexed documents,
// iterating the smaller vector.
func (x *Index) cosine(a, b int) float64 {
	if x.norms[a] == 0 || x.norms[b] == 0 {
		return 0
	}

	va, vb := x.vectors[a], x.vectors[b]
	if len(vb) < len(va) {
		va, vb = vb, va
	}

	var dot float64
	for id, weight := range va {
		if other, ok := vb[id]; ok {
			dot += weight * other
		}
	}
	return dot / (x.norms[a] * x.norms[b])
}

// tokenize lowercases, splits on non-alphanumerics, drops single
// characters and stop words, and stems what remains so "Running Shoes" and
// "running shoe" share terms.
func tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	for _, part := range tokenRegex.Split(text, -1) {
		if len(part) < 2 {
			continue
		}
		if _, stop := stopWords[part]; stop {
			continue
		}
		stemmed, err := snowball.Stem(part, "english", true)
		if err != nil || stemmed == "" {
			// keep the raw token when stemming fails
			stemmed = part
		}
		tokens = append(tokens, stemmed)
	}
	return tokens
}
