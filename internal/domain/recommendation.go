package domain

type Algorithm string

const (
	AlgorithmColdStart    Algorithm = "cold_start"
	AlgorithmContentBased Algorithm = "content_based"
	AlgorithmTrending     Algorithm = "trending"
)

// Interest is a caller-stated preference used for cold-start ranking.
// InterestLevel runs 0-10; 10 weighs the category's popularity fully.
type Interest struct {
	Category      string `json:"category"`
	InterestLevel int    `json:"interest_level"`
}

// RecommendationEntry is one ranked result. Score is only comparable to
// other entries in the same response.
type RecommendationEntry struct {
	Product   Product   `json:"product"`
	Score     float64   `json:"score"`
	Reason    string    `json:"reason"`
	Algorithm Algorithm `json:"algorithm"`
}

type Stats struct {
	TotalProducts int            `json:"total_products"`
	Categories    map[string]int `json:"categories"`
	Marketplaces  map[string]int `json:"marketplaces"`
}
