package handler

import "github.com/shoplens/recommendation-service/internal/domain"

type InterestPayload struct {
	Category      string `json:"category"`
	InterestLevel *int   `json:"interest_level"`
}

type ColdStartRequest struct {
	Interests []InterestPayload `json:"interests"`
	Limit     int               `json:"limit"`
}

type RecommendationResponse struct {
	Recommendations []domain.RecommendationEntry `json:"recommendations"`
	Algorithm       domain.Algorithm             `json:"algorithm"`
	Total           int                          `json:"total"`
	ProductID       *int                         `json:"product_id,omitempty"`
}

type UpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type StatsResponse struct {
	TotalProducts int            `json:"total_products"`
	Categories    map[string]int `json:"categories"`
	Marketplaces  map[string]int `json:"marketplaces"`
	LastUpdated   string         `json:"last_updated"`
	CacheStatus   string         `json:"cache_status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
