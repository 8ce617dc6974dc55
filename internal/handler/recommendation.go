package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shoplens/recommendation-service/internal/domain"
)

// defaultInterestLevel applies when the caller omits interest_level.
const defaultInterestLevel = 5

// POST /recommendations/cold-start
func (h *Handler) ColdStart(w http.ResponseWriter, r *http.Request) {
	var req ColdStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid request body")
		return
	}
	if len(req.Interests) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "User interests are required")
		return
	}

	interests := make([]domain.Interest, 0, len(req.Interests))
	for _, payload := range req.Interests {
		level := defaultInterestLevel
		if payload.InterestLevel != nil {
			level = *payload.InterestLevel
		}
		interests = append(interests, domain.Interest{
			Category:      payload.Category,
			InterestLevel: level,
		})
	}

	entries := h.service.ColdStart(r.Context(), interests, req.Limit)
	writeJSON(w, http.StatusOK, RecommendationResponse{
		Recommendations: entries,
		Algorithm:       domain.AlgorithmColdStart,
		Total:           len(entries),
	})
}

// GET /recommendations/trending
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	entries := h.service.Trending(r.Context(), limit)
	writeJSON(w, http.StatusOK, RecommendationResponse{
		Recommendations: entries,
		Algorithm:       domain.AlgorithmTrending,
		Total:           len(entries),
	})
}

// GET /recommendations/similar/{productID}
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	productIDStr := chi.URLParam(r, "productID")
	productID, err := strconv.Atoi(productIDStr)
	if err != nil || productID < 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid product_id parameter")
		return
	}

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	entries := h.service.Similar(r.Context(), productID, limit)
	writeJSON(w, http.StatusOK, RecommendationResponse{
		Recommendations: entries,
		Algorithm:       domain.AlgorithmContentBased,
		Total:           len(entries),
		ProductID:       &productID,
	})
}

// parseLimit validates the optional limit query parameter, writing a 400
// response itself when the value is unusable. Zero means "use the
// algorithm's default".
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(limitStr)
	if err != nil || parsed < 1 || parsed > 50 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
		return 0, false
	}
	return parsed, true
}
