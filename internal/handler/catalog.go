package handler

import (
	"fmt"
	"net/http"
	"time"
)

// POST /recommendations/update-data
func (h *Handler) UpdateData(w http.ResponseWriter, r *http.Request) {
	count := h.service.Refresh(r.Context())
	if count == 0 {
		writeJSON(w, http.StatusOK, UpdateResponse{
			Success: false,
			Message: "Refresh returned no products, previous catalog kept",
		})
		return
	}
	writeJSON(w, http.StatusOK, UpdateResponse{
		Success: true,
		Message: fmt.Sprintf("Updated product data with %d products", count),
	})
}

// GET /recommendations/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats()
	writeJSON(w, http.StatusOK, StatsResponse{
		TotalProducts: stats.TotalProducts,
		Categories:    stats.Categories,
		Marketplaces:  stats.Marketplaces,
		LastUpdated:   time.Now().UTC().Format(time.RFC3339),
		CacheStatus:   h.service.CacheStatus(r.Context()),
	})
}
