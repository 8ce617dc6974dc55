package service

import (
	"context"
	"log"
	"time"

	"github.com/shoplens/recommendation-service/internal/cache"
	"github.com/shoplens/recommendation-service/internal/domain"
	"github.com/shoplens/recommendation-service/internal/engine"
)

const (
	coldStartDefaultLimit = 20
	trendingDefaultLimit  = 20
	similarDefaultLimit   = 10
	maxLimit              = 50
)

// Service wraps the engine with limit clamping and cache-aside response
// caching. The engine itself never sees the cache.
type Service struct {
	engine *engine.Engine
	cache  *cache.Cache // nil when redis is unavailable
}

func NewService(eng *engine.Engine, c *cache.Cache) *Service {
	return &Service{engine: eng, cache: c}
}

func (s *Service) ColdStart(ctx context.Context, interests []domain.Interest, limit int) []domain.RecommendationEntry {
	limit = clampLimit(limit, coldStartDefaultLimit)
	key := cache.ColdStartKey(interests, limit)
	if entries, ok := s.cacheGet(ctx, key); ok {
		return entries
	}

	entries := s.engine.ColdStart(ctx, interests, limit)
	s.cacheSet(ctx, key, entries, cache.ColdStartTTL)
	return entries
}

func (s *Service) Trending(ctx context.Context, limit int) []domain.RecommendationEntry {
	limit = clampLimit(limit, trendingDefaultLimit)
	key := cache.TrendingKey(limit)
	if entries, ok := s.cacheGet(ctx, key); ok {
		return entries
	}

	entries := s.engine.Trending(ctx, limit)
	s.cacheSet(ctx, key, entries, cache.TrendingTTL)
	return entries
}

func (s *Service) Similar(ctx context.Context, productIndex, limit int) []domain.RecommendationEntry {
	limit = clampLimit(limit, similarDefaultLimit)
	key := cache.SimilarKey(productIndex, limit)
	if entries, ok := s.cacheGet(ctx, key); ok {
		return entries
	}

	entries := s.engine.Similar(ctx, productIndex, limit)
	s.cacheSet(ctx, key, entries, cache.SimilarTTL)
	return entries
}

// Refresh reloads the catalog and, when the snapshot actually changed,
// drops every cached recommendation list.
func (s *Service) Refresh(ctx context.Context) int {
	count := s.engine.Refresh(ctx)
	if count > 0 && s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("[service] cache invalidation error: %v", err)
		}
	}
	return count
}

func (s *Service) Stats() domain.Stats {
	return s.engine.Stats()
}

// CacheStatus reports cache connectivity for the stats endpoint.
func (s *Service) CacheStatus(ctx context.Context) string {
	if s.cache == nil {
		return "disconnected"
	}
	if err := s.cache.Ping(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}

func (s *Service) cacheGet(ctx context.Context, key string) ([]domain.RecommendationEntry, bool) {
	if s.cache == nil {
		return nil, false
	}
	entries, found, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[service] cache get error for %s: %v", key, err)
		return nil, false
	}
	return entries, found
}

func (s *Service) cacheSet(ctx context.Context, key string, entries []domain.RecommendationEntry, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, entries, ttl); err != nil {
		log.Printf("[service] cache set error for %s: %v", key, err)
	}
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
