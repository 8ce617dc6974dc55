package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shoplens/recommendation-service/internal/domain"
)

// Per-algorithm TTLs. Trending shifts fastest, similar-item lists are the
// most stable.
const (
	ColdStartTTL = time.Hour
	TrendingTTL  = 30 * time.Minute
	SimilarTTL   = 2 * time.Hour
)

type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func ColdStartKey(interests []domain.Interest, limit int) string {
	h := fnv.New64a()
	for _, interest := range interests {
		fmt.Fprintf(h, "%s:%d;", interest.Category, interest.InterestLevel)
	}
	return fmt.Sprintf("rec:cold_start:%x:%d", h.Sum64(), limit)
}

func TrendingKey(limit int) string {
	return fmt.Sprintf("rec:trending:%d", limit)
}

func SimilarKey(productIndex, limit int) string {
	return fmt.Sprintf("rec:similar:%d:%d", productIndex, limit)
}

// Get returns cached entries for key, reporting whether the key was present.
func (c *Cache) Get(ctx context.Context, key string) ([]domain.RecommendationEntry, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var entries []domain.RecommendationEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached entries %s: %w", key, err)
	}
	return entries, true, nil
}

// Set stores entries under key for the given TTL.
func (c *Cache) Set(ctx context.Context, key string, entries []domain.RecommendationEntry, ttl time.Duration) error {
	val, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate drops every cached recommendation list. Used after a catalog
// refresh: product indices are positional and do not survive the new
// snapshot.
func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "rec:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
