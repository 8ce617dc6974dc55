// Package scoring produces the heuristic popularity score used by the
// cold-start and trending rankers.
package scoring

import (
	"math"

	"github.com/shoplens/recommendation-service/internal/domain"
	"github.com/shoplens/recommendation-service/internal/normalize"
)

// defaultScore ranks a product ambiguously when its score cannot be
// computed; a broken record must never drop out of a ranked list.
const defaultScore = 0.5

// Popularity combines normalized rating, review count, and price into a
// single score in [0, 1]. Higher ratings and review counts raise the score;
// cheaper products score higher, saturating at price <= 1.
func Popularity(p domain.Product) float64 {
	rating := normalize.Rating(p.Rating)
	reviews := normalize.Reviews(p.Reviews)
	price := normalize.Price(p.Price)

	ratingScore := (rating / 5.0) * 0.4
	reviewScore := math.Min(float64(reviews)/1000.0, 1.0) * 0.3
	priceScore := math.Min(10000.0/math.Max(price, 1.0), 1.0) * 0.3

	score := ratingScore + reviewScore + priceScore
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return defaultScore
	}
	return score
}
