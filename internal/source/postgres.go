package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shoplens/recommendation-service/internal/domain"
)

// PostgresSource reads product rows from the backend's products and offers
// tables, for deployments that refresh the catalog from the shared database
// instead of the live scraper service. Null attributes come back as the
// "N/A" sentinel so the normalizer applies its usual fallbacks.
type PostgresSource struct {
	pool  *pgxpool.Pool
	limit int
}

func NewPostgresSource(pool *pgxpool.Pool, limit int) *PostgresSource {
	if limit <= 0 {
		limit = defaultPerQueryLimit
	}
	return &PostgresSource{pool: pool, limit: limit}
}

func (s *PostgresSource) Fetch(ctx context.Context, query string) ([]domain.RawProduct, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.title,
		        COALESCE(p.avg_rating::text, 'N/A'),
		        COALESCE(p.review_count::text, 'N/A'),
		        COALESCE(o.current_price::text, 'N/A'),
		        COALESCE(o.url, ''),
		        COALESCE(o.seller_site, '')
		 FROM products p
		 LEFT JOIN offers o ON o.product_id = p.id
		 WHERE p.title ILIKE '%' || $1 || '%'
		 ORDER BY p.updated_at DESC
		 LIMIT $2`, query, s.limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query products for %q: %w", query, err)
	}
	defer rows.Close()

	var records []domain.RawProduct
	for rows.Next() {
		var title, rating, reviews, price, offerURL, site string
		if err := rows.Scan(&title, &rating, &reviews, &price, &offerURL, &site); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		records = append(records, domain.RawProduct{
			Name:        title,
			Rating:      domain.Attr(rating),
			Reviews:     domain.Attr(reviews),
			Price:       domain.Attr(price),
			URL:         offerURL,
			Marketplace: site,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return records, nil
}
