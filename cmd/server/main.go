package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shoplens/recommendation-service/internal/cache"
	"github.com/shoplens/recommendation-service/internal/config"
	"github.com/shoplens/recommendation-service/internal/engine"
	"github.com/shoplens/recommendation-service/internal/handler"
	"github.com/shoplens/recommendation-service/internal/router"
	"github.com/shoplens/recommendation-service/internal/service"
	"github.com/shoplens/recommendation-service/internal/source"
	"github.com/shoplens/recommendation-service/internal/taxonomy"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ Redis (optional) ---------------
	responseCache := connectCache(ctx, cfg.RedisURL)

	// ------------ Catalog source ---------------
	var fetcher engine.Fetcher
	switch cfg.CatalogSource {
	case "postgres":
		poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to parse database config %v", err)
		}
		poolConfig.MaxConns = int32(cfg.DBPoolSize)
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Fatalf("failed to connect to database %v", err)
		}
		defer pool.Close()
		fetcher = source.NewPostgresSource(pool, cfg.PerQueryLimit)
		log.Println("catalog source: postgres")
	default:
		fetcher = source.NewScraperSource(cfg.ScraperURL, cfg.PerQueryLimit)
		log.Printf("catalog source: scraper at %s", cfg.ScraperURL)
	}

	eng := engine.New(fetcher, taxonomy.NewClassifier(nil), engine.Config{
		Queries:       cfg.RefreshQueries,
		MaxVocabulary: cfg.MaxVocabulary,
		FetchTimeout:  cfg.FetchTimeout,
	})

	// ------------ Catalog bootstrap ---------------
	// the engine retries lazily on the first request if this comes up empty
	if count := eng.Refresh(ctx); count > 0 {
		log.Printf("catalog bootstrapped with %d products", count)
	} else {
		log.Println("catalog bootstrap returned no products")
	}

	svc := service.NewService(eng, responseCache)
	h := handler.NewHandler(svc)

	// ---------------- Server --------------------
	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router.Setup(h)))
}

// connectCache dials redis, downgrading to cacheless operation when it is
// unavailable.
func connectCache(ctx context.Context, redisURL string) *cache.Cache {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid redis url, running without cache: %v", err)
		return nil
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis not available, running without cache: %v", err)
		return nil
	}
	log.Println("connected to Redis")
	return cache.NewCache(client)
}
