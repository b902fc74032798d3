package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nvarma/skyfinder/internal/amadeus"
	"github.com/nvarma/skyfinder/internal/cache"
	"github.com/nvarma/skyfinder/internal/handler"
	"github.com/nvarma/skyfinder/internal/history"
	"github.com/nvarma/skyfinder/internal/ratelimit"
	"github.com/nvarma/skyfinder/internal/results"
	"github.com/nvarma/skyfinder/internal/search"
	"github.com/nvarma/skyfinder/pkg/logger"
	"github.com/nvarma/skyfinder/pkg/metrics"
)

type Config struct {
	Port          string
	Environment   string
	AmadeusURL    string
	AmadeusID     string
	AmadeusSecret string
	MockFallback  bool
	CacheEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisTTL      time.Duration
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	zlog := logger.NewLogger()
	m := metrics.New("skyfinder")

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewEndpointLimiterWithDefaults()
	rateLimiter.SetEndpointLimit("token", 1, 2)
	rateLimiter.SetEndpointLimit("offers", 5, 10)
	rateLimiter.SetEndpointLimit("locations", 10, 20)

	client := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.AmadeusURL,
		ClientID:     cfg.AmadeusID,
		ClientSecret: cfg.AmadeusSecret,
		Limiter:      rateLimiter,
		Logger:       zlog,
	}, amadeus.NewTokenCache())

	var flightCache cache.Cache
	var historyStore *history.Store
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		flightCache = redisCache
		historyStore = history.NewStore(redisCache.Client(), zlog)
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		flightCache = cache.NewNoOpCache()
		historyStore = history.NewStore(nil, zlog)
		log.Println("Cache disabled")
	}

	// Production deployments must surface provider errors instead of
	// degrading to synthetic results.
	mockFallback := cfg.MockFallback && cfg.Environment != "production"
	if !client.Configured() && !mockFallback {
		log.Fatal("Amadeus credentials are not configured and mock fallback is disabled")
	}
	if mockFallback {
		log.Println("Mock fallback enabled")
	}

	svc := search.NewService(client, flightCache, historyStore, m, zlog, mockFallback)
	store := results.NewStore(svc, zlog)
	autoSearch := search.NewAutoSearcher(store, search.DefaultAutoSearchDelay)
	defer autoSearch.Stop()
	locations := search.NewLocationService(client, zlog)

	searchHandler := handler.NewSearchHandler(store, autoSearch, locations, historyStore)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.POST("/flights/autosearch", searchHandler.AutoSearch)
	api.GET("/flights/results", searchHandler.Results)
	api.PATCH("/flights/filters", searchHandler.UpdateFilters)
	api.PUT("/flights/sort", searchHandler.SetSort)
	api.POST("/flights/retry", searchHandler.Retry)
	api.GET("/locations", searchHandler.Locations)
	api.GET("/searches/recent", searchHandler.Recent)
	e.GET("/health", handler.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	log.Printf("Starting flight search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AmadeusURL:    getEnv("AMADEUS_BASE_URL", amadeus.DefaultBaseURL),
		AmadeusID:     getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),
		MockFallback:  getEnvBool("MOCK_FALLBACK", true),
		CacheEnabled:  getEnvBool("CACHE_ENABLED", true),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisTTL:      getEnvDuration("REDIS_TTL", 5*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
