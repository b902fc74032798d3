package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nvarma/skyfinder/internal/models"
)

// Cache stores normalized result sets keyed by search identity.
type Cache interface {
	Get(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, bool)
	Set(ctx context.Context, params models.SearchRequest, flights []models.FlightRecord) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, bool) {
	data, err := c.client.Get(ctx, generateKey(params)).Bytes()
	if err != nil {
		return nil, false
	}

	var flights []models.FlightRecord
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, false
	}

	return flights, true
}

func (c *RedisCache) Set(ctx context.Context, params models.SearchRequest, flights []models.FlightRecord) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey(params), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Client exposes the underlying connection for co-located stores (history).
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, params models.SearchRequest, flights []models.FlightRecord) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(params models.SearchRequest) string {
	hash := sha256.Sum256([]byte(params.Key()))
	return "flight:" + hex.EncodeToString(hash[:])
}
