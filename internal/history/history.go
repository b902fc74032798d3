// Package history keeps the last few unique searches so the form can offer
// them back. Persistence failures are deliberately invisible to callers: a
// broken history must never break a search.
package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/pkg/logger"
)

const (
	// Fixed namespace key for the whole recent-searches list.
	storageKey = "spotter-sky:recent-searches"

	maxEntries = 5
	opTimeout  = 2 * time.Second
)

// Store persists recent searches in redis under a single key.
type Store struct {
	client *redis.Client
	log    logger.Logger
}

func NewStore(client *redis.Client, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{client: client, log: log}
}

// Add records a submitted search, deduplicating by identity key and keeping
// the newest five. Errors are logged and swallowed.
func (s *Store) Add(ctx context.Context, params models.SearchRequest) {
	if s.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	entries := s.load(ctx)

	next := make([]models.SearchRequest, 0, len(entries)+1)
	next = append(next, params)
	for _, e := range entries {
		if e.Key() == params.Key() {
			continue
		}
		next = append(next, e)
	}
	if len(next) > maxEntries {
		next = next[:maxEntries]
	}

	data, err := json.Marshal(next)
	if err != nil {
		s.log.Warn("failed to encode recent searches", "error", err)
		return
	}
	if err := s.client.Set(ctx, storageKey, data, 0).Err(); err != nil {
		s.log.Warn("failed to persist recent searches", "error", err)
	}
}

// List returns the stored searches, newest first; empty on any failure.
func (s *Store) List(ctx context.Context) []models.SearchRequest {
	if s.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) []models.SearchRequest {
	data, err := s.client.Get(ctx, storageKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("failed to read recent searches", "error", err)
		}
		return nil
	}

	var entries []models.SearchRequest
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn("failed to decode recent searches", "error", err)
		return nil
	}
	return entries
}
