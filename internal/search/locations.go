package search

import (
	"context"
	"strings"
	"sync"

	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/pkg/logger"
)

// LocationSource is the autocomplete surface of the provider.
type LocationSource interface {
	SearchLocations(ctx context.Context, keyword string) ([]models.LocationOption, error)
}

// LocationService answers autocomplete lookups. Results are cached in memory
// by lowercased keyword for the lifetime of the service, and a new lookup
// cancels the previous in-flight one.
type LocationService struct {
	source LocationSource
	log    logger.Logger

	mu         sync.Mutex
	cache      map[string][]models.LocationOption
	cancelPrev context.CancelFunc
}

func NewLocationService(source LocationSource, log logger.Logger) *LocationService {
	if log == nil {
		log = logger.NewNop()
	}
	return &LocationService{
		source: source,
		log:    log,
		cache:  make(map[string][]models.LocationOption),
	}
}

// Lookup returns location options for a keyword. Failures degrade to an empty
// list; autocomplete is best-effort.
func (s *LocationService) Lookup(ctx context.Context, keyword string) []models.LocationOption {
	key := strings.ToLower(strings.TrimSpace(keyword))
	if len(key) < 2 {
		return nil
	}

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return cached
	}
	if s.cancelPrev != nil {
		s.cancelPrev()
	}
	lookupCtx, cancel := context.WithCancel(ctx)
	s.cancelPrev = cancel
	s.mu.Unlock()

	options, err := s.source.SearchLocations(lookupCtx, key)
	if err != nil {
		if lookupCtx.Err() == nil {
			s.log.Warn("location lookup failed", "keyword", key, "error", err)
		}
		return nil
	}

	s.mu.Lock()
	s.cache[key] = options
	s.mu.Unlock()

	return options
}
