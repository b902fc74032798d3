package search

import (
	"context"
	"time"

	"github.com/nvarma/skyfinder/internal/amadeus"
	"github.com/nvarma/skyfinder/internal/cache"
	"github.com/nvarma/skyfinder/internal/history"
	"github.com/nvarma/skyfinder/internal/mockdata"
	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/internal/normalizer"
	"github.com/nvarma/skyfinder/pkg/logger"
	"github.com/nvarma/skyfinder/pkg/metrics"
)

// OfferSource is the provider surface the service depends on.
type OfferSource interface {
	SearchOffers(ctx context.Context, params models.SearchRequest) ([]amadeus.Offer, error)
}

// Service turns a search request into normalized flight records: cache first,
// then the live provider, degrading to the mock generator when allowed.
type Service struct {
	source       OfferSource
	cache        cache.Cache
	history      *history.Store
	metrics      *metrics.Metrics
	log          logger.Logger
	mockFallback bool
}

func NewService(source OfferSource, c cache.Cache, h *history.Store, m *metrics.Metrics, log logger.Logger, mockFallback bool) *Service {
	if c == nil {
		c = cache.NewNoOpCache()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		source:       source,
		cache:        c,
		history:      h,
		metrics:      m,
		log:          log,
		mockFallback: mockFallback,
	}
}

// Search implements results.Searcher.
func (s *Service) Search(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
	start := time.Now()
	if s.metrics != nil {
		s.metrics.SearchesTotal.Inc()
		defer func() {
			s.metrics.SearchDuration.Observe(time.Since(start).Seconds())
		}()
	}

	if cached, found := s.cache.Get(ctx, params); found {
		if s.metrics != nil {
			s.metrics.CacheHits.Inc()
		}
		s.recordHistory(ctx, params)
		return cached, nil
	}

	offers, err := s.source.SearchOffers(ctx, params)
	if err != nil {
		// A superseded request's cancellation is not a provider failure.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if s.metrics != nil {
			s.metrics.ProviderErrors.WithLabelValues("offers").Inc()
		}
		if s.mockFallback {
			s.log.Warn("provider unavailable, serving mock results",
				"origin", params.Origin, "destination", params.Destination, "error", err)
			if s.metrics != nil {
				s.metrics.MockFallbacks.Inc()
			}
			s.recordHistory(ctx, params)
			return mockdata.Generate(params), nil
		}
		return nil, err
	}

	// A malformed offer drops out on its own; it never fails the search.
	records := make([]models.FlightRecord, 0, len(offers))
	for _, offer := range offers {
		if record := normalizer.Normalize(offer); record != nil {
			records = append(records, *record)
		}
	}

	if err := s.cache.Set(ctx, params, records); err != nil {
		s.log.Warn("failed to cache search results", "error", err)
	}
	s.recordHistory(ctx, params)

	return records, nil
}

func (s *Service) recordHistory(ctx context.Context, params models.SearchRequest) {
	if s.history != nil {
		s.history.Add(ctx, params)
	}
}
