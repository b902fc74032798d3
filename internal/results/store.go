package results

import (
	"context"
	"errors"
	"sync"

	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/pkg/logger"
)

// Searcher produces normalized flight records for a search request.
type Searcher interface {
	Search(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error)
}

// ErrNoSearch is returned by Retry before any search has been submitted.
var ErrNoSearch = errors.New("no search has been submitted yet")

// Store owns the current search parameters, raw result set, loading/error
// state, filter settings and sort mode, and derives the display snapshot from
// them. Raw results replace wholesale on a successful fetch; only the latest
// issued request may commit its outcome.
type Store struct {
	mu       sync.Mutex
	searcher Searcher
	log      logger.Logger

	params   *models.SearchRequest
	raw      []models.FlightRecord
	loading  bool
	errMsg   string
	filters  models.FilterState
	sortMode models.SortMode

	requestID  uint64
	cancelPrev context.CancelFunc

	// Derived state is memoized per state version; recomputation on an
	// unchanged version is a cache hit, not a correctness requirement.
	version     uint64
	snapVersion uint64
	snapshot    models.ResultsView
}

func NewStore(searcher Searcher, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{
		searcher: searcher,
		log:      log,
		sortMode: models.SortCheapest,
		filters:  models.FilterState{Stops: []models.StopsBucket{}, Airlines: []string{}},
		version:  1,
	}
}

// Search submits a new search. The previous in-flight request is cancelled and
// its request id invalidated; a late completion from it is silently discarded,
// so overlapping searches resolve last-issued-wins rather than
// last-completed-wins.
func (s *Store) Search(ctx context.Context, params models.SearchRequest) error {
	s.mu.Lock()
	s.requestID++
	id := s.requestID
	if s.cancelPrev != nil {
		s.cancelPrev()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancelPrev = cancel

	p := params
	s.params = &p
	s.loading = true
	s.errMsg = ""
	s.version++
	s.mu.Unlock()

	defer cancel()

	records, err := s.searcher.Search(reqCtx, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.requestID {
		// Superseded while in flight; not an error, nothing to report.
		s.log.Debug("discarding stale search response", "requestId", id)
		return nil
	}

	s.loading = false
	s.version++

	if err != nil {
		s.raw = nil
		s.errMsg = err.Error()
		s.log.Warn("search failed", "requestId", id, "error", err)
		return err
	}

	s.raw = records
	s.log.Info("search completed", "requestId", id, "results", len(records))
	return nil
}

// Retry re-issues the last submitted search parameters.
func (s *Store) Retry(ctx context.Context) error {
	s.mu.Lock()
	if s.params == nil {
		s.mu.Unlock()
		return ErrNoSearch
	}
	params := *s.params
	s.mu.Unlock()

	return s.Search(ctx, params)
}

// HasSearch reports whether any search has been submitted; deep-link
// reconstruction only searches when this is false.
func (s *Store) HasSearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params != nil
}

// UpdateFilters merges a partial filter update into the current filter state.
func (s *Store) UpdateFilters(update models.FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Apply(update)
	s.version++
}

// SetSortMode switches the ordering; both tiers are recomputed from scratch.
func (s *Store) SetSortMode(mode models.SortMode) error {
	if !mode.Valid() {
		return errors.New("unknown sort mode: " + string(mode))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortMode = mode
	s.version++
	return nil
}

// Snapshot returns the derived view of the current state, recomputing only
// when some input has changed since the last call.
func (s *Store) Snapshot() models.ResultsView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapVersion == s.version {
		return s.snapshot
	}

	filtered := ApplyFilters(s.raw, s.filters)
	ranked := Rank(filtered, s.sortMode)

	view := models.ResultsView{
		SearchParams:      s.params,
		Loading:           s.loading,
		Error:             s.errMsg,
		TopResults:        ranked.Top,
		OtherResults:      ranked.Other,
		FilteredResults:   filtered,
		GraphPoints:       GraphPoints(filtered),
		AvailableAirlines: AvailableAirlines(s.raw),
		PriceRangeBounds:  PriceBounds(s.raw),
		DurationBounds:    DurationBounds(s.raw),
		Filters:           s.filters,
		SortMode:          s.sortMode,
		TotalResults:      len(s.raw),
	}

	s.snapshot = view
	s.snapVersion = s.version
	return view
}

// Page slices the full ordered listing (top tier then other tier) for the
// given page, mirroring the results table.
func (s *Store) Page(pageSize, currentPage int) models.PageView {
	view := s.Snapshot()
	ordered := make([]models.FlightRecord, 0, len(view.TopResults)+len(view.OtherResults))
	ordered = append(ordered, view.TopResults...)
	ordered = append(ordered, view.OtherResults...)
	return Paginate(ordered, pageSize, currentPage)
}
