package search

import (
	"context"
	"sync"
	"time"

	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/internal/results"
	"github.com/nvarma/skyfinder/pkg/debounce"
)

// DefaultAutoSearchDelay matches the form's auto-search debounce.
const DefaultAutoSearchDelay = 600 * time.Millisecond

// AutoSearcher re-runs the search as parameters change: submissions are
// debounced, and a firing whose identity key equals the last fetched key is
// suppressed so unrelated updates cause no redundant provider calls.
type AutoSearcher struct {
	mu        sync.Mutex
	store     *results.Store
	debouncer *debounce.Debouncer
	lastKey   string
}

func NewAutoSearcher(store *results.Store, delay time.Duration) *AutoSearcher {
	if delay <= 0 {
		delay = DefaultAutoSearchDelay
	}
	return &AutoSearcher{
		store:     store,
		debouncer: debounce.New(delay),
	}
}

// Queue schedules a search for the given parameters, superseding any pending
// one.
func (a *AutoSearcher) Queue(params models.SearchRequest) {
	a.debouncer.Trigger(func() {
		key := params.Key()

		a.mu.Lock()
		if key == a.lastKey {
			a.mu.Unlock()
			return
		}
		a.lastKey = key
		a.mu.Unlock()

		// Store-level request ids keep a late completion from clobbering a
		// newer search.
		_ = a.store.Search(context.Background(), params)
	})
}

// Stop cancels any pending auto-search.
func (a *AutoSearcher) Stop() {
	a.debouncer.Stop()
}
