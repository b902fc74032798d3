package results

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarma/skyfinder/internal/models"
)

type fakeSearcher struct {
	mu      sync.Mutex
	calls   []models.SearchRequest
	respond func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error)
}

func (f *fakeSearcher) Search(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	fn := f.respond
	f.mu.Unlock()
	return fn(ctx, params)
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func request(origin string) models.SearchRequest {
	return models.SearchRequest{
		Origin:        origin,
		Destination:   "LAX",
		DepartureDate: "2025-05-01",
		Passengers:    models.Passengers{Adults: 1},
		TravelClass:   models.ClassEconomy,
	}
}

func TestStore_InitialSnapshot(t *testing.T) {
	store := NewStore(&fakeSearcher{}, nil)

	assert.False(t, store.HasSearch())

	view := store.Snapshot()
	assert.Nil(t, view.SearchParams)
	assert.False(t, view.Loading)
	assert.Empty(t, view.Error)
	assert.Empty(t, view.TopResults)
	assert.Empty(t, view.OtherResults)
	assert.Equal(t, models.SortCheapest, view.SortMode)
	assert.Zero(t, view.TotalResults)
}

func TestStore_SearchSuccess(t *testing.T) {
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
			return []models.FlightRecord{
				flight("a", "SkyJet", 200, 0, minutes(300)),
				flight("b", "AeroBlue", 150, 1, minutes(200)),
			}, nil
		},
	}
	store := NewStore(searcher, nil)

	require.NoError(t, store.Search(context.Background(), request("JFK")))
	assert.True(t, store.HasSearch())

	view := store.Snapshot()
	require.NotNil(t, view.SearchParams)
	assert.Equal(t, "JFK", view.SearchParams.Origin)
	assert.False(t, view.Loading)
	assert.Empty(t, view.Error)
	assert.Equal(t, 2, view.TotalResults)
	assert.Equal(t, []string{"b", "a"}, ids(view.TopResults))
	assert.Equal(t, []string{"AeroBlue", "SkyJet"}, view.AvailableAirlines)
	require.NotNil(t, view.PriceRangeBounds)
	assert.Equal(t, 150.0, view.PriceRangeBounds.Min)
}

func TestStore_SearchErrorClearsResults(t *testing.T) {
	results := []models.FlightRecord{flight("a", "SkyJet", 200, 0, nil)}
	var fail bool
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
			if fail {
				return nil, errors.New("provider unavailable")
			}
			return results, nil
		},
	}
	store := NewStore(searcher, nil)

	require.NoError(t, store.Search(context.Background(), request("JFK")))
	require.Equal(t, 1, store.Snapshot().TotalResults)

	fail = true
	err := store.Search(context.Background(), request("EWR"))
	require.Error(t, err)

	view := store.Snapshot()
	assert.Equal(t, "provider unavailable", view.Error)
	assert.Zero(t, view.TotalResults)
	assert.Empty(t, view.TopResults)
	assert.False(t, view.Loading)
}

func TestStore_LastIssuedSearchWins(t *testing.T) {
	started := make(chan string, 2)
	gateFirst := make(chan struct{})
	gateSecond := make(chan struct{})

	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
			started <- params.Origin
			switch params.Origin {
			case "AAA":
				<-gateFirst
				return nil, errors.New("late failure")
			default:
				<-gateSecond
				return []models.FlightRecord{flight("winner", "SkyJet", 200, 0, nil)}, nil
			}
		},
	}
	store := NewStore(searcher, nil)

	done1 := make(chan error, 1)
	go func() { done1 <- store.Search(context.Background(), request("AAA")) }()
	require.Equal(t, "AAA", <-started)

	done2 := make(chan error, 1)
	go func() { done2 <- store.Search(context.Background(), request("BBB")) }()
	require.Equal(t, "BBB", <-started)

	// The second (latest) search completes first and commits.
	close(gateSecond)
	require.NoError(t, <-done2)

	view := store.Snapshot()
	assert.Equal(t, []string{"winner"}, ids(view.TopResults))
	assert.False(t, view.Loading)

	// The superseded search resolves afterwards; its failure must not reach
	// the view, and it reports no error to its caller either.
	close(gateFirst)
	require.NoError(t, <-done1)

	view = store.Snapshot()
	assert.Empty(t, view.Error)
	assert.Equal(t, []string{"winner"}, ids(view.TopResults))
	require.NotNil(t, view.SearchParams)
	assert.Equal(t, "BBB", view.SearchParams.Origin)
}

func TestStore_NewSearchCancelsPrevious(t *testing.T) {
	started := make(chan struct{}, 2)
	canceled := make(chan struct{}, 1)

	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
			started <- struct{}{}
			if params.Origin == "AAA" {
				<-ctx.Done()
				canceled <- struct{}{}
				return nil, ctx.Err()
			}
			return nil, nil
		},
	}
	store := NewStore(searcher, nil)

	go func() { _ = store.Search(context.Background(), request("AAA")) }()
	<-started

	require.NoError(t, store.Search(context.Background(), request("BBB")))
	<-canceled
}

func TestStore_Retry(t *testing.T) {
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
			return nil, nil
		},
	}
	store := NewStore(searcher, nil)

	assert.ErrorIs(t, store.Retry(context.Background()), ErrNoSearch)

	require.NoError(t, store.Search(context.Background(), request("JFK")))
	require.NoError(t, store.Retry(context.Background()))

	require.Equal(t, 2, searcher.callCount())
	assert.Equal(t, searcher.calls[0], searcher.calls[1])
}

func TestStore_UpdateFiltersRecomputesView(t *testing.T) {
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
			return []models.FlightRecord{
				flight("nonstop", "SkyJet", 200, 0, minutes(300)),
				flight("one-stop", "AeroBlue", 150, 1, minutes(200)),
			}, nil
		},
	}
	store := NewStore(searcher, nil)
	require.NoError(t, store.Search(context.Background(), request("JFK")))

	stops := []models.StopsBucket{models.StopsNonstop}
	store.UpdateFilters(models.FilterUpdate{Stops: &stops})

	view := store.Snapshot()
	assert.Equal(t, []string{"nonstop"}, ids(view.FilteredResults))
	// Raw-set derived fields are unaffected by filtering.
	assert.Equal(t, 2, view.TotalResults)
	assert.Equal(t, []string{"AeroBlue", "SkyJet"}, view.AvailableAirlines)

	// Clearing the stops filter restores the full set.
	empty := []models.StopsBucket{}
	store.UpdateFilters(models.FilterUpdate{Stops: &empty})
	assert.Len(t, store.Snapshot().FilteredResults, 2)
}

func TestStore_SetSortMode(t *testing.T) {
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
			return []models.FlightRecord{
				flight("slow-cheap", "SkyJet", 100, 2, minutes(500)),
				flight("nonstop", "AeroBlue", 120, 0, minutes(200)),
				flight("pricey", "CloudNine", 300, 1, minutes(300)),
			}, nil
		},
	}
	store := NewStore(searcher, nil)
	require.NoError(t, store.Search(context.Background(), request("JFK")))

	assert.Equal(t, []string{"slow-cheap", "nonstop", "pricey"}, ids(store.Snapshot().TopResults))

	require.NoError(t, store.SetSortMode(models.SortBest))
	assert.Equal(t, []string{"nonstop", "pricey", "slow-cheap"}, ids(store.Snapshot().TopResults))

	assert.Error(t, store.SetSortMode(models.SortMode("FASTEST")))
	assert.Equal(t, models.SortBest, store.Snapshot().SortMode)
}

func TestStore_PageSpansBothTiers(t *testing.T) {
	searcher := &fakeSearcher{
		respond: func(ctx context.Context, params models.SearchRequest) ([]models.FlightRecord, error) {
			return numberedFlights(7), nil
		},
	}
	store := NewStore(searcher, nil)
	require.NoError(t, store.Search(context.Background(), request("JFK")))

	view := store.Snapshot()
	require.Len(t, view.TopResults, 3)
	require.Len(t, view.OtherResults, 4)

	// Page one crosses the tier boundary: three top records then two other.
	page := store.Page(5, 1)
	require.Len(t, page.Items, 5)
	assert.Equal(t, append(ids(view.TopResults), ids(view.OtherResults[:2])...), ids(page.Items))
	assert.Equal(t, 2, page.PageCount)

	page = store.Page(5, 2)
	assert.Equal(t, ids(view.OtherResults[2:]), ids(page.Items))
}
