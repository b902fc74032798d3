package results

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvarma/skyfinder/internal/models"
)

func flight(id, airline string, price float64, stops int, durationMinutes *int) models.FlightRecord {
	return models.FlightRecord{
		ID:              id,
		Airline:         airline,
		Price:           models.Price{Total: price, Currency: "USD"},
		Stops:           stops,
		DurationMinutes: durationMinutes,
	}
}

func minutes(v int) *int {
	return &v
}

func TestPriceBounds(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		assert.Nil(t, PriceBounds(nil))
		assert.Nil(t, PriceBounds([]models.FlightRecord{}))
	})

	t.Run("no usable prices", func(t *testing.T) {
		flights := []models.FlightRecord{
			flight("a", "X", math.NaN(), 0, nil),
			flight("b", "X", math.NaN(), 0, nil),
		}
		assert.Nil(t, PriceBounds(flights))
	})

	t.Run("min and max", func(t *testing.T) {
		flights := []models.FlightRecord{
			flight("a", "X", 300, 0, nil),
			flight("b", "X", 150, 0, nil),
			flight("c", "X", 200, 0, nil),
		}
		bounds := PriceBounds(flights)
		require.NotNil(t, bounds)
		assert.Equal(t, 150.0, bounds.Min)
		assert.Equal(t, 300.0, bounds.Max)
	})

	t.Run("skips records without a usable price", func(t *testing.T) {
		flights := []models.FlightRecord{
			flight("a", "X", 200, 0, nil),
			flight("b", "X", math.NaN(), 0, nil),
		}
		bounds := PriceBounds(flights)
		require.NotNil(t, bounds)
		assert.Equal(t, 200.0, bounds.Min)
		assert.Equal(t, 200.0, bounds.Max)
	})

	t.Run("legacy string price survives a cache round trip", func(t *testing.T) {
		var f models.FlightRecord
		require.NoError(t, json.Unmarshal([]byte(`{"id":"legacy","price":"$1,234.50"}`), &f))

		bounds := PriceBounds([]models.FlightRecord{f})
		require.NotNil(t, bounds)
		assert.InDelta(t, 1234.50, bounds.Min, 0.001)
	})
}

func TestDurationBounds(t *testing.T) {
	t.Run("none known", func(t *testing.T) {
		flights := []models.FlightRecord{
			flight("a", "X", 100, 0, nil),
		}
		assert.Nil(t, DurationBounds(flights))
	})

	t.Run("unknown durations are skipped", func(t *testing.T) {
		flights := []models.FlightRecord{
			flight("a", "X", 100, 0, minutes(300)),
			flight("b", "X", 100, 0, nil),
			flight("c", "X", 100, 0, minutes(180)),
		}
		bounds := DurationBounds(flights)
		require.NotNil(t, bounds)
		assert.Equal(t, 180, bounds.Min)
		assert.Equal(t, 300, bounds.Max)
	})
}

func TestEffectivePriceRange(t *testing.T) {
	bounds := &models.PriceRange{Min: 100, Max: 500}

	tests := []struct {
		name    string
		filter  *models.PriceRange
		wantMin float64
		wantMax float64
	}{
		{name: "no stored filter", filter: nil, wantMin: 100, wantMax: 500},
		{name: "inside bounds", filter: &models.PriceRange{Min: 150, Max: 400}, wantMin: 150, wantMax: 400},
		{name: "below bounds", filter: &models.PriceRange{Min: 10, Max: 50}, wantMin: 100, wantMax: 100},
		{name: "above bounds", filter: &models.PriceRange{Min: 600, Max: 900}, wantMin: 500, wantMax: 500},
		{name: "straddles both edges", filter: &models.PriceRange{Min: 50, Max: 900}, wantMin: 100, wantMax: 500},
		{name: "inverted stored range", filter: &models.PriceRange{Min: 400, Max: 200}, wantMin: 400, wantMax: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectivePriceRange(bounds, tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantMin, got.Min)
			assert.Equal(t, tt.wantMax, got.Max)
			assert.LessOrEqual(t, got.Min, got.Max)
			assert.GreaterOrEqual(t, got.Min, bounds.Min)
			assert.LessOrEqual(t, got.Max, bounds.Max)
		})
	}

	t.Run("nil bounds", func(t *testing.T) {
		assert.Nil(t, EffectivePriceRange(nil, &models.PriceRange{Min: 1, Max: 2}))
	})
}

func TestEffectiveMaxDuration(t *testing.T) {
	bounds := &models.DurationRange{Min: 120, Max: 480}

	t.Run("no stored filter uses the upper bound", func(t *testing.T) {
		got := EffectiveMaxDuration(bounds, nil)
		require.NotNil(t, got)
		assert.Equal(t, 480, *got)
	})

	t.Run("stale low filter is clamped up", func(t *testing.T) {
		got := EffectiveMaxDuration(bounds, minutes(10))
		require.NotNil(t, got)
		assert.Equal(t, 120, *got)
	})

	t.Run("within bounds passes through", func(t *testing.T) {
		got := EffectiveMaxDuration(bounds, minutes(300))
		require.NotNil(t, got)
		assert.Equal(t, 300, *got)
	})

	t.Run("nil bounds", func(t *testing.T) {
		assert.Nil(t, EffectiveMaxDuration(nil, minutes(300)))
	})
}

func TestAvailableAirlines(t *testing.T) {
	flights := []models.FlightRecord{
		flight("a", "SkyJet", 100, 0, nil),
		flight("b", "AeroBlue", 100, 0, nil),
		flight("c", "SkyJet", 100, 0, nil),
		flight("d", "", 100, 0, nil),
	}
	assert.Equal(t, []string{"AeroBlue", "SkyJet"}, AvailableAirlines(flights))
	assert.Empty(t, AvailableAirlines(nil))
}
