package results

import (
	"sort"

	"github.com/nvarma/skyfinder/internal/models"
)

// PriceBounds returns the min/max finite price across the raw result set, or
// nil when the set is empty or no record carries a usable price.
func PriceBounds(flights []models.FlightRecord) *models.PriceRange {
	found := false
	var min, max float64
	for i := range flights {
		v, ok := flights[i].PriceValue()
		if !ok {
			continue
		}
		if !found {
			min, max = v, v
			found = true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if !found {
		return nil
	}
	return &models.PriceRange{Min: min, Max: max}
}

// DurationBounds returns min/max known durations, or nil when none are known.
func DurationBounds(flights []models.FlightRecord) *models.DurationRange {
	found := false
	var min, max int
	for i := range flights {
		d := flights[i].DurationMinutes
		if d == nil {
			continue
		}
		if !found {
			min, max = *d, *d
			found = true
			continue
		}
		if *d < min {
			min = *d
		}
		if *d > max {
			max = *d
		}
	}
	if !found {
		return nil
	}
	return &models.DurationRange{Min: min, Max: max}
}

// EffectivePriceRange clamps a stored filter range into the current bounds:
// the low end first into [min,max], then the high end into [low,max]. The
// result always satisfies Min <= Max even when the stored filter is stale
// relative to a fresh result set.
func EffectivePriceRange(bounds *models.PriceRange, filter *models.PriceRange) *models.PriceRange {
	if bounds == nil {
		return nil
	}
	if filter == nil {
		r := *bounds
		return &r
	}
	curMin := clampFloat(filter.Min, bounds.Min, bounds.Max)
	curMax := clampFloat(filter.Max, curMin, bounds.Max)
	return &models.PriceRange{Min: curMin, Max: curMax}
}

// EffectiveMaxDuration clamps the stored max-duration filter into the current
// duration bounds; with no stored filter it is the upper bound itself.
func EffectiveMaxDuration(bounds *models.DurationRange, maxDuration *int) *int {
	if bounds == nil {
		return nil
	}
	if maxDuration == nil {
		v := bounds.Max
		return &v
	}
	v := clampInt(*maxDuration, bounds.Min, bounds.Max)
	return &v
}

// AvailableAirlines lists the distinct airlines in the raw set, sorted.
func AvailableAirlines(flights []models.FlightRecord) []string {
	seen := make(map[string]bool)
	airlines := make([]string, 0, len(flights))
	for i := range flights {
		a := flights[i].Airline
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		airlines = append(airlines, a)
	}
	sort.Strings(airlines)
	return airlines
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
