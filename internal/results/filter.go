package results

import "github.com/nvarma/skyfinder/internal/models"

// ApplyFilters applies the stops/airlines/price/duration predicates to the raw
// set. Pure and order-preserving: records keep their input order and the same
// inputs always produce the same output.
func ApplyFilters(flights []models.FlightRecord, filters models.FilterState) []models.FlightRecord {
	if len(flights) == 0 {
		return []models.FlightRecord{}
	}

	// Price and duration are checked against effective ranges so stale filter
	// values clamped outside a new result set's bounds cannot empty the view.
	effPrice := EffectivePriceRange(PriceBounds(flights), filters.PriceRange)
	effMaxDuration := EffectiveMaxDuration(DurationBounds(flights), filters.MaxDurationMinutes)

	filtered := make([]models.FlightRecord, 0, len(flights))
	for i := range flights {
		if matches(&flights[i], filters, effPrice, effMaxDuration) {
			filtered = append(filtered, flights[i])
		}
	}
	return filtered
}

func matches(f *models.FlightRecord, filters models.FilterState, effPrice *models.PriceRange, effMaxDuration *int) bool {
	if len(filters.Stops) > 0 {
		matched := false
		for _, bucket := range filters.Stops {
			if bucket.Matches(f.Stops) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(filters.Airlines) > 0 {
		matched := false
		for _, airline := range filters.Airlines {
			if f.Airline == airline {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if effPrice != nil {
		v, ok := f.PriceValue()
		if !ok || v < effPrice.Min || v > effPrice.Max {
			return false
		}
	}

	// Unknown duration never excludes a record.
	if effMaxDuration != nil && f.DurationMinutes != nil && *f.DurationMinutes > *effMaxDuration {
		return false
	}

	return true
}
