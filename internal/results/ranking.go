package results

import (
	"math"
	"sort"

	"github.com/nvarma/skyfinder/internal/models"
)

const (
	// TopFlightsCount is the size of the top tier; the split is positional.
	TopFlightsCount = 3

	bestStopsWeight    = 0.35
	bestDurationWeight = 0.35
	bestPriceWeight    = 0.30
)

// Ranked is the two-tier ordering handed to the display layer.
type Ranked struct {
	Top   []models.FlightRecord
	Other []models.FlightRecord
}

type scoredFlight struct {
	flight     models.FlightRecord
	priceValue float64
	bestScore  float64
}

// Rank orders the filtered set and partitions it into top/other tiers.
// CHEAPEST sorts strictly by price; BEST sorts by the composite score with
// price as the tie-breaker. Scoring ranges come from the filtered set only, so
// "best among non-stop flights" means best relative to that subset.
func Rank(filtered []models.FlightRecord, mode models.SortMode) Ranked {
	if len(filtered) == 0 {
		return Ranked{Top: []models.FlightRecord{}, Other: []models.FlightRecord{}}
	}

	minPrice, maxPrice := math.Inf(1), 0.0
	priceSeen := false
	minDur, maxDur := 0, 0
	durSeen := false
	minStops, maxStops := 0, 0
	stopsSeen := false

	for i := range filtered {
		if v, ok := filtered[i].PriceValue(); ok {
			if !priceSeen {
				minPrice, maxPrice = v, v
				priceSeen = true
			} else {
				minPrice = math.Min(minPrice, v)
				maxPrice = math.Max(maxPrice, v)
			}
		}
		if d := filtered[i].DurationMinutes; d != nil {
			if !durSeen {
				minDur, maxDur = *d, *d
				durSeen = true
			} else {
				if *d < minDur {
					minDur = *d
				}
				if *d > maxDur {
					maxDur = *d
				}
			}
		}
		s := filtered[i].Stops
		if !stopsSeen {
			minStops, maxStops = s, s
			stopsSeen = true
		} else {
			if s < minStops {
				minStops = s
			}
			if s > maxStops {
				maxStops = s
			}
		}
	}
	if !priceSeen {
		minPrice, maxPrice = 0, 0
	}

	scored := make([]scoredFlight, len(filtered))
	for i := range filtered {
		f := filtered[i]

		// Records without a usable price sort to the end of price orderings.
		priceValue := math.Inf(1)
		if v, ok := f.PriceValue(); ok {
			priceValue = v
		}

		priceNorm := 0.0
		if maxPrice > minPrice {
			priceNorm = clamp01((priceValue - minPrice) / (maxPrice - minPrice))
		}
		durNorm := 0.0
		if f.DurationMinutes != nil && maxDur > minDur {
			durNorm = clamp01(float64(*f.DurationMinutes-minDur) / float64(maxDur-minDur))
		}
		stopsNorm := 0.0
		if maxStops > minStops {
			stopsNorm = clamp01(float64(f.Stops-minStops) / float64(maxStops-minStops))
		}

		// With no spread in stops the formula drops the stops term entirely
		// and reweights to an even duration/price split.
		var bestScore float64
		if maxStops == minStops {
			bestScore = durNorm*0.5 + priceNorm*0.5
		} else {
			bestScore = stopsNorm*bestStopsWeight + durNorm*bestDurationWeight + priceNorm*bestPriceWeight
		}

		scored[i] = scoredFlight{flight: f, priceValue: priceValue, bestScore: bestScore}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if mode == models.SortBest {
			if scored[i].bestScore != scored[j].bestScore {
				return scored[i].bestScore < scored[j].bestScore
			}
		}
		return scored[i].priceValue < scored[j].priceValue
	})

	ordered := make([]models.FlightRecord, len(scored))
	for i, s := range scored {
		ordered[i] = s.flight
	}

	topCount := TopFlightsCount
	if len(ordered) < topCount {
		topCount = len(ordered)
	}
	return Ranked{Top: ordered[:topCount], Other: ordered[topCount:]}
}

// GraphPoints builds the 1-indexed price-ascending series for the price graph.
func GraphPoints(filtered []models.FlightRecord) []models.GraphPoint {
	if len(filtered) == 0 {
		return []models.GraphPoint{}
	}

	sorted := make([]models.FlightRecord, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return graphPrice(&sorted[i]) < graphPrice(&sorted[j])
	})

	points := make([]models.GraphPoint, len(sorted))
	for i := range sorted {
		points[i] = models.GraphPoint{
			Index:   i + 1,
			Price:   graphPrice(&sorted[i]),
			Airline: sorted[i].Airline,
		}
	}
	return points
}

// graphPrice plots unknown prices at 0 rather than dropping the point.
func graphPrice(f *models.FlightRecord) float64 {
	if v, ok := f.PriceValue(); ok {
		return v
	}
	return 0
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
