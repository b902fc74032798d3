// Package mockdata produces deterministic, well-formed flight records when the
// live provider is unreachable or unconfigured. Values are synthetic; callers
// may only rely on the records satisfying the same shape invariants as
// normalized provider output.
package mockdata

import (
	"fmt"
	"strconv"

	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/internal/normalizer"
	"github.com/nvarma/skyfinder/pkg/labels"
)

const (
	priceBase           = 150
	priceRange          = 180
	layoverBaseMin      = 60
	layoverIncrementMin = 30
	flightNumberMod     = 900
	aircraftCode        = "333"
	cabinCode           = "Y"
)

var hubCodes = []string{"ORD", "DEN", "DFW", "ATL", "DXB"}

type catalogEntry struct {
	airline          string
	priceDelta       float64
	stops            int
	departureMinutes int
	durationMinutes  int
}

// Fixed catalog; only prices shift with the seed.
var catalog = []catalogEntry{
	{airline: "SkyJet", priceDelta: 25, stops: 0, departureMinutes: 8*60 + 15, durationMinutes: 260},
	{airline: "AeroBlue", priceDelta: 5, stops: 1, departureMinutes: 10*60 + 40, durationMinutes: 315},
	{airline: "Nimbus Air", priceDelta: 72, stops: 0, departureMinutes: 18*60 + 20, durationMinutes: 250},
	{airline: "SkyJet", priceDelta: 55, stops: 2, departureMinutes: 6*60 + 30, durationMinutes: 420},
	{airline: "CloudNine", priceDelta: 40, stops: 1, departureMinutes: 13*60 + 5, durationMinutes: 310},
	{airline: "AeroBlue", priceDelta: 90, stops: 2, departureMinutes: 21*60 + 10, durationMinutes: 460},
	{airline: "Nimbus Air", priceDelta: 10, stops: 0, departureMinutes: 5*60 + 50, durationMinutes: 240},
}

// Generate returns the synthetic result set for a search. Deterministic and
// pure given (origin, destination, departureDate): identical searches yield
// identical records.
func Generate(params models.SearchRequest) []models.FlightRecord {
	seed := fmt.Sprintf("%s-%s-%s", params.Origin, params.Destination, params.DepartureDate)

	hash := 0
	for _, r := range seed {
		hash += int(r)
	}
	base := float64(priceBase + hash%priceRange)

	flights := make([]models.FlightRecord, 0, len(catalog))
	for i, entry := range catalog {
		flights = append(flights, buildFlight(params, seed, i+1, entry, base))
	}
	return flights
}

func buildFlight(params models.SearchRequest, seed string, ordinal int, entry catalogEntry, base float64) models.FlightRecord {
	depMinutes := entry.departureMinutes
	durMinutes := entry.durationMinutes

	segCount := entry.stops + 1
	segDuration := durMinutes / segCount

	segments := make([]models.SegmentRecord, 0, segCount)
	layovers := make([]models.LayoverRecord, 0, entry.stops)

	t := depMinutes
	for i := 0; i < segCount; i++ {
		isFirst := i == 0
		isLast := i == segCount-1

		depIata := params.Origin
		if !isFirst {
			depIata = hubCodes[(i-1)%len(hubCodes)]
		}
		arrIata := params.Destination
		if !isLast {
			arrIata = hubCodes[i%len(hubCodes)]
		}

		arrT := t + segDuration
		segDur := segDuration
		segments = append(segments, models.SegmentRecord{
			DepartureTime:   toClock(t),
			ArrivalTime:     toClock(arrT),
			DepartureIata:   depIata,
			ArrivalIata:     arrIata,
			Duration:        normalizer.FormatDuration(segDur),
			DurationMinutes: &segDur,
			CarrierCode:     entry.airline,
			Number:          strconv.Itoa(100 + depMinutes%flightNumberMod),
			AircraftCode:    aircraftCode,
			AircraftName:    labels.AircraftLabel(aircraftCode),
			Cabin:           cabinCode,
			CabinName:       labels.CabinLabel(cabinCode),
		})

		if !isLast {
			layoverMin := layoverBaseMin + i*layoverIncrementMin
			layovers = append(layovers, models.LayoverRecord{
				AirportIata:     arrIata,
				DurationMinutes: layoverMin,
				Duration:        normalizer.FormatDuration(layoverMin),
			})
			t = arrT + layoverMin
		} else {
			t = arrT
		}
	}

	dur := durMinutes
	dep := depMinutes
	price := models.Price{Total: base + entry.priceDelta, Currency: "USD"}
	return models.FlightRecord{
		ID:               fmt.Sprintf("%s-%d", seed, ordinal),
		Airline:          entry.airline,
		AirlineName:      labels.AirlineName(entry.airline),
		Price:            price,
		PriceLabel:       labels.FormatPrice(price),
		Stops:            entry.stops,
		DurationMinutes:  &dur,
		Duration:         normalizer.FormatDuration(durMinutes),
		DepartureMinutes: &dep,
		DepartureTime:    toClock(depMinutes),
		ArrivalTime:      toClock(depMinutes + durMinutes),
		DepartureIata:    params.Origin,
		ArrivalIata:      params.Destination,
		Segments:         segments,
		Layovers:         layovers,
	}
}

func toClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
