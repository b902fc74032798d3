package normalizer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/nvarma/skyfinder/internal/amadeus"
	"github.com/nvarma/skyfinder/internal/models"
	"github.com/nvarma/skyfinder/pkg/labels"
)

var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseISODuration converts the restricted PT[nH][nM] form into total minutes.
// Strings without a PT prefix are unrecognized and yield nil, not an error;
// display falls back to a placeholder.
func ParseISODuration(value string) *int {
	match := isoDurationPattern.FindStringSubmatch(value)
	if match == nil {
		return nil
	}
	hours := 0
	minutes := 0
	if match[1] != "" {
		hours, _ = strconv.Atoi(match[1])
	}
	if match[2] != "" {
		minutes, _ = strconv.Atoi(match[2])
	}
	total := hours*60 + minutes
	return &total
}

// FormatDuration renders minutes as "10h 20m".
func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// clockTime slices HH:MM out of an ISO timestamp. The time is kept as local
// airport time on purpose; no zone conversion.
func clockTime(at string) string {
	if len(at) < 16 {
		return models.PlaceholderText
	}
	return at[11:16]
}

// minutesOfDay derives minutes-since-midnight from the timestamp's clock part.
func minutesOfDay(at string) *int {
	if len(at) < 16 {
		return nil
	}
	hours, err := strconv.Atoi(at[11:13])
	if err != nil {
		return nil
	}
	mins, err := strconv.Atoi(at[14:16])
	if err != nil {
		return nil
	}
	total := hours*60 + mins
	return &total
}

const localTimestampLayout = "2006-01-02T15:04:05"

// Normalize converts one raw offer into a FlightRecord. Offers with zero
// flattened segments are discarded (nil); a malformed offer never fails the
// whole search.
func Normalize(offer amadeus.Offer) *models.FlightRecord {
	airline := models.PlaceholderText
	if len(offer.ValidatingAirlineCodes) > 0 && offer.ValidatingAirlineCodes[0] != "" {
		airline = offer.ValidatingAirlineCodes[0]
	} else if offer.CarrierCode != "" {
		airline = offer.CarrierCode
	}

	var allSegments []amadeus.Segment
	for _, it := range offer.Itineraries {
		allSegments = append(allSegments, it.Segments...)
	}
	if len(allSegments) == 0 {
		return nil
	}

	first := allSegments[0]
	last := allSegments[len(allSegments)-1]

	currency := offer.Price.Currency
	if currency == "" {
		currency = "USD"
	}
	total, err := strconv.ParseFloat(offer.Price.Total, 64)
	if err != nil || math.IsNaN(total) || math.IsInf(total, 0) {
		total = 0
	}

	durationIso := offer.Duration
	if len(offer.Itineraries) > 0 && offer.Itineraries[0].Duration != "" {
		durationIso = offer.Itineraries[0].Duration
	}
	durationMinutes := ParseISODuration(durationIso)
	durationText := models.PlaceholderText
	if durationMinutes != nil {
		durationText = FormatDuration(*durationMinutes)
	}

	stops := len(allSegments) - 1

	var fareDetails []amadeus.FareDetail
	if len(offer.TravelerPricings) > 0 {
		fareDetails = offer.TravelerPricings[0].FareDetailsBySegment
	}

	segments := make([]models.SegmentRecord, 0, len(allSegments))
	for idx, seg := range allSegments {
		segDurMin := ParseISODuration(seg.Duration)
		segDurText := models.PlaceholderText
		if segDurMin != nil {
			segDurText = FormatDuration(*segDurMin)
		}

		// Cabin comes from the fare details at the matching segment position,
		// falling back to the segment's own booking class.
		cabin := seg.Class
		if idx < len(fareDetails) && fareDetails[idx].Cabin != "" {
			cabin = fareDetails[idx].Cabin
		}

		segments = append(segments, models.SegmentRecord{
			DepartureTime:   clockTime(seg.Departure.At),
			ArrivalTime:     clockTime(seg.Arrival.At),
			DepartureIata:   orPlaceholder(seg.Departure.IataCode),
			ArrivalIata:     orPlaceholder(seg.Arrival.IataCode),
			Duration:        segDurText,
			DurationMinutes: segDurMin,
			CarrierCode:     seg.CarrierCode,
			Number:          seg.Number,
			AircraftCode:    seg.Aircraft.Code,
			AircraftName:    labels.AircraftLabel(seg.Aircraft.Code),
			Cabin:           cabin,
			CabinName:       labels.CabinLabel(cabin),
		})
	}

	layovers := make([]models.LayoverRecord, 0, len(allSegments)-1)
	for i := 0; i < len(allSegments)-1; i++ {
		layovers = append(layovers, buildLayover(allSegments[i], allSegments[i+1]))
	}

	price := models.Price{Total: total, Currency: currency}
	return &models.FlightRecord{
		ID:               offer.ID,
		Airline:          airline,
		AirlineName:      labels.AirlineName(airline),
		Price:            price,
		PriceLabel:       labels.FormatPrice(price),
		Stops:            stops,
		DurationMinutes:  durationMinutes,
		Duration:         durationText,
		DepartureMinutes: minutesOfDay(first.Departure.At),
		DepartureTime:    clockTime(first.Departure.At),
		ArrivalTime:      clockTime(last.Arrival.At),
		DepartureIata:    first.Departure.IataCode,
		ArrivalIata:      last.Arrival.IataCode,
		Segments:         segments,
		Layovers:         layovers,
	}
}

// buildLayover measures the wall-clock gap between one segment's arrival and
// the next segment's departure, rounded to the nearest minute. Missing
// timestamps default the duration to 0 with a placeholder display.
func buildLayover(arrSeg, depSeg amadeus.Segment) models.LayoverRecord {
	layover := models.LayoverRecord{
		AirportIata:     orPlaceholder(arrSeg.Arrival.IataCode),
		DurationMinutes: 0,
		Duration:        models.PlaceholderText,
	}

	arrAt, errArr := time.Parse(localTimestampLayout, arrSeg.Arrival.At)
	depAt, errDep := time.Parse(localTimestampLayout, depSeg.Departure.At)
	if errArr != nil || errDep != nil {
		return layover
	}

	minutes := int(math.Round(depAt.Sub(arrAt).Minutes()))
	layover.DurationMinutes = minutes
	layover.Duration = FormatDuration(minutes)
	return layover
}

func orPlaceholder(s string) string {
	if s == "" {
		return models.PlaceholderText
	}
	return s
}
