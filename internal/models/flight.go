package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// PlaceholderText is rendered for any display field that could not be derived.
const PlaceholderText = "—"

type Price struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Value returns the numeric price and whether it is usable for
// filtering/sorting. Unparseable legacy prices carry NaN and report false.
func (p Price) Value() (float64, bool) {
	if math.IsNaN(p.Total) || math.IsInf(p.Total, 0) {
		return 0, false
	}
	return p.Total, true
}

func (p Price) MarshalJSON() ([]byte, error) {
	total := p.Total
	if math.IsNaN(total) || math.IsInf(total, 0) {
		total = 0
	}
	return json.Marshal(struct {
		Total    float64 `json:"total"`
		Currency string  `json:"currency"`
	}{Total: total, Currency: p.Currency})
}

// UnmarshalJSON accepts both the canonical object form and the legacy
// formatted-string form ("$123") still present in old cache entries.
func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = ParseLegacyPrice(s)
		return nil
	}

	var obj struct {
		Total    float64 `json:"total"`
		Currency string  `json:"currency"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Total = obj.Total
	p.Currency = obj.Currency
	return nil
}

// ParseLegacyPrice strips everything but digits and dots from a formatted
// price string and parses the remainder. Unparseable input yields NaN so the
// record is excluded from bounds and price filtering instead of sorting as 0.
func ParseLegacyPrice(s string) Price {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	total, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		total = math.NaN()
	}
	return Price{Total: total, Currency: "USD"}
}

type SegmentRecord struct {
	DepartureTime   string `json:"departureTime"`
	ArrivalTime     string `json:"arrivalTime"`
	DepartureIata   string `json:"departureIata"`
	ArrivalIata     string `json:"arrivalIata"`
	Duration        string `json:"duration"`
	DurationMinutes *int   `json:"durationMinutes"`
	CarrierCode     string `json:"carrierCode,omitempty"`
	Number          string `json:"number,omitempty"`
	AircraftCode    string `json:"aircraftCode,omitempty"`
	AircraftName    string `json:"aircraftName,omitempty"`
	Cabin           string `json:"cabin,omitempty"`
	CabinName       string `json:"cabinName,omitempty"`
}

type LayoverRecord struct {
	AirportIata     string `json:"airportIata"`
	DurationMinutes int    `json:"durationMinutes"`
	Duration        string `json:"duration"`
}

type FlightRecord struct {
	ID               string          `json:"id"`
	Airline          string          `json:"airline"`
	AirlineName      string          `json:"airlineName,omitempty"`
	Price            Price           `json:"price"`
	PriceLabel       string          `json:"priceLabel,omitempty"`
	Stops            int             `json:"stops"`
	DurationMinutes  *int            `json:"durationMinutes"`
	Duration         string          `json:"duration"`
	DepartureMinutes *int            `json:"departureMinutes"`
	DepartureTime    string          `json:"departureTime"`
	ArrivalTime      string          `json:"arrivalTime"`
	DepartureIata    string          `json:"departureIata,omitempty"`
	ArrivalIata      string          `json:"arrivalIata,omitempty"`
	Segments         []SegmentRecord `json:"segments"`
	Layovers         []LayoverRecord `json:"layovers"`
}

// PriceValue is the single read path for a record's price; every consumer
// (filter, bounds, scoring, graph) goes through it.
func (f *FlightRecord) PriceValue() (float64, bool) {
	return f.Price.Value()
}

type StopsBucket string

const (
	StopsNonstop StopsBucket = "0"
	StopsOne     StopsBucket = "1"
	StopsTwoPlus StopsBucket = "2+"
)

// Matches reports whether a stops count falls into this bucket.
func (b StopsBucket) Matches(stops int) bool {
	switch b {
	case StopsNonstop:
		return stops == 0
	case StopsOne:
		return stops == 1
	case StopsTwoPlus:
		return stops >= 2
	}
	return false
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type DurationRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterState with empty Stops/Airlines and nil ranges passes everything.
type FilterState struct {
	Stops              []StopsBucket `json:"stops"`
	Airlines           []string      `json:"airlines"`
	PriceRange         *PriceRange   `json:"priceRange,omitempty"`
	MaxDurationMinutes *int          `json:"maxDurationMinutes,omitempty"`
}

// FilterUpdate is a partial update; nil fields leave the current value alone.
// The Clear flags exist because "set to nil" and "leave alone" would both map
// to a nil pointer otherwise.
type FilterUpdate struct {
	Stops              *[]StopsBucket `json:"stops,omitempty"`
	Airlines           *[]string      `json:"airlines,omitempty"`
	PriceRange         *PriceRange    `json:"priceRange,omitempty"`
	ClearPriceRange    bool           `json:"clearPriceRange,omitempty"`
	MaxDurationMinutes *int           `json:"maxDurationMinutes,omitempty"`
	ClearMaxDuration   bool           `json:"clearMaxDuration,omitempty"`
}

// Apply merges the update into the state.
func (s *FilterState) Apply(u FilterUpdate) {
	if u.Stops != nil {
		s.Stops = *u.Stops
	}
	if u.Airlines != nil {
		s.Airlines = *u.Airlines
	}
	if u.ClearPriceRange {
		s.PriceRange = nil
	} else if u.PriceRange != nil {
		r := *u.PriceRange
		s.PriceRange = &r
	}
	if u.ClearMaxDuration {
		s.MaxDurationMinutes = nil
	} else if u.MaxDurationMinutes != nil {
		v := *u.MaxDurationMinutes
		s.MaxDurationMinutes = &v
	}
}

type SortMode string

const (
	SortCheapest SortMode = "CHEAPEST"
	SortBest     SortMode = "BEST"
)

func (m SortMode) Valid() bool {
	return m == SortCheapest || m == SortBest
}
