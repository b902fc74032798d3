package models

import (
	"strconv"
	"strings"
)

type TravelClass string

const (
	ClassEconomy        TravelClass = "ECONOMY"
	ClassPremiumEconomy TravelClass = "PREMIUM_ECONOMY"
	ClassBusiness       TravelClass = "BUSINESS"
	ClassFirst          TravelClass = "FIRST"
)

func (c TravelClass) Valid() bool {
	switch c {
	case ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

type Passengers struct {
	Adults int `json:"adults"`
}

// SearchRequest is immutable once submitted; a new search builds a new value.
type SearchRequest struct {
	Origin           string      `json:"origin"`
	Destination      string      `json:"destination"`
	OriginLabel      string      `json:"originLabel,omitempty"`
	DestinationLabel string      `json:"destinationLabel,omitempty"`
	DepartureDate    string      `json:"departureDate"`
	ReturnDate       string      `json:"returnDate,omitempty"`
	Passengers       Passengers  `json:"passengers"`
	TravelClass      TravelClass `json:"travelClass"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin        ValidationError = "origin is required"
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
	ErrInvalidAirportCode   ValidationError = "airport codes must be 3 letters"
	ErrInvalidTravelClass   ValidationError = "unknown travel class"
)

func (r *SearchRequest) Validate() error {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))

	if r.Origin == "" {
		return ErrMissingOrigin
	}
	if r.Destination == "" {
		return ErrMissingDestination
	}
	if len(r.Origin) != 3 || len(r.Destination) != 3 {
		return ErrInvalidAirportCode
	}
	if r.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if r.Passengers.Adults < 1 {
		r.Passengers.Adults = 1
	}
	if r.TravelClass == "" {
		r.TravelClass = ClassEconomy
	}
	if !r.TravelClass.Valid() {
		return ErrInvalidTravelClass
	}
	return nil
}

// Key is the identity tuple used for cache keys, recent-search deduplication
// and redundant auto-search suppression. Labels are display-only and excluded.
func (r *SearchRequest) Key() string {
	return strings.Join([]string{
		r.Origin,
		r.Destination,
		r.DepartureDate,
		r.ReturnDate,
		strconv.Itoa(r.Passengers.Adults),
		string(r.TravelClass),
	}, "|")
}
