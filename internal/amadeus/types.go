package amadeus

// Raw payload shapes for the flight-offers and locations endpoints. Only the
// fields the normalizer reads are mapped.

type Endpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Aircraft    Aircraft `json:"aircraft"`
	Duration    string   `json:"duration"`
	Class       string   `json:"class"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type FareDetail struct {
	Cabin string `json:"cabin"`
}

type TravelerPricing struct {
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

type Offer struct {
	ID                     string            `json:"id"`
	CarrierCode            string            `json:"carrierCode"`
	Duration               string            `json:"duration"`
	Itineraries            []Itinerary       `json:"itineraries"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	Price                  OfferPrice        `json:"price"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings"`
}

type offersResponse struct {
	Data []Offer `json:"data"`
}

type apiError struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

type locationAddress struct {
	CityName string `json:"cityName"`
}

type Location struct {
	IataCode string          `json:"iataCode"`
	Name     string          `json:"name"`
	SubType  string          `json:"subType"`
	Address  locationAddress `json:"address"`
}

type locationsResponse struct {
	Data []Location `json:"data"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}
