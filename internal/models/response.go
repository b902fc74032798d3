package models

// GraphPoint is one point of the price-by-rank graph, 1-indexed in
// price-ascending order over the filtered set.
type GraphPoint struct {
	Index   int     `json:"index"`
	Price   float64 `json:"price"`
	Airline string  `json:"airline"`
}

// ResultsView is the snapshot the display collaborator reads.
type ResultsView struct {
	SearchParams      *SearchRequest `json:"searchParams,omitempty"`
	Loading           bool           `json:"loading"`
	Error             string         `json:"error,omitempty"`
	TopResults        []FlightRecord `json:"topResults"`
	OtherResults      []FlightRecord `json:"otherResults"`
	FilteredResults   []FlightRecord `json:"filteredResults"`
	GraphPoints       []GraphPoint   `json:"graphPoints"`
	AvailableAirlines []string       `json:"availableAirlines"`
	PriceRangeBounds  *PriceRange    `json:"priceRangeBounds,omitempty"`
	DurationBounds    *DurationRange `json:"durationBounds,omitempty"`
	Filters           FilterState    `json:"filters"`
	SortMode          SortMode       `json:"sortMode"`
	TotalResults      int            `json:"totalResults"`
}

// PageView is one page of the other-tier listing.
type PageView struct {
	Items     []FlightRecord `json:"items"`
	Page      int            `json:"page"`
	PageCount int            `json:"pageCount"`
}

type LocationOption struct {
	Iata  string `json:"iata"`
	Label string `json:"label"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
