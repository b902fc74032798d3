// Package labels maps carrier, airport, cabin and aircraft codes to display
// names. Unknown codes fall through to the input so nothing ever renders empty.
package labels

import (
	"fmt"
	"math"
	"strings"

	"github.com/nvarma/skyfinder/internal/models"
)

var airlineNames = map[string]string{
	"AA": "American Airlines",
	"AC": "Air Canada",
	"AD": "Azul Brazilian Airlines",
	"AF": "Air France",
	"AI": "Air India",
	"AM": "Aeroméxico",
	"AS": "Alaska Airlines",
	"AV": "Avianca",
	"AZ": "ITA Airways",
	"BA": "British Airways",
	"B6": "JetBlue Airways",
	"BR": "EVA Air",
	"CA": "Air China",
	"CI": "China Airlines",
	"CM": "Copa Airlines",
	"CZ": "China Southern Airlines",
	"DL": "Delta Air Lines",
	"DY": "Norwegian Air Shuttle",
	"EK": "Emirates",
	"ET": "Ethiopian Airlines",
	"EY": "Etihad Airways",
	"F9": "Frontier Airlines",
	"FR": "Ryanair",
	"GF": "Gulf Air",
	"G4": "Allegiant Air",
	"IB": "Iberia",
	"JL": "Japan Airlines",
	"JQ": "Jetstar Airways",
	"KE": "Korean Air",
	"KL": "KLM",
	"KQ": "Kenya Airways",
	"LA": "LATAM Airlines",
	"LH": "Lufthansa",
	"LX": "Swiss International Air Lines",
	"MS": "EgyptAir",
	"MU": "China Eastern Airlines",
	"NH": "All Nippon Airways",
	"NK": "Spirit Airlines",
	"NZ": "Air New Zealand",
	"OS": "Austrian Airlines",
	"OZ": "Asiana Airlines",
	"PR": "Philippine Airlines",
	"QF": "Qantas",
	"QR": "Qatar Airways",
	"SA": "South African Airways",
	"SK": "Scandinavian Airlines",
	"SN": "Brussels Airlines",
	"SQ": "Singapore Airlines",
	"SY": "Sun Country Airlines",
	"TG": "Thai Airways",
	"UA": "United Airlines",
	"UK": "Vistara",
	"U2": "easyJet",
	"VA": "Virgin Australia",
	"VN": "Vietnam Airlines",
	"VY": "Vueling",
	"WN": "Southwest Airlines",
	"WS": "WestJet",
	"WY": "Oman Air",
	"2B": "Aerolineas Argentinas",
	"5J": "Cebu Pacific",
	"6E": "IndiGo",
	// Mock carriers
	"AeroBlue":  "AeroBlue",
	"CloudNine": "CloudNine",
	"Nimbus":    "Nimbus Air",
	"NimbusAir": "Nimbus Air",
	"SkyJet":    "SkyJet",
}

var airportCities = map[string]string{
	"BOM": "Mumbai", "DEL": "Delhi", "BLR": "Bengaluru", "MAA": "Chennai", "HYD": "Hyderabad",
	"CCU": "Kolkata", "COK": "Kochi", "GOI": "Goa", "AMD": "Ahmedabad", "JFK": "New York",
	"EWR": "Newark", "LGA": "New York", "LAX": "Los Angeles", "SFO": "San Francisco",
	"ORD": "Chicago", "DFW": "Dallas", "MIA": "Miami", "BOS": "Boston", "IAD": "Washington",
	"ZRH": "Zurich", "GVA": "Geneva", "BSL": "Basel", "MUC": "Munich", "FRA": "Frankfurt",
	"CDG": "Paris", "LHR": "London", "AMS": "Amsterdam", "FCO": "Rome", "MAD": "Madrid",
	"DXB": "Dubai", "DOH": "Doha", "AUH": "Abu Dhabi", "SIN": "Singapore", "HKG": "Hong Kong",
	"NRT": "Tokyo", "KIX": "Osaka", "ICN": "Seoul", "PEK": "Beijing", "PVG": "Shanghai",
	"SYD": "Sydney", "MEL": "Melbourne", "AKL": "Auckland", "YYZ": "Toronto", "YVR": "Vancouver",
	"MEX": "Mexico City", "GRU": "São Paulo", "EZE": "Buenos Aires", "BOG": "Bogotá",
	"ATL": "Atlanta", "DEN": "Denver", "SEA": "Seattle", "PHX": "Phoenix", "LAS": "Las Vegas",
}

var cabinLabels = map[string]string{
	"Y": "Economy", "M": "Economy", "W": "Premium economy", "C": "Business", "J": "Business",
	"F": "First", "P": "First",
}

var aircraftNames = map[string]string{
	"333": "Airbus A330", "339": "Airbus A330neo", "359": "Airbus A350", "388": "Airbus A380",
	"320": "Airbus A320", "321": "Airbus A321", "319": "Airbus A319", "32N": "Airbus A320neo",
	"738": "Boeing 737", "739": "Boeing 737", "77W": "Boeing 777", "788": "Boeing 787",
	"789": "Boeing 787", "78X": "Boeing 787", "744": "Boeing 747", "77L": "Boeing 777",
	"E90": "Embraer E190", "E95": "Embraer E195", "CR9": "Bombardier CRJ900",
}

// AirportLabel renders "City (CODE)", or the bare code if the city is unknown.
func AirportLabel(iata string) string {
	code := strings.ToUpper(strings.TrimSpace(iata))
	if code == "" {
		return models.PlaceholderText
	}
	if city, ok := airportCities[code]; ok {
		return fmt.Sprintf("%s (%s)", city, code)
	}
	return code
}

// AirlineName resolves an IATA code or carrier name to a display name.
func AirlineName(code string) string {
	key := strings.TrimSpace(code)
	if key == "" {
		return models.PlaceholderText
	}
	if name, ok := airlineNames[key]; ok {
		return name
	}
	return key
}

// CabinLabel resolves a single-letter cabin code.
func CabinLabel(code string) string {
	key := strings.ToUpper(strings.TrimSpace(code))
	if key == "" {
		return ""
	}
	if label, ok := cabinLabels[key]; ok {
		return label
	}
	return code
}

// AircraftLabel resolves an aircraft type code.
func AircraftLabel(code string) string {
	key := strings.TrimSpace(code)
	if key == "" {
		return ""
	}
	if name, ok := aircraftNames[key]; ok {
		return name
	}
	return key
}

// FormatPrice renders a price for display, tolerating unknown values.
func FormatPrice(p models.Price) string {
	total, ok := p.Value()
	if !ok {
		return models.PlaceholderText
	}
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	if total == math.Trunc(total) {
		return fmt.Sprintf("%s %.0f", currency, total)
	}
	return fmt.Sprintf("%s %.2f", currency, total)
}
