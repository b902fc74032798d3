package labels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvarma/skyfinder/internal/models"
)

func TestAirportLabel(t *testing.T) {
	assert.Equal(t, "New York (JFK)", AirportLabel("jfk"))
	assert.Equal(t, "Dubai (DXB)", AirportLabel(" DXB "))
	assert.Equal(t, "XXX", AirportLabel("XXX"))
	assert.Equal(t, "—", AirportLabel(""))
}

func TestAirlineName(t *testing.T) {
	assert.Equal(t, "Lufthansa", AirlineName("LH"))
	assert.Equal(t, "SkyJet", AirlineName("SkyJet"))
	assert.Equal(t, "ZZ", AirlineName("ZZ"))
	assert.Equal(t, "—", AirlineName(""))
}

func TestCabinLabel(t *testing.T) {
	assert.Equal(t, "Economy", CabinLabel("Y"))
	assert.Equal(t, "Economy", CabinLabel("m"))
	assert.Equal(t, "Business", CabinLabel("J"))
	assert.Equal(t, "Q", CabinLabel("Q"))
	assert.Empty(t, CabinLabel(""))
}

func TestAircraftLabel(t *testing.T) {
	assert.Equal(t, "Boeing 777", AircraftLabel("77W"))
	assert.Equal(t, "Airbus A330", AircraftLabel("333"))
	assert.Equal(t, "999", AircraftLabel("999"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "USD 250", FormatPrice(models.Price{Total: 250, Currency: "USD"}))
	assert.Equal(t, "USD 250.50", FormatPrice(models.Price{Total: 250.5, Currency: "USD"}))
	assert.Equal(t, "EUR 99.99", FormatPrice(models.Price{Total: 99.99, Currency: "EUR"}))
	assert.Equal(t, "USD 100", FormatPrice(models.Price{Total: 100}))
	assert.Equal(t, "—", FormatPrice(models.Price{Total: math.NaN()}))
}
