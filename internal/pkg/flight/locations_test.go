package flight

import (
	"testing"

	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/farelens/flight-offers-service/internal/pkg/amadeus"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocations(t *testing.T) {
	payload := amadeus.LocationsResponse{
		Data: []amadeus.Location{
			{
				SubType:  "AIRPORT",
				Name:     "JOHN F KENNEDY INTL",
				IataCode: "JFK",
				Address:  amadeus.LocationAddress{CityName: "NEW YORK", CountryName: "UNITED STATES OF AMERICA"},
			},
			{
				SubType:  "CITY",
				Name:     "NEW YORK",
				IataCode: "NYC",
				Address:  amadeus.LocationAddress{CityName: "NEW YORK", CountryName: "UNITED STATES OF AMERICA"},
			},
			{
				// second JFK entry, a duplicate from the CITY view
				SubType:  "CITY",
				Name:     "JFK DUPLICATE",
				IataCode: "JFK",
				Address:  amadeus.LocationAddress{CityName: "NEW YORK", CountryName: "UNITED STATES OF AMERICA"},
			},
			{
				SubType:  "POINT_OF_INTEREST",
				Name:     "STATUE OF LIBERTY",
				IataCode: "XXX",
			},
		},
	}

	got := NormalizeLocations(payload)

	want := []dto.AirportOption{
		{ID: "JFK", Name: "JOHN F KENNEDY INTL", City: "NEW YORK", Country: "UNITED STATES OF AMERICA"},
		{ID: "NYC", Name: "NEW YORK", City: "NEW YORK", Country: "UNITED STATES OF AMERICA"},
	}

	diff := cmp.Diff(want, got)
	if diff != "" {
		t.Fatalf("NormalizeLocations mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeLocations_Empty(t *testing.T) {
	got := NormalizeLocations(amadeus.LocationsResponse{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
