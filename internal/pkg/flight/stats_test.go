package flight

import (
	"testing"

	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestUniqueAirlines(t *testing.T) {
	flights := []dto.FlightResult{
		{Flights: []dto.FlightSegment{
			{Airline: "United Airlines"},
			{Airline: "Lufthansa"},
		}},
		{Flights: []dto.FlightSegment{
			{Airline: "Lufthansa"},
			{Airline: "Air France"},
		}},
	}

	got := UniqueAirlines(flights)

	diff := cmp.Diff([]string{"Air France", "Lufthansa", "United Airlines"}, got)
	if diff != "" {
		t.Fatalf("UniqueAirlines mismatch (-want +got):\n%s", diff)
	}
}

func TestUniqueAirlines_Empty(t *testing.T) {
	assert.Empty(t, UniqueAirlines(nil))
}

func TestPriceRange(t *testing.T) {
	rangeRequest := func(flights []dto.FlightResult, want dto.RangeStat) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, PriceRange(flights))
		}
	}

	t.Run("empty_fallback", rangeRequest(nil, dto.RangeStat{Min: 0, Max: 1000}))
	t.Run("single", rangeRequest([]dto.FlightResult{{Price: 420}}, dto.RangeStat{Min: 420, Max: 420}))
	t.Run("spread", rangeRequest([]dto.FlightResult{
		{Price: 700}, {Price: 300}, {Price: 500},
	}, dto.RangeStat{Min: 300, Max: 700}))
}

func TestDurationRange(t *testing.T) {
	rangeRequest := func(flights []dto.FlightResult, want dto.RangeStat) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, DurationRange(flights))
		}
	}

	t.Run("empty_fallback", rangeRequest(nil, dto.RangeStat{Min: 0, Max: 1440}))
	t.Run("spread", rangeRequest([]dto.FlightResult{
		{TotalDuration: 95}, {TotalDuration: 610}, {TotalDuration: 240},
	}, dto.RangeStat{Min: 95, Max: 610}))
}

func TestFacets(t *testing.T) {
	flights := []dto.FlightResult{
		{Price: 300, TotalDuration: 120, Flights: []dto.FlightSegment{{Airline: "KLM"}}},
		{Price: 500, TotalDuration: 90, Flights: []dto.FlightSegment{{Airline: "Delta Air Lines"}}},
	}

	got := Facets(flights)

	want := &dto.SearchFacets{
		Airlines:      []string{"Delta Air Lines", "KLM"},
		PriceRange:    dto.RangeStat{Min: 300, Max: 500},
		DurationRange: dto.RangeStat{Min: 90, Max: 120},
	}

	diff := cmp.Diff(want, got)
	if diff != "" {
		t.Fatalf("Facets mismatch (-want +got):\n%s", diff)
	}
}
