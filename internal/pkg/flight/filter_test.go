package flight

import (
	"testing"

	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []dto.FlightResult {
	return []dto.FlightResult{
		{
			BookingToken:  "cheap",
			Price:         300,
			TotalDuration: 120,
			Flights: []dto.FlightSegment{
				{Airline: "Delta Air Lines", DepartureAirport: dto.AirportRef{ID: "JFK", Time: "08:30"}},
			},
		},
		{
			BookingToken:  "mid",
			Price:         500,
			TotalDuration: 300,
			Flights: []dto.FlightSegment{
				{Airline: "KLM", DepartureAirport: dto.AirportRef{ID: "JFK", Time: "10:15"}},
				{Airline: "KLM", DepartureAirport: dto.AirportRef{ID: "AMS", Time: "14:00"}},
			},
			Layovers: []dto.Layover{{ID: "AMS", Name: "AMS", Duration: 95}},
		},
		{
			BookingToken:  "dear",
			Price:         700,
			TotalDuration: 200,
			Flights: []dto.FlightSegment{
				{Airline: "United Airlines", DepartureAirport: dto.AirportRef{ID: "JFK", Time: "23:10"}},
			},
		},
	}
}

func TestFilterFlights(t *testing.T) {
	ptrFloat := func(f float64) *float64 { return &f }
	ptrInt := func(i int) *int { return &i }

	filterRequest := func(filter *dto.FlightFilter, wantTokens []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterFlights(filterFixture(), filter)

			gotTokens := make([]string, len(got))
			for i, f := range got {
				gotTokens[i] = f.BookingToken
			}

			diff := cmp.Diff(wantTokens, gotTokens)
			if diff != "" {
				t.Fatalf("FilterFlights result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("nil_filter", filterRequest(nil, []string{"cheap", "mid", "dear"}))
	t.Run("empty_filter", filterRequest(&dto.FlightFilter{}, []string{"cheap", "mid", "dear"}))
	t.Run("max_price", filterRequest(&dto.FlightFilter{MaxPrice: ptrFloat(400)}, []string{"cheap"}))
	t.Run("min_price", filterRequest(&dto.FlightFilter{MinPrice: ptrFloat(400)}, []string{"mid", "dear"}))
	t.Run("max_price_and_one_stop", filterRequest(&dto.FlightFilter{
		MaxPrice: ptrFloat(600),
		Stops:    []int{1},
	}, []string{"mid"}))
	t.Run("nonstop_only", filterRequest(&dto.FlightFilter{Stops: []int{0}}, []string{"cheap", "dear"}))
	t.Run("airlines", filterRequest(&dto.FlightFilter{Airlines: []string{"KLM"}}, []string{"mid"}))
	t.Run("airline_case_sensitive", filterRequest(&dto.FlightFilter{Airlines: []string{"klm"}}, []string{}))
	t.Run("max_duration", filterRequest(&dto.FlightFilter{MaxDuration: ptrInt(250)}, []string{"cheap", "dear"}))
	t.Run("departure_window", filterRequest(&dto.FlightFilter{
		DepartureTimeRange: &[2]int{6, 12},
	}, []string{"cheap", "mid"}))
	t.Run("no_match", filterRequest(&dto.FlightFilter{MaxPrice: ptrFloat(100)}, []string{}))
}

func TestFilterFlights_StopBuckets(t *testing.T) {
	twoStops := dto.FlightResult{
		BookingToken: "long",
		Price:        400,
		Flights:      make([]dto.FlightSegment, 3),
		Layovers:     []dto.Layover{{ID: "A"}, {ID: "B"}},
	}
	threeStops := dto.FlightResult{
		BookingToken: "longer",
		Price:        350,
		Flights:      make([]dto.FlightSegment, 4),
		Layovers:     []dto.Layover{{ID: "A"}, {ID: "B"}, {ID: "C"}},
	}

	// three layovers normalize into the 2+ bucket
	got := FilterFlights([]dto.FlightResult{twoStops, threeStops}, &dto.FlightFilter{Stops: []int{2}})
	assert.Len(t, got, 2)
}

func TestFilterFlights_DepartureWindowFailOpen(t *testing.T) {
	flights := []dto.FlightResult{
		{BookingToken: "no_time", Price: 100, Flights: []dto.FlightSegment{{Airline: "X"}}},
		{BookingToken: "garbage_time", Price: 200, Flights: []dto.FlightSegment{
			{Airline: "X", DepartureAirport: dto.AirportRef{Time: "not-a-time"}},
		}},
		{BookingToken: "no_segments", Price: 300},
	}

	got := FilterFlights(flights, &dto.FlightFilter{DepartureTimeRange: &[2]int{6, 12}})
	assert.Len(t, got, 3, "unparseable departure times must pass the window predicate")
}

func TestDepartureHour(t *testing.T) {
	hourRequest := func(input string, wantHour int, wantOK bool) func(t *testing.T) {
		return func(t *testing.T) {
			hour, ok := departureHour(input)
			assert.Equal(t, wantOK, ok)
			if wantOK {
				assert.Equal(t, wantHour, hour)
			}
		}
	}

	t.Run("plain_clock", hourRequest("08:30", 8, true))
	t.Run("date_and_clock", hourRequest("2026-01-07 14:05", 14, true))
	t.Run("midnight", hourRequest("00:10", 0, true))
	t.Run("empty", hourRequest("", 0, false))
	t.Run("garbage", hourRequest("soon", 0, false))
	t.Run("out_of_range", hourRequest("25:00", 0, false))
}
