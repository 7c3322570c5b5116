package flight

import (
	"sort"

	"github.com/farelens/flight-offers-service/internal/app/dto"
)

// Sort keys accepted by SortFlights.
const (
	SortByPrice     = "price"
	SortByDuration  = "duration"
	SortByDeparture = "departure"
	SortByArrival   = "arrival"
)

// SortFlights returns a sorted copy; the input is never mutated and equal
// elements keep their relative order. Departure and arrival sort compare the
// raw HH:MM strings lexicographically, which is order-correct because the
// strings are zero-padded.
func SortFlights(flights []dto.FlightResult, sortBy string) []dto.FlightResult {
	sorted := make([]dto.FlightResult, len(flights))
	copy(sorted, flights)

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortByDuration:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalDuration < sorted[j].TotalDuration
		})
	case SortByDeparture:
		sort.SliceStable(sorted, func(i, j int) bool {
			return firstDepartureTime(sorted[i]) < firstDepartureTime(sorted[j])
		})
	case SortByArrival:
		sort.SliceStable(sorted, func(i, j int) bool {
			return lastArrivalTime(sorted[i]) < lastArrivalTime(sorted[j])
		})
	}

	return sorted
}

func firstDepartureTime(flight dto.FlightResult) string {
	if len(flight.Flights) == 0 {
		return ""
	}

	return flight.Flights[0].DepartureAirport.Time
}

func lastArrivalTime(flight dto.FlightResult) string {
	if len(flight.Flights) == 0 {
		return ""
	}

	return flight.Flights[len(flight.Flights)-1].ArrivalAirport.Time
}
