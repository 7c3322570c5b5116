package flight

import (
	"strconv"
	"strings"

	"github.com/farelens/flight-offers-service/internal/app/dto"
)

// FilterFlights applies the conjunction of all present predicates. Flights
// whose first departure time cannot be parsed pass the time-window predicate.
func FilterFlights(flights []dto.FlightResult, filter *dto.FlightFilter) []dto.FlightResult {
	if !filter.Active() {
		return flights
	}

	results := make([]dto.FlightResult, 0, len(flights))

	for _, flight := range flights {
		if filter.MaxPrice != nil && flight.Price > *filter.MaxPrice {
			continue
		}

		if filter.MinPrice != nil && flight.Price < *filter.MinPrice {
			continue
		}

		if len(filter.Stops) > 0 && !matchesStops(flight, filter.Stops) {
			continue
		}

		if len(filter.Airlines) > 0 && !matchesAirlines(flight, filter.Airlines) {
			continue
		}

		if filter.MaxDuration != nil && flight.TotalDuration > *filter.MaxDuration {
			continue
		}

		if filter.DepartureTimeRange != nil && !matchesDepartureWindow(flight, *filter.DepartureTimeRange) {
			continue
		}

		results = append(results, flight)
	}

	return results
}

// matchesStops buckets the flight's layover count into {0, 1, 2+} and checks
// membership in the filter's stop set.
func matchesStops(flight dto.FlightResult, stops []int) bool {
	bucket := flight.Stops()
	if bucket >= 2 {
		bucket = 2
	}

	for _, s := range stops {
		if s == bucket {
			return true
		}
	}

	return false
}

// matchesAirlines requires at least one segment operated by an airline in
// the set, compared case-sensitively on display names.
func matchesAirlines(flight dto.FlightResult, airlines []string) bool {
	for _, segment := range flight.Flights {
		for _, airline := range airlines {
			if segment.Airline == airline {
				return true
			}
		}
	}

	return false
}

func matchesDepartureWindow(flight dto.FlightResult, window [2]int) bool {
	if len(flight.Flights) == 0 {
		return true
	}

	hour, ok := departureHour(flight.Flights[0].DepartureAirport.Time)
	if !ok {
		return true
	}

	return hour >= window[0] && hour <= window[1]
}

// departureHour extracts the hour from a segment time, accepting both
// "HH:MM" and "date HH:MM" forms.
func departureHour(timeStr string) (int, bool) {
	if timeStr == "" {
		return 0, false
	}

	clock := timeStr
	if parts := strings.Fields(timeStr); len(parts) == 2 {
		clock = parts[1]
	}

	hourPart, _, found := strings.Cut(clock, ":")
	if !found {
		return 0, false
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	return hour, true
}
