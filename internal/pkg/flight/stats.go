package flight

import (
	"sort"

	"github.com/farelens/flight-offers-service/internal/app/dto"
)

// Range fallbacks for an empty flight list, used to parameterize filter
// sliders without zero-width ranges.
const (
	defaultMaxPrice    = 1000
	defaultMaxDuration = 1440
)

// UniqueAirlines returns the alphabetically sorted union of every segment's
// airline display name, case-sensitive.
func UniqueAirlines(flights []dto.FlightResult) []string {
	seen := make(map[string]struct{})

	for _, flight := range flights {
		for _, segment := range flight.Flights {
			seen[segment.Airline] = struct{}{}
		}
	}

	airlines := make([]string, 0, len(seen))
	for airline := range seen {
		airlines = append(airlines, airline)
	}
	sort.Strings(airlines)

	return airlines
}

// PriceRange returns min/max price over the list, {0,1000} when empty.
func PriceRange(flights []dto.FlightResult) dto.RangeStat {
	if len(flights) == 0 {
		return dto.RangeStat{Min: 0, Max: defaultMaxPrice}
	}

	r := dto.RangeStat{Min: flights[0].Price, Max: flights[0].Price}
	for _, flight := range flights[1:] {
		if flight.Price < r.Min {
			r.Min = flight.Price
		}
		if flight.Price > r.Max {
			r.Max = flight.Price
		}
	}

	return r
}

// DurationRange returns min/max total duration in minutes, {0,1440} when
// empty.
func DurationRange(flights []dto.FlightResult) dto.RangeStat {
	if len(flights) == 0 {
		return dto.RangeStat{Min: 0, Max: defaultMaxDuration}
	}

	r := dto.RangeStat{
		Min: float64(flights[0].TotalDuration),
		Max: float64(flights[0].TotalDuration),
	}
	for _, flight := range flights[1:] {
		d := float64(flight.TotalDuration)
		if d < r.Min {
			r.Min = d
		}
		if d > r.Max {
			r.Max = d
		}
	}

	return r
}

// Facets summarizes the unfiltered offer list to parameterize the filter UI.
func Facets(flights []dto.FlightResult) *dto.SearchFacets {
	return &dto.SearchFacets{
		Airlines:      UniqueAirlines(flights),
		PriceRange:    PriceRange(flights),
		DurationRange: DurationRange(flights),
	}
}
