package flight

import (
	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/farelens/flight-offers-service/internal/pkg/amadeus"
)

// NormalizeLocations maps a reference-data payload to airport options,
// keeping only AIRPORT and CITY subtypes and deduplicating by IATA code.
// First occurrence wins and input order is preserved.
func NormalizeLocations(payload amadeus.LocationsResponse) []dto.AirportOption {
	options := make([]dto.AirportOption, 0, len(payload.Data))
	seen := make(map[string]struct{}, len(payload.Data))

	for _, loc := range payload.Data {
		if loc.SubType != "AIRPORT" && loc.SubType != "CITY" {
			continue
		}

		if _, ok := seen[loc.IataCode]; ok {
			continue
		}
		seen[loc.IataCode] = struct{}{}

		options = append(options, dto.AirportOption{
			ID:      loc.IataCode,
			Name:    loc.Name,
			City:    loc.Address.CityName,
			Country: loc.Address.CountryName,
		})
	}

	return options
}
