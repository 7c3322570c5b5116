package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/go-kit/kit/endpoint"
)

type FlightService interface {
	SearchFlights(ctx context.Context, req dto.FlightSearchRequest) (dto.FlightSearchResponse, error)
	SearchAirports(ctx context.Context, keyword string) ([]dto.AirportOption, error)
	PriceForecast(ctx context.Context, req dto.PriceForecastRequest) dto.PriceForecastResponse
}

type Endpoints struct {
	FlightEndpoint FlightEndpoint
}

type FlightEndpoint struct {
	SearchFlights  endpoint.Endpoint
	SearchAirports endpoint.Endpoint
	PriceForecast  endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService) FlightEndpoint {
	return FlightEndpoint{
		SearchFlights:  makeSearchFlightsEndpoint(service),
		SearchAirports: makeSearchAirportsEndpoint(service),
		PriceForecast:  makePriceForecastEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return response, nil
	}
}

func makeSearchAirportsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.LocationSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		airports, err := service.SearchAirports(ctx, request.Keyword)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return dto.LocationSearchResponse{Airports: airports}, nil
	}
}

func makePriceForecastEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PriceForecastRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		return service.PriceForecast(ctx, *request), nil
	}
}
