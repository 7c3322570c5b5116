package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/farelens/flight-offers-service/internal/pkg/amadeus"
	"github.com/farelens/flight-offers-service/internal/pkg/flight"
)

// OfferProvider is the outbound surface of the Amadeus client.
type OfferProvider interface {
	SearchFlightOffers(ctx context.Context, body amadeus.OffersRequest) (amadeus.OffersResponse, error)
	SearchLocations(ctx context.Context, keyword string) (amadeus.LocationsResponse, error)
}

type SearchCacher interface {
	GetLockKey(req dto.FlightSearchRequest) string
	GetCacheKey(req dto.FlightSearchRequest) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetSearch(ctx context.Context, key string) (dto.SearchData, error)
	SetSearch(ctx context.Context, key string, data dto.SearchData, expiration time.Duration) error
}

// minLocationQueryLength short-circuits autocomplete queries that would only
// produce noise, without a provider call.
const minLocationQueryLength = 2

// bestFlightViewCount re-partitions a price-sorted processed view; other
// sort keys carry no "best" designation.
const bestFlightViewCount = 5

type FlightService struct {
	Provider        OfferProvider
	Cache           SearchCacher
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewFlightService(provider OfferProvider, cache SearchCacher,
	cacheExpiration, lockTimeout time.Duration) *FlightService {
	return &FlightService{
		Provider:        provider,
		Cache:           cache,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// SearchFlights resolves one search to the success/error union. Provider and
// transport failures fold into the union; only context cancellation is
// returned as a Go error so it can unwind the call chain.
//
// Successful provider payloads are cached keyed by the search parameters;
// view options (filter/sort) are applied after the cache so every view of
// the same search shares one provider call.
func (s *FlightService) SearchFlights(
	ctx context.Context,
	req dto.FlightSearchRequest,
) (dto.FlightSearchResponse, error) {
	cacheKey := s.Cache.GetCacheKey(req)

	if data, err := s.Cache.GetSearch(ctx, cacheKey); err == nil {
		return s.applyView(dto.FlightSearchResponse{Success: true, Data: &data}, req), nil
	} else if ctx.Err() != nil {
		return dto.FlightSearchResponse{}, ctx.Err()
	} else {
		slog.DebugContext(ctx, "search cache miss", slog.String("key", cacheKey))
	}

	payload, err := s.Provider.SearchFlightOffers(ctx, flight.BuildOffersRequest(req))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return dto.FlightSearchResponse{}, err
		}

		slog.WarnContext(ctx, "offer search failed", slog.Any("error", err))

		return dto.FlightSearchResponse{
			Success: false,
			Error: &dto.SearchError{
				Message: "Failed to fetch flights: " + err.Error(),
				Code:    "NETWORK_ERROR",
			},
		}, nil
	}

	response := flight.Normalize(payload, req)

	if response.Success && response.Data != nil {
		s.storeSearch(ctx, cacheKey, s.Cache.GetLockKey(req), *response.Data)
	}

	return s.applyView(response, req), nil
}

// storeSearch writes a successful payload to the cache behind a lock so only
// one of several concurrent identical searches performs the write. Cache
// failures degrade to a log line, never to a failed search.
func (s *FlightService) storeSearch(ctx context.Context, cacheKey, lockKey string, data dto.SearchData) {
	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire cache lock", slog.Any("error", err))
		return
	}

	if !acquired {
		return
	}
	defer s.Cache.ReleaseLock(ctx, lockKey)

	if err := s.Cache.SetSearch(ctx, cacheKey, data, s.CacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to set search cache", slog.Any("error", err))
	}
}

// applyView attaches facets and, when the caller supplied filter/sort
// options, replaces the normalizer's top-3 partition with the processed
// view: top 5 when sorting by price, otherwise no "best" list. Raw responses
// keep the normalizer's partition untouched.
func (s *FlightService) applyView(response dto.FlightSearchResponse, req dto.FlightSearchRequest) dto.FlightSearchResponse {
	if !response.Success || response.Data == nil {
		return response
	}

	data := *response.Data
	all := response.AllFlights()
	data.Facets = flight.Facets(all)

	if !req.HasViewOptions() {
		return dto.FlightSearchResponse{Success: true, Data: &data}
	}

	processed := flight.FilterFlights(all, req.Filter)
	if req.SortBy != "" {
		processed = flight.SortFlights(processed, req.SortBy)
	}

	if req.SortBy == flight.SortByPrice {
		best := bestFlightViewCount
		if best > len(processed) {
			best = len(processed)
		}
		data.BestFlights = processed[:best]
		data.OtherFlights = processed[best:]
	} else {
		data.BestFlights = []dto.FlightResult{}
		data.OtherFlights = processed
	}

	return dto.FlightSearchResponse{Success: true, Data: &data}
}

// SearchAirports returns autocomplete options for an airport/city keyword.
// Provider failures are soft: they log and yield an empty list. Only
// cancellation propagates as an error.
func (s *FlightService) SearchAirports(ctx context.Context, keyword string) ([]dto.AirportOption, error) {
	if len(keyword) < minLocationQueryLength {
		return []dto.AirportOption{}, nil
	}

	payload, err := s.Provider.SearchLocations(ctx, keyword)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		slog.WarnContext(ctx, "location search failed", slog.Any("error", err))

		return []dto.AirportOption{}, nil
	}

	if len(payload.Errors) > 0 {
		slog.ErrorContext(ctx, "location search provider error",
			slog.Int("code", payload.Errors[0].Code),
			slog.String("detail", payload.Errors[0].Message()))

		return []dto.AirportOption{}, nil
	}

	return flight.NormalizeLocations(payload), nil
}

// PriceForecast generates the synthetic forecast curve for a chart. Purely
// computational; inputs are pre-validated by the DTO.
func (s *FlightService) PriceForecast(_ context.Context, req dto.PriceForecastRequest) dto.PriceForecastResponse {
	points := flight.PricePredictions(req.BasePrice,
		[2]float64{req.RangeMin, req.RangeMax}, req.Days())

	return dto.PriceForecastResponse{Points: points}
}
