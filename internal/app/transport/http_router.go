package transport

import (
	"log/slog"
	"net/http"

	"github.com/farelens/flight-offers-service/internal/app/config"
	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/farelens/flight-offers-service/internal/app/endpoints"
	httptransport "github.com/farelens/flight-offers-service/internal/pkg/transport/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.FlightSearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/flights/forecast", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.PriceForecast,
			httptransport.DecodeQueryRequest[dto.PriceForecastRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/locations/search", httptransport.MakeHandlerFunc(
			endpts.FlightEndpoint.SearchAirports,
			httptransport.DecodeQueryRequest[dto.LocationSearchRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
