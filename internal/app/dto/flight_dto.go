package dto

import (
	"fmt"
	"net/http"

	"github.com/farelens/flight-offers-service/internal/pkg/exception"
)

// AirportRef identifies one end of a flown segment. Time is the local
// departure or arrival time in HH:MM form.
type AirportRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time,omitempty"`
}

// FlightSegment is one non-stop flown leg of an itinerary.
type FlightSegment struct {
	DepartureAirport AirportRef `json:"departure_airport"`
	ArrivalAirport   AirportRef `json:"arrival_airport"`
	Duration         int        `json:"duration"`
	Airplane         string     `json:"airplane,omitempty"`
	Airline          string     `json:"airline"`
	AirlineLogo      string     `json:"airline_logo,omitempty"`
	TravelClass      string     `json:"travel_class"`
	FlightNumber     string     `json:"flight_number"`
	Legroom          string     `json:"legroom,omitempty"`
	Extensions       []string   `json:"extensions,omitempty"`
}

// Layover is the gap between two consecutive segments within one itinerary.
// Overnight is set for gaps longer than 8 hours.
type Layover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight,omitempty"`
}

// FlightResult is one priced, bookable offer. Flights holds every segment of
// every itinerary in order; Layovers has one entry per in-itinerary gap.
type FlightResult struct {
	Flights       []FlightSegment `json:"flights"`
	Layovers      []Layover       `json:"layovers,omitempty"`
	TotalDuration int             `json:"total_duration"`
	Price         float64         `json:"price"`
	Type          string          `json:"type"`
	AirlineLogo   string          `json:"airline_logo,omitempty"`
	Extensions    []string        `json:"extensions,omitempty"`
	BookingToken  string          `json:"booking_token,omitempty"`
}

// Stops returns the number of layovers of the whole offer.
func (f FlightResult) Stops() int {
	return len(f.Layovers)
}

type PriceInsights struct {
	LowestPrice       float64      `json:"lowest_price"`
	PriceLevel        string       `json:"price_level"`
	TypicalPriceRange [2]int       `json:"typical_price_range"`
	PriceHistory      [][2]float64 `json:"price_history"`
}

type SearchParameters struct {
	Engine       string `json:"engine"`
	HL           string `json:"hl,omitempty"`
	GL           string `json:"gl,omitempty"`
	Type         string `json:"type"`
	DepartureID  string `json:"departure_id"`
	ArrivalID    string `json:"arrival_id"`
	OutboundDate string `json:"outbound_date"`
	ReturnDate   string `json:"return_date,omitempty"`
	Currency     string `json:"currency"`
}

type SearchData struct {
	SearchParameters SearchParameters `json:"search_parameters"`
	BestFlights      []FlightResult   `json:"best_flights"`
	OtherFlights     []FlightResult   `json:"other_flights"`
	PriceInsights    *PriceInsights   `json:"price_insights,omitempty"`
	Facets           *SearchFacets    `json:"facets,omitempty"`
}

type RangeStat struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchFacets parameterizes the filter UI: which airlines occur in the
// result set and the spans of the price/duration sliders. Always derived
// from the unfiltered list.
type SearchFacets struct {
	Airlines      []string  `json:"airlines"`
	PriceRange    RangeStat `json:"price_range"`
	DurationRange RangeStat `json:"duration_range"`
}

type SearchError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// FlightSearchResponse is a success/error union. Exactly one of Data and
// Error is set; Success discriminates.
type FlightSearchResponse struct {
	Success bool         `json:"success"`
	Data    *SearchData  `json:"data,omitempty"`
	Error   *SearchError `json:"error,omitempty"`
}

// AllFlights returns best and other flights as one list, best first.
func (r FlightSearchResponse) AllFlights() []FlightResult {
	if r.Data == nil {
		return nil
	}

	all := make([]FlightResult, 0, len(r.Data.BestFlights)+len(r.Data.OtherFlights))
	all = append(all, r.Data.BestFlights...)
	all = append(all, r.Data.OtherFlights...)

	return all
}

// Trip types and travel classes use the numeric wire encoding of the search
// request: type 1 = round trip, 2 = one way; class 1..4 = economy..first.
const (
	TripTypeRoundTrip = "1"
	TripTypeOneWay    = "2"
)

// FlightSearchRequest is the inbound search query. Filter and SortBy are
// optional view options applied after normalization.
type FlightSearchRequest struct {
	DepartureID  string        `json:"departure_id" validate:"required,len=3,alpha"`
	ArrivalID    string        `json:"arrival_id" validate:"required,len=3,alpha"`
	OutboundDate string        `json:"outbound_date" validate:"required,datetime=2006-01-02"`
	ReturnDate   string        `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Type         string        `json:"type,omitempty" validate:"omitempty,oneof=1 2"`
	TravelClass  string        `json:"travel_class,omitempty" validate:"omitempty,oneof=1 2 3 4"`
	Adults       int           `json:"adults,omitempty" validate:"omitempty,min=1,max=9"`
	Currency     string        `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	SortBy       string        `json:"sort_by,omitempty" validate:"omitempty,oneof=price duration departure arrival"`
	Filter       *FlightFilter `json:"filter,omitempty"`
}

func (r *FlightSearchRequest) Bind(req *http.Request) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (r *FlightSearchRequest) Validate() error {
	r.applyDefaults()

	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if r.Filter != nil {
		if err := r.Filter.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (r *FlightSearchRequest) applyDefaults() {
	if r.Type == "" {
		r.Type = TripTypeOneWay
	}
	if r.TravelClass == "" {
		r.TravelClass = "1"
	}
	if r.Adults == 0 {
		r.Adults = 1
	}
	if r.Currency == "" {
		r.Currency = "USD"
	}
}

// RoundTrip reports whether the request asks for a return leg.
func (r FlightSearchRequest) RoundTrip() bool {
	return r.Type == TripTypeRoundTrip && r.ReturnDate != ""
}

// HasViewOptions reports whether the caller asked for a processed view
// (filtered or re-sorted) instead of the raw normalized partition.
func (r FlightSearchRequest) HasViewOptions() bool {
	return r.SortBy != "" || (r.Filter != nil && r.Filter.Active())
}

// FlightFilter holds optional predicates combined with AND. Stops buckets are
// normalized: 0 = nonstop, 1 = one stop, 2 = two or more stops.
type FlightFilter struct {
	MaxPrice           *float64 `json:"max_price,omitempty" validate:"omitempty,gte=0"`
	MinPrice           *float64 `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	Stops              []int    `json:"stops,omitempty" validate:"omitempty,dive,gte=0,lte=2"`
	Airlines           []string `json:"airlines,omitempty"`
	MaxDuration        *int     `json:"max_duration,omitempty" validate:"omitempty,gt=0"`
	DepartureTimeRange *[2]int  `json:"departure_time_range,omitempty"`
}

func (f *FlightFilter) Validate() error {
	if err := ValidateSingleError(f); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if f.MinPrice != nil && f.MaxPrice != nil && *f.MaxPrice < *f.MinPrice {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "max_price must be greater than min_price",
		}
	}

	if f.DepartureTimeRange != nil {
		r := *f.DepartureTimeRange
		if r[0] < 0 || r[1] > 24 || r[0] > r[1] {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "departure_time_range must be within [0,24] and ordered",
			}
		}
	}

	return nil
}

// Active reports whether any predicate is set.
func (f *FlightFilter) Active() bool {
	if f == nil {
		return false
	}

	return f.MaxPrice != nil || f.MinPrice != nil || len(f.Stops) > 0 ||
		len(f.Airlines) > 0 || f.MaxDuration != nil || f.DepartureTimeRange != nil
}
