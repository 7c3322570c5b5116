// Package amadeus is a thin client for the Amadeus Self-Service APIs used by
// the search pipeline: OAuth2 client-credentials token exchange, airport/city
// reference-data search, and flight-offers search.
package amadeus

// APIError is one entry of the structured errors array Amadeus embeds in
// payloads, including on non-2xx responses.
type APIError struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Message prefers the detail text, falling back to the title.
func (e APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

type Meta struct {
	Count int `json:"count"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ---- reference-data locations ----

type LocationAddress struct {
	CityName    string `json:"cityName"`
	CityCode    string `json:"cityCode"`
	CountryName string `json:"countryName"`
	CountryCode string `json:"countryCode"`
	RegionCode  string `json:"regionCode,omitempty"`
}

type Location struct {
	Type         string          `json:"type"`
	SubType      string          `json:"subType"`
	Name         string          `json:"name"`
	DetailedName string          `json:"detailedName"`
	ID           string          `json:"id"`
	IataCode     string          `json:"iataCode"`
	Address      LocationAddress `json:"address"`
}

type LocationsResponse struct {
	Meta   *Meta      `json:"meta,omitempty"`
	Data   []Location `json:"data,omitempty"`
	Errors []APIError `json:"errors,omitempty"`
}

// ---- flight-offers search request ----

type DepartureDateTimeRange struct {
	Date string `json:"date"`
}

type OriginDestination struct {
	ID                      string                 `json:"id"`
	OriginLocationCode      string                 `json:"originLocationCode"`
	DestinationLocationCode string                 `json:"destinationLocationCode"`
	DepartureDateTimeRange  DepartureDateTimeRange `json:"departureDateTimeRange"`
}

type Traveler struct {
	ID           string `json:"id"`
	TravelerType string `json:"travelerType"`
}

type CabinRestriction struct {
	Cabin                string   `json:"cabin"`
	Coverage             string   `json:"coverage"`
	OriginDestinationIDs []string `json:"originDestinationIds"`
}

type FlightFilters struct {
	CabinRestrictions []CabinRestriction `json:"cabinRestrictions"`
}

type SearchCriteria struct {
	MaxFlightOffers int           `json:"maxFlightOffers"`
	FlightFilters   FlightFilters `json:"flightFilters"`
}

type OffersRequest struct {
	CurrencyCode       string              `json:"currencyCode"`
	OriginDestinations []OriginDestination `json:"originDestinations"`
	Travelers          []Traveler          `json:"travelers"`
	Sources            []string            `json:"sources"`
	SearchCriteria     SearchCriteria      `json:"searchCriteria"`
}

// ---- flight-offers search response ----

type SegmentEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Segment struct {
	Departure     SegmentEndpoint `json:"departure"`
	Arrival       SegmentEndpoint `json:"arrival"`
	CarrierCode   string          `json:"carrierCode"`
	Number        string          `json:"number"`
	Aircraft      Aircraft        `json:"aircraft"`
	Duration      string          `json:"duration"`
	ID            string          `json:"id"`
	NumberOfStops int             `json:"numberOfStops"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

type FareDetailsBySegment struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
	FareBasis string `json:"fareBasis"`
	Class     string `json:"class"`
}

type TravelerPricing struct {
	TravelerID           string                 `json:"travelerId"`
	FareOption           string                 `json:"fareOption"`
	TravelerType         string                 `json:"travelerType"`
	Price                Price                  `json:"price"`
	FareDetailsBySegment []FareDetailsBySegment `json:"fareDetailsBySegment"`
}

type FlightOffer struct {
	Type                   string            `json:"type"`
	ID                     string            `json:"id"`
	Source                 string            `json:"source"`
	OneWay                 bool              `json:"oneWay"`
	LastTicketingDate      string            `json:"lastTicketingDate"`
	NumberOfBookableSeats  int               `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  Price             `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings"`
}

type DictionaryLocation struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

type Dictionaries struct {
	Locations  map[string]DictionaryLocation `json:"locations"`
	Aircraft   map[string]string             `json:"aircraft"`
	Currencies map[string]string             `json:"currencies"`
	Carriers   map[string]string             `json:"carriers"`
}

type OffersResponse struct {
	Meta         *Meta         `json:"meta,omitempty"`
	Data         []FlightOffer `json:"data,omitempty"`
	Dictionaries *Dictionaries `json:"dictionaries,omitempty"`
	Errors       []APIError    `json:"errors,omitempty"`
}
