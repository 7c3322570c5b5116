// Package flight holds the offer normalization pipeline and the pure
// filter/sort/aggregate functions that derive views from it.
package flight

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/farelens/flight-offers-service/internal/app/dto"
	"github.com/farelens/flight-offers-service/internal/pkg/amadeus"
	"github.com/farelens/flight-offers-service/internal/pkg/utils"
	"github.com/spf13/cast"
)

const maxFlightOffers = 50

// overnightThresholdMinutes flags layovers longer than 8 hours.
const overnightThresholdMinutes = 480

// bestFlightCount is the size of the price-ordered "best" partition produced
// by normalization.
const bestFlightCount = 3

// isoDuration captures only hour and minute components; day components never
// occur in offer payloads and an unmatched string parses to 0.
var isoDuration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

var cabinLabels = map[string]string{
	"ECONOMY":         "Economy",
	"PREMIUM_ECONOMY": "Premium Economy",
	"BUSINESS":        "Business",
	"FIRST":           "First",
}

var travelClassCabins = map[string]string{
	"1": "ECONOMY",
	"2": "PREMIUM_ECONOMY",
	"3": "BUSINESS",
	"4": "FIRST",
}

// BuildOffersRequest maps the inbound search query onto the provider's offer
// search body. The return leg is added only for round trips with a return
// date; travelers are sized to the adult count.
func BuildOffersRequest(req dto.FlightSearchRequest) amadeus.OffersRequest {
	originDestinations := []amadeus.OriginDestination{
		{
			ID:                      "1",
			OriginLocationCode:      req.DepartureID,
			DestinationLocationCode: req.ArrivalID,
			DepartureDateTimeRange:  amadeus.DepartureDateTimeRange{Date: req.OutboundDate},
		},
	}
	originDestinationIDs := []string{"1"}

	if req.RoundTrip() {
		originDestinations = append(originDestinations, amadeus.OriginDestination{
			ID:                      "2",
			OriginLocationCode:      req.ArrivalID,
			DestinationLocationCode: req.DepartureID,
			DepartureDateTimeRange:  amadeus.DepartureDateTimeRange{Date: req.ReturnDate},
		})
		originDestinationIDs = append(originDestinationIDs, "2")
	}

	travelers := make([]amadeus.Traveler, req.Adults)
	for i := range travelers {
		travelers[i] = amadeus.Traveler{
			ID:           strconv.Itoa(i + 1),
			TravelerType: "ADULT",
		}
	}

	return amadeus.OffersRequest{
		CurrencyCode:       req.Currency,
		OriginDestinations: originDestinations,
		Travelers:          travelers,
		Sources:            []string{"GDS"},
		SearchCriteria: amadeus.SearchCriteria{
			MaxFlightOffers: maxFlightOffers,
			FlightFilters: amadeus.FlightFilters{
				CabinRestrictions: []amadeus.CabinRestriction{
					{
						Cabin:                TravelClassCabin(req.TravelClass),
						Coverage:             "MOST_SEGMENTS",
						OriginDestinationIDs: originDestinationIDs,
					},
				},
			},
		},
	}
}

// TravelClassCabin maps the numeric travel-class request value to the
// provider cabin enum, defaulting to economy.
func TravelClassCabin(travelClass string) string {
	if cabin, ok := travelClassCabins[travelClass]; ok {
		return cabin
	}
	return "ECONOMY"
}

// Normalize converts an offer-search payload into the domain response union.
// Provider-reported errors become an error union with an AMADEUS_<code>
// code; an empty result set is a success with empty flight lists.
func Normalize(payload amadeus.OffersResponse, req dto.FlightSearchRequest) dto.FlightSearchResponse {
	if len(payload.Errors) > 0 {
		first := payload.Errors[0]

		return dto.FlightSearchResponse{
			Success: false,
			Error: &dto.SearchError{
				Message: first.Message(),
				Code:    fmt.Sprintf("AMADEUS_%d", first.Code),
			},
		}
	}

	if len(payload.Data) == 0 {
		return dto.FlightSearchResponse{
			Success: true,
			Data: &dto.SearchData{
				SearchParameters: searchParameters(req),
				BestFlights:      []dto.FlightResult{},
				OtherFlights:     []dto.FlightResult{},
			},
		}
	}

	dictionaries := amadeus.Dictionaries{}
	if payload.Dictionaries != nil {
		dictionaries = *payload.Dictionaries
	}

	allFlights := make([]dto.FlightResult, 0, len(payload.Data))
	for _, offer := range payload.Data {
		allFlights = append(allFlights, transformOffer(offer, dictionaries))
	}

	sort.SliceStable(allFlights, func(i, j int) bool {
		return allFlights[i].Price < allFlights[j].Price
	})

	best := bestFlightCount
	if best > len(allFlights) {
		best = len(allFlights)
	}

	return dto.FlightSearchResponse{
		Success: true,
		Data: &dto.SearchData{
			SearchParameters: searchParameters(req),
			BestFlights:      allFlights[:best],
			OtherFlights:     allFlights[best:],
			PriceInsights:    priceInsights(allFlights),
		},
	}
}

func transformOffer(offer amadeus.FlightOffer, dict amadeus.Dictionaries) dto.FlightResult {
	cabin := "ECONOMY"
	if len(offer.TravelerPricings) > 0 && len(offer.TravelerPricings[0].FareDetailsBySegment) > 0 {
		cabin = offer.TravelerPricings[0].FareDetailsBySegment[0].Cabin
	}

	var validatingCode string
	if len(offer.ValidatingAirlineCodes) > 0 {
		validatingCode = offer.ValidatingAirlineCodes[0]
	}
	airlineName := carrierName(dict, validatingCode)

	var (
		segments   []dto.FlightSegment
		layovers   []dto.Layover
		totalStops int
		totalDur   int
	)

	for _, itinerary := range offer.Itineraries {
		for i, segment := range itinerary.Segments {
			segments = append(segments, dto.FlightSegment{
				DepartureAirport: dto.AirportRef{
					Name: locationName(dict, segment.Departure.IataCode),
					ID:   segment.Departure.IataCode,
					Time: formatClock(segment.Departure.At),
				},
				ArrivalAirport: dto.AirportRef{
					Name: locationName(dict, segment.Arrival.IataCode),
					ID:   segment.Arrival.IataCode,
					Time: formatClock(segment.Arrival.At),
				},
				Duration:     ParseISODuration(segment.Duration),
				Airplane:     aircraftName(dict, segment.Aircraft.Code),
				Airline:      carrierName(dict, segment.CarrierCode),
				AirlineLogo:  AirlineLogoURL(segment.CarrierCode),
				TravelClass:  CabinLabel(cabin),
				FlightNumber: segment.CarrierCode + segment.Number,
			})

			// layovers exist only between segments of the same itinerary
			if i == 0 {
				continue
			}

			previous := itinerary.Segments[i-1]
			minutes := layoverMinutes(previous.Arrival.At, segment.Departure.At)
			layovers = append(layovers, dto.Layover{
				Duration:  minutes,
				Name:      locationName(dict, previous.Arrival.IataCode),
				ID:        previous.Arrival.IataCode,
				Overnight: minutes > overnightThresholdMinutes,
			})
		}

		totalStops += len(itinerary.Segments) - 1
		totalDur += ParseISODuration(itinerary.Duration)
	}

	return dto.FlightResult{
		Flights:       segments,
		Layovers:      layovers,
		TotalDuration: totalDur,
		Price:         cast.ToFloat64(offer.Price.GrandTotal),
		Type:          utils.StopsLabel(totalStops),
		AirlineLogo:   AirlineLogoURL(validatingCode),
		Extensions: []string{
			fmt.Sprintf("%d seats left", offer.NumberOfBookableSeats),
			airlineName,
		},
		BookingToken: offer.ID,
	}
}

// priceInsights derives the price summary from the full offer list. Nil for
// an empty list.
func priceInsights(flights []dto.FlightResult) *dto.PriceInsights {
	if len(flights) == 0 {
		return nil
	}

	lowest := flights[0].Price
	sum := 0.0
	for _, f := range flights {
		if f.Price < lowest {
			lowest = f.Price
		}
		sum += f.Price
	}
	avg := sum / float64(len(flights))

	level := "typical"
	if lowest < avg*0.8 {
		level = "low"
	} else if lowest > avg*1.2 {
		level = "high"
	}

	return &dto.PriceInsights{
		LowestPrice: lowest,
		PriceLevel:  level,
		TypicalPriceRange: [2]int{
			int(math.Round(avg * 0.9)),
			int(math.Round(avg * 1.1)),
		},
		PriceHistory: [][2]float64{},
	}
}

func searchParameters(req dto.FlightSearchRequest) dto.SearchParameters {
	return dto.SearchParameters{
		Engine:       "google_flights",
		HL:           "en",
		GL:           "us",
		Type:         req.Type,
		DepartureID:  req.DepartureID,
		ArrivalID:    req.ArrivalID,
		OutboundDate: req.OutboundDate,
		ReturnDate:   req.ReturnDate,
		Currency:     req.Currency,
	}
}

// ParseISODuration converts an ISO-8601 duration like "PT2H30M" to minutes.
// Missing components default to 0 and an unmatched string parses to 0.
func ParseISODuration(duration string) int {
	match := isoDuration.FindStringSubmatch(duration)
	if match == nil {
		return 0
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])

	return hours*60 + minutes
}

// AirlineLogoURL derives the logo URL for an IATA carrier code.
func AirlineLogoURL(carrierCode string) string {
	return fmt.Sprintf("https://pics.avs.io/60/60/%s.png", carrierCode)
}

// CabinLabel maps a provider cabin enum to its display string, falling back
// to the raw value.
func CabinLabel(cabin string) string {
	if label, ok := cabinLabels[cabin]; ok {
		return label
	}
	return cabin
}

func carrierName(dict amadeus.Dictionaries, code string) string {
	if name, ok := dict.Carriers[code]; ok {
		return name
	}
	return code
}

func aircraftName(dict amadeus.Dictionaries, code string) string {
	if name, ok := dict.Aircraft[code]; ok {
		return name
	}
	return code
}

// locationName resolves an airport code through the response dictionary,
// falling back to the raw code for missing entries.
func locationName(dict amadeus.Dictionaries, iataCode string) string {
	if loc, ok := dict.Locations[iataCode]; ok && loc.CityCode != "" {
		return loc.CityCode
	}
	return iataCode
}

func layoverMinutes(arrivalAt, nextDepartureAt string) int {
	arrival, okArr := parseSegmentTime(arrivalAt)
	departure, okDep := parseSegmentTime(nextDepartureAt)
	if !okArr || !okDep {
		return 0
	}

	return int(math.Round(departure.Sub(arrival).Minutes()))
}

// formatClock renders a segment timestamp as HH:MM, empty when unparseable.
func formatClock(at string) string {
	t, ok := parseSegmentTime(at)
	if !ok {
		return ""
	}

	return t.Format("15:04")
}

// parseSegmentTime accepts provider timestamps with or without a zone
// offset.
func parseSegmentTime(at string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, at); err == nil {
		return t, true
	}

	if t, err := time.Parse("2006-01-02T15:04:05", at); err == nil {
		return t, true
	}

	return time.Time{}, false
}
