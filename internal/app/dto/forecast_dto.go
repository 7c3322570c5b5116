package dto

import (
	"fmt"
	"net/http"

	"github.com/farelens/flight-offers-service/internal/pkg/exception"
	"github.com/spf13/cast"
)

// PriceForecastRequest asks for a synthetic price curve starting at the
// current lowest price. RangeMin/RangeMax come from the search's typical
// price range and bound the generated values.
type PriceForecastRequest struct {
	BasePrice float64 `json:"base_price" validate:"required,gt=0"`
	RangeMin  float64 `json:"range_min" validate:"gte=0"`
	RangeMax  float64 `json:"range_max" validate:"required,gt=0"`
	Interval  string  `json:"interval,omitempty" validate:"omitempty,oneof=7d 14d 1m 2m"`
}

func (r *PriceForecastRequest) Bind(req *http.Request) error {
	query := req.URL.Query()

	var err error

	if r.BasePrice, err = cast.ToFloat64E(query.Get("base_price")); err != nil {
		return badQueryParam("base_price")
	}

	if v := query.Get("range_min"); v != "" {
		if r.RangeMin, err = cast.ToFloat64E(v); err != nil {
			return badQueryParam("range_min")
		}
	}

	if v := query.Get("range_max"); v != "" {
		if r.RangeMax, err = cast.ToFloat64E(v); err != nil {
			return badQueryParam("range_max")
		}
	}

	r.Interval = query.Get("interval")

	return r.Validate()
}

func (r *PriceForecastRequest) Validate() error {
	if r.Interval == "" {
		r.Interval = "14d"
	}

	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if r.RangeMax < r.RangeMin {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "range_max must be greater than range_min",
		}
	}

	return nil
}

// Days maps the interval preset to the number of forecast days.
func (r PriceForecastRequest) Days() int {
	switch r.Interval {
	case "7d":
		return 7
	case "1m":
		return 30
	case "2m":
		return 60
	default:
		return 14
	}
}

func badQueryParam(name string) error {
	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("%s must be a number", name),
	}
}

// PricePoint is one day of the forecast curve. The first point reflects the
// actual current price, later points are predicted.
type PricePoint struct {
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	IsPredicted bool    `json:"is_predicted"`
}

type PriceForecastResponse struct {
	Points []PricePoint `json:"points"`
}
