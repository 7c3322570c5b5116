package flight

import (
	"math"
	"time"

	"github.com/farelens/flight-offers-service/internal/app/dto"
)

// PricePredictions produces a synthetic, illustrative price curve for the
// forecast chart: one point per day from today through days ahead, seeded by
// the base price so identical searches render identical curves. This is NOT
// a real forecast; it is a deterministic pseudo-random walk shaped by
// booking-window heuristics.
//
// Day 0 is the actual current price; all later days are marked predicted.
// Weekend days get an 8% boost, near-term days (<14) trend up to 15% higher,
// far-out days (>45) trend about 8% lower, and every value is clamped to
// [0.85*rangeMin, 1.15*rangeMax].
func PricePredictions(basePrice float64, typicalRange [2]float64, days int) []dto.PricePoint {
	today := time.Now().Truncate(24 * time.Hour)

	return pricePredictionsFrom(today, basePrice, typicalRange, days)
}

func pricePredictionsFrom(today time.Time, basePrice float64, typicalRange [2]float64, days int) []dto.PricePoint {
	predictions := make([]dto.PricePoint, 0, days+1)
	rng := newSeededRand(basePrice)
	rangeWidth := typicalRange[1] - typicalRange[0]

	for i := 0; i <= days; i++ {
		date := today.AddDate(0, 0, i)

		weekendBoost := 1.0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendBoost = 1.08
		}

		variance := (rng.next() - 0.5) * rangeWidth * 0.25

		// prices trend up as departure approaches and drift down for
		// far-out bookings
		var trendFactor float64
		switch {
		case i < 14:
			trendFactor = 1.15 - float64(i)*0.008
		case i > 45:
			trendFactor = 0.92 + rng.next()*0.05
		default:
			trendFactor = 1 + (rng.next()*0.06 - 0.03)
		}

		price := math.Round(basePrice*trendFactor*weekendBoost + variance)
		price = math.Max(typicalRange[0]*0.85, math.Min(typicalRange[1]*1.15, price))

		predictions = append(predictions, dto.PricePoint{
			Date:        date.Format("Jan 2"),
			Price:       price,
			IsPredicted: i > 0,
		})
	}

	return predictions
}

// seededRand is a linear congruential generator. The constants are part of
// the output contract: the curve for a given base price must not change
// across releases.
type seededRand struct {
	seed float64
}

func newSeededRand(seed float64) *seededRand {
	return &seededRand{seed: seed}
}

func (r *seededRand) next() float64 {
	r.seed = math.Mod(r.seed*9301+49297, 233280)

	return r.seed / 233280
}
