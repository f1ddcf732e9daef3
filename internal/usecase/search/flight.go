package search

import (
	"fmt"
	"math"

	"github.com/meridian-travel/tripdex/internal/detrand"
	"github.com/meridian-travel/tripdex/internal/domain/offer"
	"github.com/meridian-travel/tripdex/internal/domain/query"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

// flightSlots are the departure hours cycled by result index.
var flightSlots = [...]int{6, 9, 12, 15, 18, 21}

// flightTierFactor multiplies the duration-derived base price.
var flightTierFactor = map[travel.Tier]float64{
	travel.TierBudget:   0.7,
	travel.TierMidRange: 1.0,
	travel.TierPremium:  1.4,
	travel.TierLuxury:   2.2,
}

const (
	// budgetDurationScale lengthens budget-carrier flights.
	budgetDurationScale = 1.1
	// nonStopMaxMinutes is the duration below which a flight is always non-stop.
	nonStopMaxMinutes = 240
	// oneStopThreshold: above nonStopMaxMinutes, a stop-draw fraction
	// beyond this value yields a one-stop itinerary.
	oneStopThreshold = 0.4
)

func (s *Service) generateFlights(req *query.Request) []offer.Offer {
	base := detrand.Hash(req.SeedKey())
	count := 4 + base%4
	airlines := s.catalog.Airlines()

	offers := make([]offer.Offer, 0, count)
	for i := 0; i < count; i++ {
		al := airlines[detrand.Pick(base+i*strideProvider, len(airlines))]

		dur := 90 + int(detrand.Frac(base+i*strideDuration)*240)
		if al.Tier == travel.TierBudget {
			dur = int(math.Round(float64(dur) * budgetDurationScale))
		}

		depart := flightSlots[i%len(flightSlots)]*60 +
			quarterOffsets[detrand.Pick(base+i*strideMinute, len(quarterOffsets))]

		stops := travel.StopNone
		if dur > nonStopMaxMinutes && detrand.Frac(base+i*strideStops) > oneStopThreshold {
			stops = travel.StopOne
		}

		price := math.Round((50 + math.Floor(float64(dur)*0.3)) *
			flightPriceFactor(al.Tier) * req.CurrencyRate())

		offers = append(offers, offer.Offer{
			ID:           offerID(req.SeedKey(), i),
			Domain:       travel.Flight,
			Provider:     al.Name,
			Tier:         al.Tier,
			Price:        price,
			FlightNumber: fmt.Sprintf("%s-%d", providerCode(al.Name), 100+(base+i*strideNumber)%900),
			Departure:    clockTime(depart),
			Arrival:      clockTime((depart + dur) % minutesPerDay),
			DurationMin:  dur,
			Stops:        stops,
			OnTimeRate:   al.OnTimeRate,
		})
	}
	return offers
}

// flightPriceFactor resolves the tier multiplier, falling back to the
// budget factor for unknown tiers.
func flightPriceFactor(t travel.Tier) float64 {
	if f, ok := flightTierFactor[t]; ok {
		return f
	}
	return flightTierFactor[travel.TierBudget]
}
