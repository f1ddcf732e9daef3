package search

import (
	"fmt"
	"math"

	"github.com/meridian-travel/tripdex/internal/detrand"
	"github.com/meridian-travel/tripdex/internal/domain/offer"
	"github.com/meridian-travel/tripdex/internal/domain/query"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

// trainSlots are the departure hours cycled by result index.
var trainSlots = [...]int{5, 7, 9, 11, 13, 15, 17, 19, 21}

// trainClassBase is the base fare per service class.
var trainClassBase = map[travel.Tier]float64{
	travel.TierPremium:  35,
	travel.TierMidRange: 20,
	travel.TierBudget:   10,
}

func (s *Service) generateTrains(req *query.Request) []offer.Offer {
	base := detrand.Hash(req.SeedKey())
	count := 4 + base%3
	services := s.catalog.TrainServices()

	offers := make([]offer.Offer, 0, count)
	for i := 0; i < count; i++ {
		svc := services[detrand.Pick(base+i*strideProvider, len(services))]

		// Faster services cover the same route in fewer minutes.
		dur := int(math.Round((240 + math.Floor(detrand.Frac(base+i*strideDuration)*480)) /
			svc.SpeedFactor))

		depart := trainSlots[i%len(trainSlots)]*60 +
			quarterOffsets[detrand.Pick(base+i*strideMinute, len(quarterOffsets))]

		price := math.Round((trainBaseFare(svc.Class) +
			math.Floor(float64(dur)*0.04)) * req.CurrencyRate())

		class := req.TrainClass()
		if class == "" {
			class = string(svc.Class)
		}

		offers = append(offers, offer.Offer{
			ID:            offerID(req.SeedKey(), i),
			Domain:        travel.Train,
			Provider:      svc.Name,
			Tier:          svc.Class,
			Price:         price,
			ServiceNumber: fmt.Sprintf("%s %d", providerCode(svc.Name), 1000+(base+i*strideNumber)%9000),
			Departure:     clockTime(depart),
			Arrival:       clockTime((depart + dur) % minutesPerDay),
			DurationMin:   dur,
			Seats:         5 + int(detrand.Frac(base+i*strideSeats)*45),
			Class:         class,
		})
	}
	return offers
}

// trainBaseFare resolves the class base fare, falling back to the
// budget fare for unknown classes.
func trainBaseFare(c travel.Tier) float64 {
	if b, ok := trainClassBase[c]; ok {
		return b
	}
	return trainClassBase[travel.TierBudget]
}
