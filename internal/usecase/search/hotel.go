package search

import (
	"math"

	"github.com/meridian-travel/tripdex/internal/detrand"
	"github.com/meridian-travel/tripdex/internal/domain/offer"
	"github.com/meridian-travel/tripdex/internal/domain/query"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

// hotelLocations are the location labels cycled by seed and index.
var hotelLocations = [...]string{
	"City Center", "Near Airport", "Old Town", "Riverside", "Business District",
}

// hotelTierBase is the nightly base price per brand tier.
var hotelTierBase = map[travel.Tier]float64{
	travel.TierBudget:   30,
	travel.TierMidRange: 80,
	travel.TierLuxury:   220,
}

// hotelAmenityCount is the amenity subset size per brand tier.
var hotelAmenityCount = map[travel.Tier]int{
	travel.TierLuxury:   5,
	travel.TierMidRange: 3,
	travel.TierBudget:   2,
}

func (s *Service) generateHotels(req *query.Request) []offer.Offer {
	base := detrand.Hash(req.SeedKey())
	count := 4 + base%4
	brands := s.catalog.HotelBrands()
	vocab := s.catalog.Amenities()

	offers := make([]offer.Offer, 0, count)
	for i := 0; i < count; i++ {
		b := brands[detrand.Pick(base+i*strideProvider, len(brands))]

		rating := clamp(b.BaseRating+(detrand.Frac(base+i*strideRating)-0.5)*0.4, 3.0, 5.0)
		rating = math.Round(rating*10) / 10

		price := math.Round((hotelBasePrice(b.Tier) +
			detrand.Frac(base+i*stridePrice)*40) * req.CurrencyRate())

		reviews := 50 + int(detrand.Frac(base+i*strideReviews)*450)

		offers = append(offers, offer.Offer{
			ID:        offerID(req.SeedKey(), i),
			Domain:    travel.Hotel,
			Provider:  b.Name,
			Tier:      b.Tier,
			Price:     price,
			Name:      b.Name + " " + req.Destination(),
			Rating:    rating,
			Reviews:   reviews,
			Location:  hotelLocations[(base+i)%len(hotelLocations)],
			Amenities: amenitySubset(vocab, b.Tier, base+i*strideAmenity),
			Guests:    req.Guests(),
		})
	}
	return offers
}

// amenitySubset picks the tier-sized amenity set by cycling the
// vocabulary from a seed-derived start index, skipping duplicates.
func amenitySubset(vocab []string, tier travel.Tier, seed int) []string {
	n, ok := hotelAmenityCount[tier]
	if !ok {
		n = hotelAmenityCount[travel.TierBudget]
	}
	if n > len(vocab) {
		n = len(vocab)
	}

	start := seed % len(vocab)
	picked := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for j := 0; len(picked) < n && j < len(vocab); j++ {
		a := vocab[(start+j)%len(vocab)]
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		picked = append(picked, a)
	}
	return picked
}

// hotelBasePrice resolves the tier base, falling back to the budget
// base for unknown tiers.
func hotelBasePrice(t travel.Tier) float64 {
	if b, ok := hotelTierBase[t]; ok {
		return b
	}
	return hotelTierBase[travel.TierBudget]
}
