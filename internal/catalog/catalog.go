// Package catalog holds the static provider reference data the
// generators draw from. The tables are process-wide constants addressed
// by index; they are never mutated after init and must stay stable for
// the lifetime of the engine, since every generated result set is a
// function of catalog order and length.
package catalog

import "github.com/meridian-travel/tripdex/internal/domain/travel"

// Airline is a flight provider with its tier-correlated on-time rate.
type Airline struct {
	Name       string
	Tier       travel.Tier
	OnTimeRate float64
}

// HotelBrand is a hotel provider with its tier-correlated base rating.
type HotelBrand struct {
	Name       string
	Tier       travel.Tier
	BaseRating float64
}

// TrainService is a rail provider with its class-correlated speed factor.
type TrainService struct {
	Name        string
	Class       travel.Tier
	SpeedFactor float64
}

var airlines = [...]Airline{
	{Name: "Skyline Air", Tier: travel.TierPremium, OnTimeRate: 0.91},
	{Name: "AeroJet", Tier: travel.TierMidRange, OnTimeRate: 0.84},
	{Name: "Pacific Wings", Tier: travel.TierLuxury, OnTimeRate: 0.95},
	{Name: "BlueBird Express", Tier: travel.TierBudget, OnTimeRate: 0.72},
	{Name: "Nimbus Airways", Tier: travel.TierMidRange, OnTimeRate: 0.81},
	{Name: "Vista Atlantic", Tier: travel.TierPremium, OnTimeRate: 0.89},
	{Name: "CloudHopper", Tier: travel.TierBudget, OnTimeRate: 0.68},
	{Name: "Meridian Air", Tier: travel.TierLuxury, OnTimeRate: 0.93},
}

var hotelBrands = [...]HotelBrand{
	{Name: "Grand Imperial", Tier: travel.TierLuxury, BaseRating: 4.7},
	{Name: "Harbor View", Tier: travel.TierMidRange, BaseRating: 4.1},
	{Name: "CityStay", Tier: travel.TierBudget, BaseRating: 3.6},
	{Name: "The Atelier", Tier: travel.TierLuxury, BaseRating: 4.8},
	{Name: "Parkside Suites", Tier: travel.TierMidRange, BaseRating: 4.2},
	{Name: "Transit Inn", Tier: travel.TierBudget, BaseRating: 3.4},
	{Name: "Royal Meridian", Tier: travel.TierLuxury, BaseRating: 4.6},
	{Name: "Maple Court", Tier: travel.TierMidRange, BaseRating: 4.0},
}

var trainServices = [...]TrainService{
	{Name: "Velocity Express", Class: travel.TierPremium, SpeedFactor: 1.6},
	{Name: "InterCity Flyer", Class: travel.TierMidRange, SpeedFactor: 1.25},
	{Name: "Coastal Liner", Class: travel.TierMidRange, SpeedFactor: 1.2},
	{Name: "Regional Connect", Class: travel.TierBudget, SpeedFactor: 1.0},
	{Name: "Night Voyager", Class: travel.TierBudget, SpeedFactor: 0.95},
	{Name: "Summit Express", Class: travel.TierPremium, SpeedFactor: 1.5},
}

// amenities is the fixed hotel amenity vocabulary. Amenity coverage in
// scoring is measured against its full length.
var amenities = [...]string{
	"Free WiFi",
	"Pool",
	"Gym",
	"Spa",
	"Breakfast",
	"Bar",
	"Parking",
	"Airport Shuttle",
}

// Static serves the built-in catalog tables. The returned slices are
// backed by the package tables and must be treated as read-only.
type Static struct{}

// Airlines returns the flight provider table.
func (Static) Airlines() []Airline { return airlines[:] }

// HotelBrands returns the hotel provider table.
func (Static) HotelBrands() []HotelBrand { return hotelBrands[:] }

// TrainServices returns the rail provider table.
func (Static) TrainServices() []TrainService { return trainServices[:] }

// Amenities returns the hotel amenity vocabulary.
func (Static) Amenities() []string { return amenities[:] }
