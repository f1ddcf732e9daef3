// Package travel defines the shared vocabulary of the search engine:
// domains, service tiers, stop classes, and sort modes.
package travel

// Domain is the travel search vertical.
type Domain string

// Search domain constants.
const (
	Flight Domain = "flight"
	Hotel  Domain = "hotel"
	Train  Domain = "train"
)

// IsValid checks if the domain is one of the supported values.
func (d Domain) IsValid() bool {
	return d == Flight || d == Hotel || d == Train
}

// Tier is the service tier of a provider. The vocabulary varies per
// domain: airlines use all four, hotel brands skip premium, train
// services skip luxury.
type Tier string

// Service tier constants.
const (
	TierBudget   Tier = "budget"
	TierMidRange Tier = "mid-range"
	TierPremium  Tier = "premium"
	TierLuxury   Tier = "luxury"
)

// StopClass classifies the number of stops on a flight.
type StopClass string

// Stop class constants.
const (
	StopNone StopClass = "Non-stop"
	StopOne  StopClass = "1 Stop"
	StopMany StopClass = "2+ Stops"
)

// SortMode is a display ordering for an already-scored result set.
type SortMode string

// Sort mode constants.
const (
	// SortRecommended orders by descending composite score. This is the
	// default mode and the only one that reflects the scoring engine.
	SortRecommended SortMode = "recommended"
	SortPriceLow    SortMode = "price_low"
	SortPriceHigh   SortMode = "price_high"
	SortRating      SortMode = "rating"
)

// IsValid checks if the sort mode is one of the supported values.
func (m SortMode) IsValid() bool {
	return m == SortRecommended || m == SortPriceLow || m == SortPriceHigh || m == SortRating
}
