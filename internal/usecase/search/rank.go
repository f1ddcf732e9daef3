package search

import (
	"sort"

	"github.com/meridian-travel/tripdex/internal/domain/offer"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

// markRecommended tags the single highest-scored offer. Ties go to the
// first occurrence in generation order, which keeps the tag
// deterministic given deterministic generation and scoring.
func markRecommended(offers []offer.Offer) {
	if len(offers) == 0 {
		return
	}
	best := 0
	for i := 1; i < len(offers); i++ {
		if offers[i].Score > offers[best].Score {
			best = i
		}
	}
	offers[best].Recommended = true
}

// Sort returns a stable re-ordering of an already-scored result set.
// It never rescores and never mutates the input set; unknown modes fall
// back to the recommended ordering.
func Sort(set offer.ResultSet, mode travel.SortMode) offer.ResultSet {
	out := offer.ResultSet{
		Domain: set.Domain,
		Offers: append([]offer.Offer(nil), set.Offers...),
	}

	var less func(i, j int) bool
	switch mode {
	case travel.SortPriceLow:
		less = func(i, j int) bool { return out.Offers[i].Price < out.Offers[j].Price }
	case travel.SortPriceHigh:
		less = func(i, j int) bool { return out.Offers[i].Price > out.Offers[j].Price }
	case travel.SortRating:
		// Domains without a rating field sort as rating 0.
		less = func(i, j int) bool { return out.Offers[i].Rating > out.Offers[j].Rating }
	default:
		less = func(i, j int) bool { return out.Offers[i].Score > out.Offers[j].Score }
	}

	sort.SliceStable(out.Offers, less)
	return out
}
