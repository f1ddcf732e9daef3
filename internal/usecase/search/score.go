package search

import (
	"math"

	"github.com/meridian-travel/tripdex/internal/domain/offer"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

// Scoring caps for the volume-style criteria.
const (
	reviewVolumeCap = 500
	seatCountCap    = 50
)

// neutralScore is assigned when a min-max criterion carries no
// discriminating information (all values equal).
const neutralScore = 50

// stats holds the per-set aggregates a criterion may normalize against.
type stats struct {
	minPrice, maxPrice float64
	minDur, maxDur     float64
	amenityVocab       int
}

// criterion is one weighted scoring dimension. The score func returns a
// value in [0, 100] for one offer, given the sibling-set stats.
type criterion struct {
	name   string
	weight float64
	score  func(o *offer.Offer, st stats) float64
}

// Per-domain criterion tables. Weights sum to 1.0 within each domain;
// the tables are the single auditable source of the composite formula.
var criteria = map[travel.Domain][]criterion{
	travel.Flight: {
		{"price", 0.40, scorePrice},
		{"duration", 0.25, scoreDuration},
		{"stops", 0.20, scoreStops},
		{"on_time", 0.15, scoreOnTime},
	},
	travel.Hotel: {
		{"price", 0.35, scorePrice},
		{"rating", 0.30, scoreRating},
		{"amenities", 0.20, scoreAmenities},
		{"reviews", 0.15, scoreReviews},
	},
	travel.Train: {
		{"price", 0.40, scorePrice},
		{"duration", 0.30, scoreDuration},
		{"class", 0.15, scoreClass},
		{"seats", 0.15, scoreSeats},
	},
}

// Fixed lookup tables for the discrete criteria. Unknown values fall
// back to the lowest bucket instead of failing.
var (
	stopClassScores = map[travel.StopClass]float64{
		travel.StopNone: 100,
		travel.StopOne:  50,
		travel.StopMany: 20,
	}
	serviceTierScores = map[travel.Tier]float64{
		travel.TierPremium:  90,
		travel.TierMidRange: 60,
		travel.TierBudget:   30,
	}
)

// scoreOffers writes a composite score in [0, 100] onto every offer,
// computed once against the sibling offers of the same generation run.
func (s *Service) scoreOffers(d travel.Domain, offers []offer.Offer) {
	crits, ok := criteria[d]
	if !ok || len(offers) == 0 {
		return
	}

	st := computeStats(offers, len(s.catalog.Amenities()))
	for i := range offers {
		var sum float64
		for _, c := range crits {
			sum += c.weight * c.score(&offers[i], st)
		}
		offers[i].Score = int(math.Round(sum))
	}
}

func computeStats(offers []offer.Offer, amenityVocab int) stats {
	st := stats{
		minPrice: offers[0].Price, maxPrice: offers[0].Price,
		minDur: float64(offers[0].DurationMin), maxDur: float64(offers[0].DurationMin),
		amenityVocab: amenityVocab,
	}
	for _, o := range offers[1:] {
		st.minPrice = math.Min(st.minPrice, o.Price)
		st.maxPrice = math.Max(st.maxPrice, o.Price)
		st.minDur = math.Min(st.minDur, float64(o.DurationMin))
		st.maxDur = math.Max(st.maxDur, float64(o.DurationMin))
	}
	return st
}

// lowerBetter min-max rescales v so the set minimum scores 100 and the
// maximum scores 0. A degenerate range scores the neutral midpoint.
func lowerBetter(v, min, max float64) float64 {
	if max == min {
		return neutralScore
	}
	return (1 - (v-min)/(max-min)) * 100
}

// cappedRatio scores v as a percentage of limit, saturating at 100.
func cappedRatio(v, limit float64) float64 {
	return math.Min(v/limit, 1) * 100
}

func scorePrice(o *offer.Offer, st stats) float64 {
	return lowerBetter(o.Price, st.minPrice, st.maxPrice)
}

func scoreDuration(o *offer.Offer, st stats) float64 {
	return lowerBetter(float64(o.DurationMin), st.minDur, st.maxDur)
}

func scoreStops(o *offer.Offer, _ stats) float64 {
	if v, ok := stopClassScores[o.Stops]; ok {
		return v
	}
	return stopClassScores[travel.StopMany]
}

func scoreOnTime(o *offer.Offer, _ stats) float64 {
	return o.OnTimeRate * 100
}

// scoreRating rescales the 3.0–5.0 hotel rating range to 0–100.
func scoreRating(o *offer.Offer, _ stats) float64 {
	return clamp((o.Rating-3)/2*100, 0, 100)
}

func scoreAmenities(o *offer.Offer, st stats) float64 {
	if st.amenityVocab == 0 {
		return 0
	}
	return float64(len(o.Amenities)) / float64(st.amenityVocab) * 100
}

func scoreReviews(o *offer.Offer, _ stats) float64 {
	return cappedRatio(float64(o.Reviews), reviewVolumeCap)
}

func scoreClass(o *offer.Offer, _ stats) float64 {
	if v, ok := serviceTierScores[o.Tier]; ok {
		return v
	}
	return serviceTierScores[travel.TierBudget]
}

func scoreSeats(o *offer.Offer, _ stats) float64 {
	return cappedRatio(float64(o.Seats), seatCountCap)
}
