package search

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Seed strides. Each generated quantity steps the base seed by its own
// prime stride, keeping the per-quantity fraction streams independent
// while every draw stays reproducible from the base seed alone.
const (
	strideProvider = 7
	strideRating   = 11
	strideMinute   = 13
	strideDuration = 17
	strideStops    = 23
	stridePrice    = 29
	strideReviews  = 37
	strideAmenity  = 41
	strideSeats    = 43
	strideNumber   = 47
)

const minutesPerDay = 24 * 60

// quarterOffsets are the allowed departure minute offsets.
var quarterOffsets = [...]int{0, 15, 30, 45}

// clockTime renders minutes-since-midnight as HH:MM.
func clockTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// offerID derives a stable UUIDv5 identifier from the query seed key
// and the result index, so an offer keeps its id across re-searches.
func offerID(seedKey string, i int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "%s#%d", seedKey, i)).String()
}

// providerCode abbreviates a provider name to a two-letter code for
// flight and service numbers.
func providerCode(name string) string {
	words := strings.Fields(name)
	if len(words) >= 2 {
		return strings.ToUpper(words[0][:1] + words[1][:1])
	}
	return strings.ToUpper(name[:2])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
