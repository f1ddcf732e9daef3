package search

import (
	"context"
	"fmt"

	"github.com/meridian-travel/tripdex/internal/domain/offer"
	"github.com/meridian-travel/tripdex/internal/domain/query"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

// Service runs the full synthetic search pipeline for one query:
// generate candidates, score them against each other, tag the
// recommended pick. The whole pipeline is a pure function of the query
// and the catalog, so invocations are idempotent and safe to run
// concurrently without coordination.
type Service struct {
	catalog Catalog
}

// New creates a search service.
func New(c Catalog) *Service {
	return &Service{catalog: c}
}

// Search generates, scores, and ranks the result set for req.
// Re-invoking with an identical query yields an identical set.
func (s *Service) Search(_ context.Context, req *query.Request) (offer.ResultSet, error) {
	var offers []offer.Offer

	switch req.Domain() {
	case travel.Flight:
		offers = s.generateFlights(req)
	case travel.Hotel:
		offers = s.generateHotels(req)
	case travel.Train:
		offers = s.generateTrains(req)
	default:
		return offer.ResultSet{}, fmt.Errorf("%w: %q", travel.ErrUnsupportedDomain, req.Domain())
	}

	s.scoreOffers(req.Domain(), offers)
	markRecommended(offers)

	return offer.ResultSet{Domain: req.Domain(), Offers: offers}, nil
}
