// Package tripdex is a deterministic synthetic travel search and
// ranking engine. Given a flight, hotel, or train query it produces a
// reproducible set of plausible candidate offers, scores each with a
// transparent multi-factor composite formula, and tags the best one as
// recommended. The whole pipeline is a pure function of the query: no
// backing store, no network calls, and re-running a query yields a
// byte-identical result set.
package tripdex

import (
	"context"

	"github.com/meridian-travel/tripdex/internal/catalog"
	"github.com/meridian-travel/tripdex/internal/domain/offer"
	"github.com/meridian-travel/tripdex/internal/domain/query"
	"github.com/meridian-travel/tripdex/internal/domain/travel"
	searchuc "github.com/meridian-travel/tripdex/internal/usecase/search"
)

// Re-exported engine types.
type (
	// Offer is one generated candidate.
	Offer = offer.Offer
	// ResultSet is the ordered, scored offer list for one query.
	ResultSet = offer.ResultSet
	// SortMode is a display ordering for a scored result set.
	SortMode = travel.SortMode
	// Domain is the travel search vertical.
	Domain = travel.Domain
)

// Search domains.
const (
	DomainFlight = travel.Flight
	DomainHotel  = travel.Hotel
	DomainTrain  = travel.Train
)

// Sort modes. SortRecommended is the default and the only mode that
// reflects the scoring engine's judgment.
const (
	SortRecommended = travel.SortRecommended
	SortPriceLow    = travel.SortPriceLow
	SortPriceHigh   = travel.SortPriceHigh
	SortRating      = travel.SortRating
)

// Sentinel errors returned by Search. Match with errors.Is.
var (
	// ErrInvalidQuery marks a query with missing or malformed fields.
	ErrInvalidQuery = travel.ErrInvalidQuery
	// ErrUnsupportedDomain marks a query for an unknown travel vertical.
	ErrUnsupportedDomain = travel.ErrUnsupportedDomain
)

// Query is a travel search request. Domain, Destination, and Date are
// required; Origin is required for flight and train searches.
// CurrencyRate scales all generated prices (0 means 1.0). Guests and
// TrainClass are echoed into results without affecting generation.
type Query struct {
	Domain       Domain
	Origin       string
	Destination  string
	Date         string
	CurrencyRate float64
	Guests       int
	TrainClass   string
}

// Engine runs the search pipeline against the built-in catalogs. The
// zero cost of construction and the absence of internal state make one
// shared Engine safe for concurrent use.
type Engine struct {
	search *searchuc.Service
}

// New creates an engine backed by the built-in provider catalogs.
func New() *Engine {
	return &Engine{search: searchuc.New(catalog.Static{})}
}

// Search generates, scores, and ranks the result set for q. Identical
// queries always produce identical sets.
func (e *Engine) Search(ctx context.Context, q Query) (ResultSet, error) {
	req, err := query.New(q.Domain, q.Origin, q.Destination, q.Date, q.CurrencyRate, q.Guests, q.TrainClass)
	if err != nil {
		return ResultSet{}, err
	}
	return e.search.Search(ctx, &req)
}

// Sort returns a stable re-ordering of an already-scored result set.
// It never rescores and never mutates the input.
func Sort(set ResultSet, mode SortMode) ResultSet {
	return searchuc.Sort(set, mode)
}
