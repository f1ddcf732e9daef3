// Package query defines the validated search query value object.
package query

import (
	"fmt"

	"github.com/meridian-travel/tripdex/internal/domain/travel"
)

// DefaultCurrencyRate is the multiplier applied when the caller does
// not request a currency conversion.
const DefaultCurrencyRate = 1.0

// Request is a validated search query. Its identity fields (origin,
// destination, date, domain) fully determine the generated result set;
// guests and trainClass are echoed into results without affecting
// generation or scoring.
type Request struct {
	domain       travel.Domain
	origin       string
	destination  string
	date         string
	currencyRate float64
	guests       int
	trainClass   string
}

// New validates and normalizes search parameters. Defaults:
// currencyRate=1.0, guests=1. Origin is optional for hotel searches.
func New(
	domain travel.Domain,
	origin, destination, date string,
	currencyRate float64,
	guests int,
	trainClass string,
) (Request, error) {
	if !domain.IsValid() {
		return Request{}, fmt.Errorf("%w: %q", travel.ErrUnsupportedDomain, domain)
	}
	if destination == "" {
		return Request{}, fmt.Errorf("%w: destination is required", travel.ErrInvalidQuery)
	}
	if date == "" {
		return Request{}, fmt.Errorf("%w: date is required", travel.ErrInvalidQuery)
	}
	if origin == "" && domain != travel.Hotel {
		return Request{}, fmt.Errorf("%w: origin is required for %s search", travel.ErrInvalidQuery, domain)
	}
	if currencyRate < 0 {
		return Request{}, fmt.Errorf("%w: currency rate must not be negative", travel.ErrInvalidQuery)
	}
	if currencyRate == 0 {
		currencyRate = DefaultCurrencyRate
	}
	if guests <= 0 {
		guests = 1
	}

	return Request{
		domain:       domain,
		origin:       origin,
		destination:  destination,
		date:         date,
		currencyRate: currencyRate,
		guests:       guests,
		trainClass:   trainClass,
	}, nil
}

// Domain returns the search vertical.
func (r *Request) Domain() travel.Domain { return r.domain }

// Origin returns the departure point.
func (r *Request) Origin() string { return r.origin }

// Destination returns the arrival point.
func (r *Request) Destination() string { return r.destination }

// Date returns the travel date string.
func (r *Request) Date() string { return r.date }

// CurrencyRate returns the price multiplier.
func (r *Request) CurrencyRate() float64 { return r.currencyRate }

// Guests returns the requested guest count (hotel only, echoed).
func (r *Request) Guests() int { return r.guests }

// TrainClass returns the requested train class (echoed).
func (r *Request) TrainClass() string { return r.trainClass }

// SeedKey returns the string the generation seed is hashed from.
// Two requests with equal identity fields share a seed key and must
// therefore produce identical result sets.
func (r *Request) SeedKey() string {
	return r.origin + r.destination + r.date + string(r.domain)
}
