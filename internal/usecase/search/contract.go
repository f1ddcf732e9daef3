package search

import "github.com/meridian-travel/tripdex/internal/catalog"

// Catalog provides the static provider reference data the generators
// draw from. Implementations must return stable tables: result sets are
// a function of table order and length.
type Catalog interface {
	Airlines() []catalog.Airline
	HotelBrands() []catalog.HotelBrand
	TrainServices() []catalog.TrainService
	Amenities() []string
}
